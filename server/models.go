package server

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Username string   `json:"username"`
	Role     string   `json:"role"`
	Query    string   `json:"query"`
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}

// LoginResponse is the body returned by GET /login.
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// RolesResponse is the body returned by GET /roles.
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// CreateUserRequest is the body of POST /create-user.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// CreateRoleRequest is the body of POST /create-role.
type CreateRoleRequest struct {
	RoleName string `json:"role_name" form:"role_name"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
