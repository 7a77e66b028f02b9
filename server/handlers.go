package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// login confirms the basic-auth credentials and reports the caller's role.
func (s *Server) login(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, LoginResponse{
		Message: fmt.Sprintf("Welcome %s!", user.Username),
		Role:    user.RoleName,
	})
}

// chat answers a question scoped to the caller's role.
func (s *Server) chat(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	answer, err := s.engine.Ask(c.Request().Context(), user, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Username: answer.Username,
		Role:     answer.Role,
		Query:    answer.Query,
		Response: answer.Response,
		Sources:  answer.Sources,
	})
}

// uploadDocs ingests an uploaded document under a department scope.
// Privileged roles only.
func (s *Server) uploadDocs(c echo.Context) error {
	if _, err := s.requirePrivileged(c); err != nil {
		return err
	}

	department := c.FormValue("department")
	if department == "" {
		// The original UI posts the field as "role".
		department = c.FormValue("role")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	count, err := s.pipeline.IngestUpload(c.Request().Context(), src, fileHeader.Filename, department)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Uploaded %d chunks to role '%s'.", count, department),
	})
}

// roles lists the registered role names.
func (s *Server) roles(c echo.Context) error {
	return c.JSON(http.StatusOK, RolesResponse{Roles: s.registry.Roles()})
}

// createUser registers a new account. Privileged roles only.
func (s *Server) createUser(c echo.Context) error {
	if _, err := s.requirePrivileged(c); err != nil {
		return err
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username, password, and role are required")
	}

	if err := s.registry.CreateUser(req.Username, req.Password, req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("User '%s' created.", req.Username),
	})
}

// createRole registers a new non-privileged role scope. Privileged roles only.
func (s *Server) createRole(c echo.Context) error {
	if _, err := s.requirePrivileged(c); err != nil {
		return err
	}

	var req CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RoleName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role_name is required")
	}

	if err := s.registry.CreateRole(req.RoleName); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Role '%s' added.", req.RoleName),
	})
}
