package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/finsolve/finsight/core"
)

// userContextKey is the echo context key holding the authenticated user.
const userContextKey = "auth-user"

// basicAuth resolves HTTP basic credentials against the access registry
// and stashes the authenticated user on the request context.
func (s *Server) basicAuth() echo.MiddlewareFunc {
	return middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		user, err := s.registry.Authenticate(username, password)
		if err != nil {
			return false, nil
		}
		c.Set(userContextKey, user)
		return true, nil
	})
}

// currentUser returns the authenticated user from the request context.
func currentUser(c echo.Context) (*core.User, error) {
	user, ok := c.Get(userContextKey).(*core.User)
	if !ok {
		return nil, core.ErrUnauthenticated
	}
	return user, nil
}

// requirePrivileged returns core.ErrForbidden unless the authenticated
// user holds a privileged role.
func (s *Server) requirePrivileged(c echo.Context) (*core.User, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	if !s.registry.IsPrivileged(user.RoleName) {
		return nil, core.ErrForbidden
	}
	return user, nil
}
