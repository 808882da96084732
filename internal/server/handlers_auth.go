package server

import (
	"net/http"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// toUserResponse strips the password hash from the wire representation.
func toUserResponse(user *domain.User) userResponse {
	return userResponse{ID: user.ID, Username: user.Username}
}

func (s *Server) handleRegister(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	user, token, err := s.app.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if err := s.saveSessionToken(c, token); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	user, token, err := s.app.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	if err := s.saveSessionToken(c, token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := s.app.Logout(c.Request().Context(), s.sessionToken(c)); err != nil {
		return err
	}
	if err := s.clearSessionCookie(c); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) handleCurrentUser(c echo.Context) error {
	user, err := s.app.CurrentUser(c.Request().Context(), s.sessionToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
