package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

const (
	sessionName     = "catalog_session"
	sessionKeyToken = "token"
)

// sessionToken extracts the session token from the request cookie.
// A missing or undecodable cookie yields an empty token; the service
// refuses it at the auth gate.
func (s *Server) sessionToken(c echo.Context) string {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		return ""
	}
	token, _ := session.Values[sessionKeyToken].(string)
	return token
}

// saveSessionToken writes the session token into the response cookie.
func (s *Server) saveSessionToken(c echo.Context, token string) error {
	session, _ := s.sessionStore.Get(c.Request(), sessionName)
	session.Values[sessionKeyToken] = token
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return fmt.Errorf("failed to save session cookie: %w", err)
	}
	return nil
}

// clearSessionCookie expires the cookie.
func (s *Server) clearSessionCookie(c echo.Context) error {
	session, _ := s.sessionStore.Get(c.Request(), sessionName)
	delete(session.Values, sessionKeyToken)
	session.Options.MaxAge = -1
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return fmt.Errorf("failed to clear session cookie: %w", err)
	}
	return nil
}
