package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kyle5427/web-data-management-system/internal/app"
	"github.com/Kyle5427/web-data-management-system/internal/auth"
	"github.com/Kyle5427/web-data-management-system/internal/config"
	"github.com/Kyle5427/web-data-management-system/internal/memory"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:        "test",
		Port:          "0",
		SessionSecret: "0123456789abcdef0123456789abcdef",
	}
	svc := app.New(
		memory.NewUserRepository(),
		memory.NewProductRepository(),
		memory.NewSessionRepository(clockwork.NewFakeClock(), 0),
		auth.NewBcryptHasherWithCost(bcrypt.MinCost),
	)
	return NewServer(cfg, svc)
}

func doJSON(t *testing.T, srv *Server, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

// register creates a user through the API and returns the session cookies.
func register(t *testing.T, srv *Server, username, password string) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := doJSON(t, srv, http.MethodPost, "/api/register", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return rec.Result().Cookies()
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
