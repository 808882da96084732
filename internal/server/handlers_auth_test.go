package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/register", `{"username":"alice","password":"pw"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user userResponse
	decodeJSON(t, rec, &user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)

	// The password hash never crosses the wire.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")

	// Registration logs the user in.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	userRec := doJSON(t, srv, http.MethodGet, "/api/user", "", cookies)
	assert.Equal(t, http.StatusOK, userRec.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "alice", "pw")

	rec := doJSON(t, srv, http.MethodPost, "/api/register", `{"username":"alice","password":"other"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_EmptyFields(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/register", `{"username":"","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username")
	assert.Contains(t, rec.Body.String(), "password")
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "alice", "pw")

	rec := doJSON(t, srv, http.MethodPost, "/api/login", `{"username":"alice","password":"pw"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var user userResponse
	decodeJSON(t, rec, &user)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestLogin_InvalidCredentials_IndistinguishableFailures(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "alice", "pw")

	wrongPassword := doJSON(t, srv, http.MethodPost, "/api/login", `{"username":"alice","password":"nope"}`, nil)
	unknownUser := doJSON(t, srv, http.MethodPost, "/api/login", `{"username":"nobody","password":"pw"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	srv := newTestServer(t)
	cookies := register(t, srv, "alice", "pw")

	rec := doJSON(t, srv, http.MethodPost, "/api/logout", "", cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The original session token is now invalid.
	after := doJSON(t, srv, http.MethodGet, "/api/user", "", cookies)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
