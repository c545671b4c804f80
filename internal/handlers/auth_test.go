package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliyacapital/seriesdash/internal/auth"
)

func newAuthHandler(p *stubProvider, prefs *mockPrefs) *AuthHandler {
	svc := auth.NewService(p, auth.JWT{Secret: []byte("test-secret"), TokenTTL: time.Hour}, prefs, "example.com", nil)
	return NewAuthHandler(svc, nil)
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandler(&stubProvider{}, newMockPrefs())

	rw := httptest.NewRecorder()
	h.HandleLogin(rw, postJSON("/api/auth/login", `{"email":"Ana@Example.com","password":"Secret!1"}`))
	require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

	var res auth.LoginResult
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&res))
	assert.Equal(t, "ana@example.com", res.Email)
	assert.NotEmpty(t, res.Token)
}

func TestAuthHandler_LoginWrongDomain(t *testing.T) {
	h := newAuthHandler(&stubProvider{}, newMockPrefs())

	rw := httptest.NewRecorder()
	h.HandleLogin(rw, postJSON("/api/auth/login", `{"email":"ana@elsewhere.com","password":"Secret!1"}`))
	require.Equal(t, http.StatusBadRequest, rw.Code)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&body))
	assert.Contains(t, body.FieldErrors, "email")
}

func TestAuthHandler_Logout(t *testing.T) {
	prefs := newMockPrefs()
	h := newAuthHandler(&stubProvider{}, prefs)

	rw := httptest.NewRecorder()
	h.HandleLogout(rw, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, rw.Code)

	rw = httptest.NewRecorder()
	h.HandleLogout(rw, withEmail(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), "ana@example.com"))
	assert.Equal(t, http.StatusNoContent, rw.Code)
	assert.Equal(t, []string{"ana@example.com"}, prefs.ended)
}
