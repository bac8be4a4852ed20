package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub/internal/model"

	"github.com/google/uuid"
)

const testSecret = "middleware-test-secret"

// runAdminChain sends a request through the AdminOnly middleware chain into a
// probe handler and reports the resulting status code.
func runAdminChain(t *testing.T, bypass bool, authorization string) (int, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := func(c echo.Context) error {
		reached = true
		return c.String(http.StatusOK, "ok")
	}

	chain := AdminOnly(testSecret, bypass)
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	err := h(c)
	if err != nil {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		return httpErr.Code, reached
	}
	return rec.Code, reached
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	token, err := NewJWTService(testSecret).GenerateToken(uuid.New(), "user@x.com", role)
	require.NoError(t, err)
	return token
}

func TestAdminMiddleware_MissingHeader(t *testing.T) {
	code, reached := runAdminChain(t, false, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, reached, "handler must not run without credentials")
}

func TestAdminMiddleware_MalformedToken(t *testing.T) {
	code, reached := runAdminChain(t, false, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, reached)
}

func TestAdminMiddleware_WrongSecret(t *testing.T) {
	token, err := NewJWTService("another-secret").GenerateToken(uuid.New(), "user@x.com", model.RoleAdmin)
	require.NoError(t, err)

	code, reached := runAdminChain(t, false, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, reached)
}

func TestAdminMiddleware_StudentTokenForbidden(t *testing.T) {
	code, reached := runAdminChain(t, false, "Bearer "+adminToken(t, model.RoleStudent))
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, reached)
}

func TestAdminMiddleware_AdminTokenAccepted(t *testing.T) {
	code, reached := runAdminChain(t, false, "Bearer "+adminToken(t, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, reached)
}

func TestAdminMiddleware_BypassInjectsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var claims *Claims
	h := func(c echo.Context) error {
		var err error
		claims, err = ClaimsFromContext(c)
		require.NoError(t, err)
		return c.String(http.StatusOK, "ok")
	}

	chain := AdminOnly(testSecret, true)
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, uuid.Nil, claims.UserID)
}

func TestClaimsFromContext_Empty(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := ClaimsFromContext(c)
	assert.Error(t, err)
}
