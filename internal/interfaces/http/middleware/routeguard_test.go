package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalis/internal/infrastructure/auth"
	"vitalis/internal/shared/authorization"
)

const guardTestSecret = "routeguard-test-secret"

func newGuardedEngine(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService(guardTestSecret, 7)

	engine := gin.New()
	engine.Use(RouteGuard(tokens))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	engine.GET("/admin", ok)
	engine.GET("/admin/login", ok)
	engine.GET("/admin/articles", ok)
	engine.GET("/admin/users", ok)
	engine.GET("/api/articles", ok)

	return engine, tokens
}

func guardRequest(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := &auth.Claims{
		UserID: 1,
		Email:  "old@example.com",
		Role:   authorization.RoleEditor,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(guardTestSecret))
	require.NoError(t, err)
	return signed
}

func TestRouteGuard_NoTokenRedirectsToLogin(t *testing.T) {
	engine, _ := newGuardedEngine(t)

	w := guardRequest(engine, "/admin/articles", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestRouteGuard_LoginPageExemptWithoutToken(t *testing.T) {
	engine, _ := newGuardedEngine(t)

	w := guardRequest(engine, "/admin/login", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_InvalidTokensRedirectIdentically(t *testing.T) {
	engine, _ := newGuardedEngine(t)

	otherService := auth.NewTokenService("a-different-secret", 7)
	tampered, err := otherService.Issue(1, "x@example.com", authorization.RoleEditor)
	require.NoError(t, err)

	cases := map[string]string{
		"expired":   expiredToken(t),
		"tampered":  tampered,
		"malformed": "not-a-jwt-at-all",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			w := guardRequest(engine, "/admin/articles", token)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/admin/login", w.Header().Get("Location"))
			assert.NotContains(t, w.Body.String(), "expired")
			assert.NotContains(t, w.Body.String(), "signature")
		})
	}
}

func TestRouteGuard_ValidSessionOnLoginPageGoesHome(t *testing.T) {
	engine, tokens := newGuardedEngine(t)

	token, err := tokens.Issue(1, "editor@example.com", authorization.RoleEditor)
	require.NoError(t, err)

	w := guardRequest(engine, "/admin/login", token)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestRouteGuard_ValidSessionPassesThrough(t *testing.T) {
	engine, tokens := newGuardedEngine(t)

	token, err := tokens.Issue(1, "writer@example.com", authorization.RoleWriter)
	require.NoError(t, err)

	w := guardRequest(engine, "/admin/articles", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_SectionCapabilityRedirectsHome(t *testing.T) {
	engine, tokens := newGuardedEngine(t)

	token, err := tokens.Issue(2, "editor@example.com", authorization.RoleEditor)
	require.NoError(t, err)

	w := guardRequest(engine, "/admin/users", token)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestRouteGuard_SuperAdminReachesUsersSection(t *testing.T) {
	engine, tokens := newGuardedEngine(t)

	token, err := tokens.Issue(3, "root@example.com", authorization.RoleSuperAdmin)
	require.NoError(t, err)

	w := guardRequest(engine, "/admin/users", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_IgnoresNonAdminPaths(t *testing.T) {
	engine, _ := newGuardedEngine(t)

	w := guardRequest(engine, "/api/articles", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuard_AcceptsBearerHeader(t *testing.T) {
	engine, tokens := newGuardedEngine(t)

	token, err := tokens.Issue(4, "writer@example.com", authorization.RoleWriter)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
