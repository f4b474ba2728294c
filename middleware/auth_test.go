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

	"github.com/vedant-kerulkar07/Fin-View/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *models.AuthClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runAuth(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	AuthMiddleware(c)
	return c, w
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	signed := signToken(t, &models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/budget/all", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	c, _ := runAuth(req)
	require.False(t, c.IsAborted())

	user, exists := c.Get("user")
	require.True(t, exists)
	claims := user.(*models.AuthClaims)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	signed := signToken(t, &models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/budget/all", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signed})

	c, _ := runAuth(req)
	require.False(t, c.IsAborted())

	user, _ := c.Get("user")
	claims := user.(*models.AuthClaims)
	assert.Equal(t, "user-2", claims.Subject)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/budget/all", nil)
	c, w := runAuth(req)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	signed := signToken(t, &models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/budget/all", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	c, w := runAuth(req)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-different-secret")

	signed := signToken(t, &models.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/budget/all", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	c, w := runAuth(req)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
