package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/rakhaanw/mindhaven/internal/api/middleware"
)

const secret = "unit-test-secret"

func protectedRouter(jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.JWTAuth(jwtSecret))
	r.GET("/whoami", func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func signToken(t *testing.T, secret, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r := protectedRouter(secret)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "user-42", time.Hour))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "user-42")
}

func TestJWTAuthRejects(t *testing.T) {
	r := protectedRouter(secret)

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc123",
		"garbage token":   "Bearer not.a.jwt",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", "user-42", time.Hour),
		"expired":         "Bearer " + signToken(t, secret, "user-42", -time.Hour),
		"missing subject": "Bearer " + signToken(t, secret, "", time.Hour),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			require.Equal(t, http.StatusUnauthorized, resp.Code)
		})
	}
}
