package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

func issueToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	t.Cleanup(viper.Reset)

	r := newProtectedRouter()

	valid := issueToken(t, "test-secret", jwt.MapClaims{
		"user_id": "owner-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	wrongSecret := issueToken(t, "other-secret", jwt.MapClaims{
		"user_id": "owner-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	expired := issueToken(t, "test-secret", jwt.MapClaims{
		"user_id": "owner-1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	noUserID := issueToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"missing user_id claim", "Bearer " + noUserID, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestJWTAuthInjectsUserID(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")
	t.Cleanup(viper.Reset)

	r := newProtectedRouter()
	token := issueToken(t, "test-secret", jwt.MapClaims{
		"user_id": "owner-42",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"userID":"owner-42"}` {
		t.Fatalf("body = %s", got)
	}
}
