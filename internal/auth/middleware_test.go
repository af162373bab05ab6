package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func protectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(secret), func(c *gin.Context) {
		userId, _ := c.Get("userId")
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"userId": userId, "email": email})
	})
	return r
}

func TestMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing header, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-Bearer header, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testSecret, 1, "old", "old@x.y", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}
	r := protectedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMiddleware_ValidToken(t *testing.T) {
	token, err := GenerateJWT(testSecret, 42, "alice", "alice@example.com", TokenTTL)
	if err != nil {
		t.Fatalf("failed to generate JWT: %v", err)
	}
	r := protectedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d: %s", w.Code, w.Body.String())
	}
}
