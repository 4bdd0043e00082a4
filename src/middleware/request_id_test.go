package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(RequestIDMiddleware())

	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	if seen == "" {
		t.Error("expected a generated request ID in context")
	}
	if len(seen) != 8 {
		t.Errorf("expected 8-char request ID, got %q", seen)
	}
	if header := w.Header().Get("X-Request-ID"); header != seen {
		t.Errorf("expected response header %q, got %q", seen, header)
	}
}

func TestRequestIDMiddleware_PreservesIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	router.ServeHTTP(w, req)

	if header := w.Header().Get("X-Request-ID"); header != "client-supplied-id" {
		t.Errorf("expected client-supplied ID to be preserved, got %q", header)
	}
}

func TestGetRequestID_MissingFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if id := GetRequestID(c); id != "" {
		t.Errorf("expected empty request ID, got %q", id)
	}
}
