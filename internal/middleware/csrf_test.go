package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCSRFRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CSRF(origins))
	router.GET("/read", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/write", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCSRF(t *testing.T) {
	allowed := []string{"http://localhost:5173", "https://App.Example.com/"}

	tests := []struct {
		name       string
		method     string
		path       string
		origin     string
		referer    string
		wantStatus int
	}{
		{
			name:       "GET skips validation",
			method:     http.MethodGet,
			path:       "/read",
			wantStatus: http.StatusOK,
		},
		{
			name:       "allowed origin",
			method:     http.MethodPost,
			path:       "/write",
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
		},
		{
			name:       "origin normalized case and slash",
			method:     http.MethodPost,
			path:       "/write",
			origin:     "https://app.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "disallowed origin",
			method:     http.MethodPost,
			path:       "/write",
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "referer fallback allowed",
			method:     http.MethodPost,
			path:       "/write",
			referer:    "http://localhost:5173/feed",
			wantStatus: http.StatusOK,
		},
		{
			name:       "referer fallback disallowed",
			method:     http.MethodPost,
			path:       "/write",
			referer:    "https://evil.example.com/feed",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "mutation without origin or referer",
			method:     http.MethodPost,
			path:       "/write",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCSRFRouter(allowed)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
