package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app-builder-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(RequestID(), Logger(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "any origin", origins: nil, origin: "http://x.test", wantHeader: "*"},
		{name: "listed origin", origins: []string{"http://app.test"}, origin: "http://app.test", wantHeader: "http://app.test"},
		{name: "unlisted origin", origins: []string{"http://app.test"}, origin: "http://evil.test", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(CORS(&config.Config{AllowedOrigins: tt.origins}))
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
