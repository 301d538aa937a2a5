package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app-builder-backend/internal/api/handlers"
	apperrors "app-builder-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type stubPlatform struct{ err error }

func (s stubPlatform) CheckConfigured() error { return s.err }

// unreachableDB points at a port nothing listens on; no connection is made until a ping.
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func newHealthRouter(t *testing.T, platformErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewHealthHandler(unreachableDB(t), stubPlatform{err: platformErr})
	router := gin.New()
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/health/live", handler.Live)
	return router
}

func TestHealthHandler_Live(t *testing.T) {
	router := newHealthRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive":true`)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	router := newHealthRouter(t, apperrors.ErrPlatformCredentialsMissing)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
	assert.Contains(t, body.Services["database"], "error")
	assert.Equal(t, "not configured", body.Services["platform"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
