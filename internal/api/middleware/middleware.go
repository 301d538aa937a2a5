package middleware

import (
	"net/http"
	"time"

	"app-builder-backend/internal/config"
	"app-builder-backend/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a request id, echoes it back and stores it for log lines
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// Logger writes one structured line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}

// Recovery turns panics into a 500 response and logs them
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", recovered).
			WithField("path", c.Request.URL.Path).
			Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}

// CORS allows the configured origins; an empty list or "*" allows any origin
func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowCredentials = false
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
