package handlers

import (
	"errors"
	"net/http"

	apperrors "app-builder-backend/internal/errors"
	"app-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// BuildErrorResponse is returned when a build aborts
type BuildErrorResponse struct {
	Error string `json:"error" example:"build failed at deploy: deploy service failed with status 500"`
	Stage string `json:"stage" example:"deploy"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var buildErr *apperrors.BuildError
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.As(err, &buildErr):
		c.JSON(http.StatusInternalServerError, BuildErrorResponse{Error: err.Error(), Stage: string(buildErr.Stage)})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
