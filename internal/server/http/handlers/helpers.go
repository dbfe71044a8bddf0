package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// CurrentIdentity extracts authenticated caller from context.
func CurrentIdentity(c *gin.Context) *model.Identity {
	return middleware.Identity(c)
}

// currentUserID aborts with 401 when the route was mounted without AuthRequired.
func currentUserID(c *gin.Context) (string, bool) {
	identity := CurrentIdentity(c)
	if identity == nil || identity.UserID == "" {
		abortWithError(c, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return "", false
	}
	return identity.UserID, true
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

// internalError hides err behind message. Expired request deadlines become 503.
func internalError(c *gin.Context, logger *slog.Logger, err error, message string) {
	attrs := []any{
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	}
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn(message, attrs...)
		abortWithError(c, http.StatusServiceUnavailable, "Request timed out")
		return
	}
	logger.Error(message, attrs...)
	abortWithError(c, http.StatusInternalServerError, message)
}

// bindJSON decodes the body into dst. An empty body leaves dst zeroed.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func parsePositiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
