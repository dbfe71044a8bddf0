package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// IdentityContextKey is a gin context key for the verified caller.
const IdentityContextKey = "identity"

// Authenticator turns a bearer token into a verified identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
}

// Authorizer decides whether an identity holds the admin role.
type Authorizer interface {
	Authorize(identity *model.Identity) error
}

// AuthRequired ensures the request carries a valid bearer token before accessing handler.
func AuthRequired(auth Authenticator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized: No token provided"})
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("jwt verification failed",
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized: Invalid token"})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireAdmin lets through only identities holding the admin role. It must follow AuthRequired.
func RequireAdmin(authz Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authz.Authorize(Identity(c))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, pkgAuth.ErrForbidden):
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden: Admin access required"})
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized: Invalid token"})
		}
	}
}

// Identity returns the caller stored by AuthRequired or nil.
func Identity(c *gin.Context) *model.Identity {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*model.Identity)
	return identity
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
