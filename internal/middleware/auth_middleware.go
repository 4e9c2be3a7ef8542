package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/models"
)

// Gin context keys populated by the authentication middleware.
const (
	ContextIdentityKey = "identity"
	ContextUserIDKey   = "userID"
)

// IdentityFromContext returns the authenticated Identity stored by
// Authenticate, or false when the middleware has not run.
func IdentityFromContext(c *gin.Context) (*models.Identity, bool) {
	raw, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := raw.(*models.Identity)
	return identity, ok && identity != nil
}

// AuthMiddleware provides Gin middleware for bearer token authentication.
type AuthMiddleware struct {
	authService core.AuthService
	logger      *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
// It panics if authService is nil, as this is a critical setup dependency.
func NewAuthMiddleware(authService core.AuthService, logger *zap.Logger) *AuthMiddleware {
	if authService == nil {
		panic("AuthService is not initialized for AuthMiddleware")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{authService: authService, logger: logger}
}

// Authenticate builds the request identity from the Authorization
// header and aborts with 401 on failure. Handler logic never runs for
// an unauthenticated request.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authService.BuildContext(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			m.logger.Warn("Authentication failed",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(authErrorMessage(err)))
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Set(ContextUserIDKey, identity.UID)
		c.Next()
	}
}

// AdminOnly aborts with 403 unless the authenticated identity carries
// the admin flag. Must run after Authenticate.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
			return
		}
		if err := core.RequireAdmin(identity); err != nil {
			m.logger.Warn("Admin access denied",
				zap.String("uid", identity.UID), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewErrorResponse(err.Error()))
			return
		}
		c.Next()
	}
}

// authErrorMessage picks the client-facing detail for an auth failure.
// Sentinel errors surface their own text; anything else gets a generic
// message so internals never leak.
func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrMissingScheme):
		return core.ErrMissingScheme.Error()
	case errors.Is(err, core.ErrExpiredToken):
		return core.ErrExpiredToken.Error()
	case errors.Is(err, core.ErrInvalidToken):
		return core.ErrInvalidToken.Error()
	default:
		return core.ErrAuthBackend.Error()
	}
}
