// Package middleware provides HTTP middleware components for the application.
// It includes authentication and role checks for fiber routes.
package middleware

import (
	"context"
	"strings"

	"xpressairtime/internal/models"
	"xpressairtime/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenValidator verifies a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*models.UserClaims, error)
}

// UserLookup resolves the token subject to a stored user.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	tokens TokenValidator
	users  UserLookup
	logger *zap.Logger
}

func NewAuthMiddleware(tokens TokenValidator, users UserLookup, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
		logger: logger,
	}
}

// Handler validates JWT tokens and adds claims to the request context.
// It checks for:
// - Presence of Authorization header with Bearer token
// - Valid JWT signature and expiry
// - Subject resolving to an existing user
// - Token version matches current user version
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.tokens.ValidateToken(tokenString)
	if err != nil {
		m.logger.Debug("token rejected", zap.Error(err), zap.String("path", c.Path()))
		return utils.Unauthorized(c, err.Error())
	}

	user, err := m.users.GetByEmail(c.UserContext(), claims.Subject)
	if err != nil {
		m.logger.Info("token subject not found", zap.String("subject", claims.Subject), zap.Error(err))
		return utils.Unauthorized(c, "invalid token")
	}

	if claims.TokenVersion != user.TokenVersion {
		m.logger.Info("token version mismatch",
			zap.Uint("user_id", user.ID),
			zap.Int("token_version", claims.TokenVersion),
			zap.Int("current_version", user.TokenVersion))
		return utils.Unauthorized(c, "session expired")
	}

	// The stored role wins over whatever the token was issued with.
	claims.UserID = user.ID
	claims.Role = user.Role

	c.Locals(utils.ClaimsKey, claims)
	c.Locals(utils.UserKey, user)
	return c.Next()
}

// RequireRole rejects requests whose claims do not carry role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.GetUserClaims(c)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !claims.HasRole(role) {
			return utils.Forbidden(c, "Insufficient permissions")
		}
		return c.Next()
	}
}
