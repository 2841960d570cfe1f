package utils

import (
	"errors"

	"xpressairtime/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Fiber Locals keys set by the auth middleware.
const (
	ClaimsKey = "claims"
	UserKey   = "user"
)

// GetUserClaims extracts the user claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals(ClaimsKey)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.UserClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetCurrentUser returns the user resolved by the auth middleware.
func GetCurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(UserKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("user not found in context")
	}
	return user, nil
}
