package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload. Subject carries the user's email.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint   `json:"user_id"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
}

// HasRole reports whether the claims carry role. Admins satisfy every role.
func (c *UserClaims) HasRole(role string) bool {
	return c.Role == role || c.Role == RoleAdmin
}
