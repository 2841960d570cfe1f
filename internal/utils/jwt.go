package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"xpressairtime/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "xpressairtime-api"

var (
	ErrTokenExpired   = errors.New("JWT token has expired")
	ErrTokenSignature = errors.New("JWT signature does not match")
	ErrTokenMalformed = errors.New("Invalid JWT token")
	ErrTokenEmpty     = errors.New("JWT claims string is empty")
)

// TokenProvider issues and verifies HS256 access tokens.
type TokenProvider struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenProvider decodes the base64 secret and returns a provider whose
// tokens live for expiration.
func NewTokenProvider(secret string, expiration time.Duration) (*TokenProvider, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("JWT secret is empty")
	}
	return &TokenProvider{secret: key, expiration: expiration}, nil
}

// GenerateToken creates an access token for user. The subject is the email.
func (p *TokenProvider) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.Email,
			ID:        strconv.FormatUint(uint64(user.ID), 10),
		},
		UserID:       user.ID,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// ValidateToken parses tokenStr and returns its claims. Failures map onto
// ErrTokenExpired, ErrTokenSignature, ErrTokenMalformed or ErrTokenEmpty.
func (p *TokenProvider) ValidateToken(tokenStr string) (*models.UserClaims, error) {
	if tokenStr == "" {
		return nil, ErrTokenEmpty
	}

	claims := &models.UserClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignature
	default:
		return nil, ErrTokenMalformed
	}

	if claims.Subject == "" {
		return nil, ErrTokenEmpty
	}
	return claims, nil
}
