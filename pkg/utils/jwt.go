package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenClaims carries the identity of a logged-in studio user.
type TokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given user. expiry is a duration
// string such as "24h" or "30m".
func GenerateToken(secret string, expiry string, userID int64, email, role string) (string, error) {
	duration, err := time.ParseDuration(expiry)
	if err != nil {
		return "", fmt.Errorf("parse token expiry %q: %w", expiry, err)
	}

	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry. It fails closed: any
// malformed, expired, or mis-signed token yields an error and no claims.
func VerifyToken(secret string, tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// DecodeToken extracts claims without verifying the signature. Only for
// non-trust-sensitive display, never for authorization. Returns false
// instead of an error when the token cannot be parsed.
func DecodeToken(tokenString string) (*TokenClaims, bool) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &TokenClaims{})
	if err != nil {
		return nil, false
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, false
	}

	return claims, true
}
