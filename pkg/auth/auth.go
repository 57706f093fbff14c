// Package auth provides password hashing and signing for session cookies.
//
// Session cookies do not carry the raw session ID: the ID is wrapped in a
// signed JWT so a tampered cookie is rejected before the store is ever hit.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/AhmedFathyMohamed10/crm-system/config"
)

func secret() []byte {
	return []byte(config.AppKey())
}

// sessionClaims is the payload of a signed session cookie.
type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSessionID wraps a session ID in a signed token valid for ttl.
func SignSessionID(id string, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		SID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseSessionID validates a signed cookie value and returns the session ID.
func ParseSessionID(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return "", fmt.Errorf("auth: parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return claims.SID, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
