// Package token signs and verifies the session tokens handed to clients.
// A token is a JWT carrying nothing but the session ID and its expiry, so
// tampering is caught by signature verification before any store lookup.
package token

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the token signing configuration.
type Config struct {
	Secret string // HMAC signing secret
}

// LoadConfig loads the token configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Secret: os.Getenv("SESSION_SECRET"),
	}
}

// Codec encodes and decodes signed session tokens.
type Codec struct {
	secret []byte
}

// NewCodec creates a new Codec with the provided signing secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode wraps a session ID in a signed JWT expiring at expiresAt.
func (c *Codec) Encode(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token signature and expiry and returns the embedded
// session ID. Any tampered, malformed, or expired token is an error.
func (c *Codec) Decode(tokenStr string) (string, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; reject algorithm confusion.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !t.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session token missing sid claim")
	}
	return sid, nil
}
