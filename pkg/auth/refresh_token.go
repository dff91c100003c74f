// Package auth provides authentication utilities.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// RefreshTokenGenerator generates and hashes opaque refresh tokens. Only the
// hash is ever stored server-side.
type RefreshTokenGenerator interface {
	// Generate creates a new refresh token.
	Generate() (string, error)
	// Validate checks that a token has the expected format.
	Validate(token string) error
	// Hash returns the SHA-256 hash of a token.
	Hash(token string) string
	// CompareHashes securely compares two token hashes.
	CompareHashes(hash1, hash2 string) bool
}

type refreshTokenGenerator struct{}

// NewRefreshTokenGenerator creates a new RefreshTokenGenerator.
func NewRefreshTokenGenerator() RefreshTokenGenerator {
	return &refreshTokenGenerator{}
}

// Generate creates a new refresh token in format: rt_{random}
// where random is a 48-character hex string (24 bytes).
func (g *refreshTokenGenerator) Generate() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return "rt_" + hex.EncodeToString(bytes), nil
}

// Validate checks the refresh token format.
func (g *refreshTokenGenerator) Validate(token string) error {
	if !strings.HasPrefix(token, "rt_") {
		return fmt.Errorf("invalid refresh token format")
	}
	random := strings.TrimPrefix(token, "rt_")
	if len(random) != 48 {
		return fmt.Errorf("invalid refresh token length")
	}
	if _, err := hex.DecodeString(random); err != nil {
		return fmt.Errorf("invalid refresh token format: must be hex")
	}
	return nil
}

// Hash returns the SHA-256 hash of the token as a hex string.
func (g *refreshTokenGenerator) Hash(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// CompareHashes securely compares two token hashes using constant-time comparison.
func (g *refreshTokenGenerator) CompareHashes(hash1, hash2 string) bool {
	return subtle.ConstantTimeCompare([]byte(hash1), []byte(hash2)) == 1
}
