package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTokenCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"simple hash", "abc123", "refresh:abc123"},
		{"sha256 hex", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", "refresh:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
		{"empty string", "", "refresh:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RefreshTokenCacheKey(tt.token)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLeaderboardCacheKey(t *testing.T) {
	tests := []struct {
		name         string
		tournamentID string
		expected     string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "leaderboard:507f1f77bcf86cd799439011"},
		{"empty string", "", "leaderboard:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LeaderboardCacheKey(tt.tournamentID)
			assert.Equal(t, tt.expected, result)
		})
	}
}
