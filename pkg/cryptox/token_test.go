package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		expectedLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.expectedLen)

			raw, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, raw, tt.size)
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -32} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestGenerateToken_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 100)
	for range 100 {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.NotContains(t, seen, token, "duplicate token generated")
		seen[token] = true
	}
}

func TestFingerprintToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)

	fp1 := FingerprintToken(token)
	fp2 := FingerprintToken(token)
	require.Equal(t, fp1, fp2, "fingerprint must be deterministic")
	require.Len(t, fp1, 43, "SHA-256 fingerprint is 43 chars base64url")

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, fp1, FingerprintToken(other))
}
