package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDanParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	token, err := GenerateToken("USR001", "Budi", "kasir")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USR001", claims.ID)
	assert.Equal(t, "Budi", claims.Nama)
	assert.Equal(t, "kasir", claims.Role)
}

func TestParseTokenSecretBeda(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-satu")
	token, err := GenerateToken("USR001", "Budi", "kasir")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rahasia-dua")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenSampah(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	_, err := ParseToken("bukan.token.jwt")
	assert.Error(t, err)
}
