package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("pw1234", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw1234", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry a fresh salt")
	assert.NotEqual(t, "pw1234", first)
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("pw1234", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "pw1234"))
	assert.Error(t, ComparePassword(hash, "wrong"))
	assert.Error(t, ComparePassword("not-a-hash", "pw1234"))
}
