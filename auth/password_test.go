package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	hash1, err := HashPassword("password123")
	assert.NoError(t, err)
	hash2, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)
}
