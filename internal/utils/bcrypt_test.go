package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "correct-horse-battery"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	password := "correct-horse-battery"
	first, _ := HashPassword(password)
	second, _ := HashPassword(password)

	// Random salt means equal inputs never produce equal digests
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash(password, first))
	assert.True(t, CheckPasswordHash(password, second))
}

func TestCheckPasswordHash(t *testing.T) {
	password := "correct-horse-battery"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("correct-horse-battery", "invalidhash"))
}
