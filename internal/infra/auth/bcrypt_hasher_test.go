package auth

import (
	"testing"

	"campusconnect/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "CampusPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "CampusPass123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Malformed hash must report a mismatch, not panic or error
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 6},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("CampusPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_VerifiesOldCostFactors(t *testing.T) {
	// A hash produced under one cost factor still verifies when the configured
	// cost later changes; bcrypt embeds the cost in the hash.
	oldHasher := NewBcryptHasherWithCost(4)
	hash, err := oldHasher.Hash("CampusPass123")
	assert.NoError(t, err)

	newHasher := NewBcryptHasherWithCost(10)
	assert.True(t, newHasher.Check("CampusPass123", hash))
}

func TestBcryptHasher_DefaultCostOnInvalidConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("CampusPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
