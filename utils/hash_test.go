package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestHashDeterministicAndWellFormed(t *testing.T) {
	inputs := []string{"", "hello", "secret123", "a@b.com", "päßwörd"}
	for _, in := range inputs {
		first := Hash(in)
		assert.Equal(t, first, Hash(in))
		assert.Regexp(t, hexDigest, first)
	}
}

func TestHashKnownVectors(t *testing.T) {
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", Hash("hello"))
	assert.Equal(t, "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4", Hash("secret123"))
}

func TestHashDistinctInputs(t *testing.T) {
	assert.NotEqual(t, Hash("a"), Hash("b"))
	assert.NotEqual(t, Hash("a@b.com|1"), Hash("a@b.com|2"))
}

func TestTokenDerivation(t *testing.T) {
	token := Token("a@b.com", "507f1f77bcf86cd799439011")
	assert.Equal(t, Hash("a@b.com|507f1f77bcf86cd799439011"), token)
	assert.Equal(t, "fac23dd6d83ffddc963eb8da01b08fb692e5c2518a32fb977fbe5cdf2c48141d", token)

	// stable across calls
	assert.Equal(t, token, Token("a@b.com", "507f1f77bcf86cd799439011"))
}
