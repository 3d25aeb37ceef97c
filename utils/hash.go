package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 digest of text as a lowercase hex string.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Token derives the opaque token returned after register/login.
// It is a plain hash of email and user id, so the same user always
// receives the same token.
func Token(email, id string) string {
	return Hash(email + "|" + id)
}
