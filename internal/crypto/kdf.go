package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey stretches a password into an AES-256 key using
// PBKDF2-HMAC-SHA-256 with the fixed iteration count. For identical
// (password, salt) inputs every client implementation must produce the
// identical key; the shared test vectors pin this down.
func DeriveKey(password Password, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, KeySize, sha256.New)
}
