package pasteportal

import (
	"strings"

	"github.com/stiliajohny/pasteportal-sub001/internal/crypto"
)

// EncryptWithPassword encrypts paste content with a password, returning
// the hex envelope that is stored in place of the plaintext. The
// envelope is compatible with the web and VS Code implementations, so a
// paste protected here opens anywhere.
//
// Every call draws a fresh salt and IV: encrypting the same content
// with the same password twice yields different envelopes.
func EncryptWithPassword(password, plaintext string) (string, error) {
	pw, err := crypto.NewPassword(password)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	envelope, err := crypto.Encrypt(pw, plaintext)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	return envelope, nil
}

// DecryptWithPassword decrypts an envelope produced by
// EncryptWithPassword or by any of the other PastePortal clients,
// current or legacy format. A wrong password, a malformed envelope and
// corrupted content all fail with ErrDecryptionFailed; the cause is
// not distinguished.
func DecryptWithPassword(password, envelope string) (string, error) {
	pw, err := crypto.NewPassword(password)
	if err != nil {
		return "", wrapCryptoError(err)
	}

	plaintext, err := crypto.Decrypt(pw, envelope)
	if err != nil {
		return "", wrapCryptoError(err)
	}
	return plaintext, nil
}

// ValidatePastePassword reports whether a password is acceptable for
// paste protection: 8 to 30 characters, no spaces or control
// characters. UIs can call this before attempting encryption; the
// returned error's message is suitable for display.
func ValidatePastePassword(password string) error {
	return wrapCryptoError(crypto.ValidatePassword(password))
}

// IsLikelyEncrypted reports whether content looks like a password
// envelope: an even-length lowercase-hex string of at least 64
// characters, the minimum any envelope format produces. It is a
// heuristic for UIs deciding whether to prompt for a password; a paste
// that happens to consist of hex text will be misjudged. Decryption
// never consults it.
func IsLikelyEncrypted(content string) bool {
	if len(content) < 64 || len(content)%2 != 0 {
		return false
	}
	for _, r := range content {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
