package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format identifies an envelope generation.
type Format int

const (
	// FormatLegacy is the original layout: hex(iv) || hex(ciphertext),
	// keyed with the fixed LegacySalt.
	FormatLegacy Format = iota
	// FormatV1 is the current layout:
	// "01" || hex(salt) || hex(iv) || hex(ciphertext).
	FormatV1
)

func (f Format) String() string {
	if f == FormatV1 {
		return "v1"
	}
	return "legacy"
}

// DetectFormat classifies an envelope. The branch is taken once; there
// is no fallback to the other format afterwards. See the package
// documentation for the known "01"-prefix blind spot.
func DetectFormat(envelope string) Format {
	if len(envelope) > v1HeaderLen && strings.HasPrefix(envelope, VersionMarker) {
		return FormatV1
	}
	return FormatLegacy
}

// envelopeParts is the decoded content of an envelope, valid for one
// decrypt call.
type envelopeParts struct {
	format Format
	salt   []byte
	iv     []byte
	cipher []byte
}

// parseEnvelope splits an envelope into salt, IV, and ciphertext. Any
// malformed segment is reported as ErrDecryptionFailed.
func parseEnvelope(envelope string) (*envelopeParts, error) {
	if DetectFormat(envelope) == FormatV1 {
		salt, err := hex.DecodeString(envelope[len(VersionMarker):saltHexEnd])
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		iv, err := hex.DecodeString(envelope[saltHexEnd:v1HeaderLen])
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		ciphertext, err := hex.DecodeString(envelope[v1HeaderLen:])
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return &envelopeParts{format: FormatV1, salt: salt, iv: iv, cipher: ciphertext}, nil
	}

	if len(envelope) < ivHexLen {
		return nil, ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(envelope[:ivHexLen])
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	ciphertext, err := hex.DecodeString(envelope[ivHexLen:])
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return &envelopeParts{format: FormatLegacy, salt: []byte(LegacySalt), iv: iv, cipher: ciphertext}, nil
}

// Encrypt encrypts plaintext under password into a v1 envelope. Each
// call draws a fresh salt and IV, so encrypting the same input twice
// yields different envelopes that decrypt to the same plaintext.
func Encrypt(password Password, plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}

	salt, err := RandomBytes(SaltSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	iv, err := RandomBytes(IVSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	key := DeriveKey(password, salt)
	ciphertext, err := encryptAESCBC(key, iv, []byte(plaintext))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(v1HeaderLen + 2*len(ciphertext))
	b.WriteString(VersionMarker)
	b.WriteString(hex.EncodeToString(salt))
	b.WriteString(hex.EncodeToString(iv))
	b.WriteString(hex.EncodeToString(ciphertext))
	return b.String(), nil
}

// Decrypt recovers the plaintext from an envelope produced by Encrypt
// or by any of the other client implementations, in either format
// generation. Beyond the emptiness check every failure is the generic
// ErrDecryptionFailed.
func Decrypt(password Password, envelope string) (string, error) {
	if envelope == "" {
		return "", ErrEmptyEnvelope
	}

	parts, err := parseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	key := DeriveKey(password, parts.salt)
	plaintext, err := decryptAESCBC(key, parts.iv, parts.cipher)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
