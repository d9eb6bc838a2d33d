package crypto

import "errors"

var (
	// ErrPasswordTooShort is returned when the password has fewer than
	// MinPasswordLen characters (or is empty).
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrPasswordTooLong is returned when the password has more than
	// MaxPasswordLen characters.
	ErrPasswordTooLong = errors.New("password must be at most 30 characters")

	// ErrPasswordForbiddenChar is returned when the password contains
	// whitespace or a control character.
	ErrPasswordForbiddenChar = errors.New("password must not contain spaces or control characters")

	// ErrEmptyPlaintext is returned when there is nothing to encrypt.
	ErrEmptyPlaintext = errors.New("paste content cannot be empty")

	// ErrEmptyEnvelope is returned when there is nothing to decrypt.
	ErrEmptyEnvelope = errors.New("encrypted content cannot be empty")

	// ErrDecryptionFailed is returned for every malformed-envelope and
	// failed-decrypt condition. Wrong passwords and corrupted data are
	// deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")
)
