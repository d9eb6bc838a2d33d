package crypto

import (
	"strings"
	"unicode/utf8"
)

// forbiddenPasswordChars are the characters a password may never
// contain: space, tab, LF, CR, vertical tab, form feed, NUL.
const forbiddenPasswordChars = " \t\n\r\v\f\x00"

// Password is a password that has passed validation. NewPassword is the
// only constructor, so an unvalidated string can never reach the key
// derivation.
type Password string

// NewPassword validates s and returns it as a Password.
func NewPassword(s string) (Password, error) {
	if err := ValidatePassword(s); err != nil {
		return "", err
	}
	return Password(s), nil
}

// ValidatePassword checks the paste-protection password policy: 8 to 30
// characters with no whitespace or control characters. Length is counted
// in Unicode code points, which matches the string length the browser
// and editor clients measure for any password that passes the character
// rule.
//
// The account-signup policy additionally requires mixed case, a digit,
// and a symbol. That is a different policy with a different owner; it
// must not be applied to paste protection.
func ValidatePassword(password string) error {
	switch n := utf8.RuneCountInString(password); {
	case n < MinPasswordLen:
		return ErrPasswordTooShort
	case n > MaxPasswordLen:
		return ErrPasswordTooLong
	}
	if strings.ContainsAny(password, forbiddenPasswordChars) {
		return ErrPasswordForbiddenChar
	}
	return nil
}
