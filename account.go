package pasteportal

import "unicode"

// ValidateAccountPassword reports whether a password is acceptable for
// a PastePortal account. Account passwords share the paste-password
// length and whitespace rules and additionally require mixed case, a
// digit and a symbol.
//
// This is a different policy from ValidatePastePassword and is never
// applied on the encryption path: a paste password needs no character
// classes at all.
func ValidateAccountPassword(password string) error {
	if err := ValidatePastePassword(password); err != nil {
		return err
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper || !hasLower:
		return &ValidationError{Field: "password", Reason: ErrPasswordNeedsMixedCase.Error(), Err: ErrPasswordNeedsMixedCase}
	case !hasDigit:
		return &ValidationError{Field: "password", Reason: ErrPasswordNeedsDigit.Error(), Err: ErrPasswordNeedsDigit}
	case !hasSymbol:
		return &ValidationError{Field: "password", Reason: ErrPasswordNeedsSymbol.Error(), Err: ErrPasswordNeedsSymbol}
	}

	return nil
}
