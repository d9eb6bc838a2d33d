package pasteportal

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		password  string
		plaintext string
	}{
		{"short text", "Sup3rSecret!", "hello world"},
		{"multiline", "correct-horse-battery", "line one\nline two"},
		{"unicode", "pässwörd12", "naïve café ☕"},
		{"single byte", "aaaaaaaa", "x"},
		{"code snippet", "S3cret#With$ymbols", "func main() {\n\tfmt.Println(\"hi\")\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := EncryptWithPassword(tt.password, tt.plaintext)
			if err != nil {
				t.Fatalf("EncryptWithPassword() error = %v", err)
			}
			if !IsLikelyEncrypted(envelope) {
				t.Errorf("envelope %q should satisfy IsLikelyEncrypted", envelope)
			}

			got, err := DecryptWithPassword(tt.password, envelope)
			if err != nil {
				t.Fatalf("DecryptWithPassword() error = %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("round trip = %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestEncryptWithPassword_FreshSaltAndIV(t *testing.T) {
	t.Parallel()
	first, err := EncryptWithPassword("Sup3rSecret!", "hello world")
	if err != nil {
		t.Fatalf("EncryptWithPassword() error = %v", err)
	}
	second, err := EncryptWithPassword("Sup3rSecret!", "hello world")
	if err != nil {
		t.Fatalf("EncryptWithPassword() error = %v", err)
	}
	if first == second {
		t.Error("two encryptions of the same input must differ")
	}
}

// Envelopes produced by the deployed web and VS Code clients, one per
// format generation. Both must stay decryptable forever.
func TestDecryptWithPassword_FixedEnvelopes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		envelope string
		want     string
	}{
		{
			name:     "current format",
			password: "Sup3rSecret!",
			envelope: "01b183c4f029d29d09986e782905932c2410b852f04e70f78547aea3ecfc34cf9d27504455e3e86a1e8182c7590faebb86",
			want:     "hello world",
		},
		{
			name:     "legacy format",
			password: "Sup3rSecret!",
			envelope: "8123d2ee47b161556a745da59d6e345940de4224a833d6e90650697c22b9abf7",
			want:     "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecryptWithPassword(tt.password, tt.envelope)
			if err != nil {
				t.Fatalf("DecryptWithPassword() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecryptWithPassword() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecryptWithPassword_WrongPassword(t *testing.T) {
	t.Parallel()
	envelope, err := EncryptWithPassword("Sup3rSecret!", "hello world")
	if err != nil {
		t.Fatalf("EncryptWithPassword() error = %v", err)
	}

	_, err = DecryptWithPassword("wrong_pw12", envelope)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("error = %v, want ErrDecryptionFailed", err)
	}
	// The error must not reveal that the password was the problem.
	if strings.Contains(err.Error(), "password") {
		t.Errorf("error %q must not mention the password", err)
	}
}

func TestDecryptWithPassword_MalformedEnvelope(t *testing.T) {
	t.Parallel()
	for _, envelope := range []string{
		"zz" + strings.Repeat("00", 40),
		strings.Repeat("ab", 20),
		"01" + strings.Repeat("ab", 33),
	} {
		if _, err := DecryptWithPassword("Sup3rSecret!", envelope); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("DecryptWithPassword(%q) error = %v, want ErrDecryptionFailed", envelope, err)
		}
	}
}

func TestDecryptWithPassword_EmptyEnvelope(t *testing.T) {
	t.Parallel()
	_, err := DecryptWithPassword("Sup3rSecret!", "")
	if !errors.Is(err, ErrEmptyEnvelope) {
		t.Errorf("error = %v, want ErrEmptyEnvelope", err)
	}
}

func TestValidatePastePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "Sup3rSecret!", nil},
		{"minimum length", "12345678", nil},
		{"maximum length", strings.Repeat("a", 30), nil},
		{"too short", "1234567", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"too long", strings.Repeat("a", 31), ErrPasswordTooLong},
		{"space", "has a space", ErrPasswordForbiddenChar},
		{"tab", "has\ttab99", ErrPasswordForbiddenChar},
		{"newline", "has\nnewline", ErrPasswordForbiddenChar},
		{"nul", "has\x00nul99", ErrPasswordForbiddenChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePastePassword(tt.password)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePastePassword(%q) = %v, want nil", tt.password, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePastePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePastePassword_ErrorMessage(t *testing.T) {
	t.Parallel()
	err := ValidatePastePassword("short")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "password must be at least 8 characters" {
		t.Errorf("Error() = %q, want the display message", err.Error())
	}
}

func TestIsLikelyEncrypted(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"legacy envelope", "8123d2ee47b161556a745da59d6e345940de4224a833d6e90650697c22b9abf7", true},
		{"v1 envelope", "01b183c4f029d29d09986e782905932c2410b852f04e70f78547aea3ecfc34cf9d27504455e3e86a1e8182c7590faebb86", true},
		{"plain text", "hello world", false},
		{"empty", "", false},
		{"short hex", "deadbeef", false},
		{"odd length hex", strings.Repeat("a", 65), false},
		{"uppercase hex", strings.Repeat("AB", 32), false},
		{"hex with break", strings.Repeat("ab", 30) + "\n" + "abab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLikelyEncrypted(tt.content); got != tt.want {
				t.Errorf("IsLikelyEncrypted(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func ExampleEncryptWithPassword() {
	envelope, err := EncryptWithPassword("Sup3rSecret!", "hello world")
	if err != nil {
		log.Fatal(err)
	}

	plaintext, err := DecryptWithPassword("Sup3rSecret!", envelope)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(plaintext)
	// Output: hello world
}
