package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	pasteportal "github.com/stiliajohny/pasteportal-sub001"
	"github.com/stiliajohny/pasteportal-sub001/internal/crypto"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Stdout != os.Stdout {
		t.Error("DefaultConfig().Stdout should be os.Stdout")
	}
	if cfg.Stderr != os.Stderr {
		t.Error("DefaultConfig().Stderr should be os.Stderr")
	}
}

func TestRun_NoArgs(t *testing.T) {
	cfg := &Config{Stdout: &bytes.Buffer{}}
	err := run([]string{"testhelper"}, cfg)
	if err == nil {
		t.Error("run() should return error with no args")
	}
	if !strings.Contains(err.Error(), "usage") {
		t.Errorf("error should contain 'usage', got %v", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	cfg := &Config{Stdout: &bytes.Buffer{}}
	err := run([]string{"testhelper", "explode"}, cfg)
	if err == nil {
		t.Error("run() should return error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("error should contain 'unknown command', got %v", err)
	}
}

func TestRun_EncryptDecrypt(t *testing.T) {
	var encOut bytes.Buffer
	err := run([]string{"testhelper", "encrypt", "Sup3rSecret!", "hello world"}, &Config{Stdout: &encOut})
	if err != nil {
		t.Fatalf("encrypt error = %v", err)
	}

	envelope := strings.TrimSpace(encOut.String())
	if !pasteportal.IsLikelyEncrypted(envelope) {
		t.Fatalf("output %q does not look like an envelope", envelope)
	}

	var decOut bytes.Buffer
	err = run([]string{"testhelper", "decrypt", "Sup3rSecret!", envelope}, &Config{Stdout: &decOut})
	if err != nil {
		t.Fatalf("decrypt error = %v", err)
	}
	if got := strings.TrimSpace(decOut.String()); got != "hello world" {
		t.Errorf("decrypt output = %q, want hello world", got)
	}
}

func TestRun_Encrypt_BadUsage(t *testing.T) {
	err := run([]string{"testhelper", "encrypt", "onlypassword"}, &Config{Stdout: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "usage") {
		t.Errorf("error = %v, want usage error", err)
	}
}

func TestRun_Encrypt_InvalidPassword(t *testing.T) {
	err := run([]string{"testhelper", "encrypt", "short", "hello"}, &Config{Stdout: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("encrypt with invalid password should fail")
	}
	if !strings.Contains(err.Error(), "at least 8 characters") {
		t.Errorf("error = %v, want the validation message", err)
	}
}

func TestRun_Decrypt_WrongPassword(t *testing.T) {
	var encOut bytes.Buffer
	if err := run([]string{"testhelper", "encrypt", "Sup3rSecret!", "hello"}, &Config{Stdout: &encOut}); err != nil {
		t.Fatalf("encrypt error = %v", err)
	}

	err := run([]string{"testhelper", "decrypt", "wrong_pw12", strings.TrimSpace(encOut.String())}, &Config{Stdout: &bytes.Buffer{}})
	if err == nil {
		t.Fatal("decrypt with wrong password should fail")
	}
	if !strings.Contains(err.Error(), "decryption failed") {
		t.Errorf("error = %v, want the generic decryption failure", err)
	}
}

func TestRun_Vectors(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"testhelper", "vectors"}, &Config{Stdout: &out}); err != nil {
		t.Fatalf("vectors error = %v", err)
	}

	var vectors []VectorOutput
	if err := json.Unmarshal(out.Bytes(), &vectors); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(vectors) != len(corpus) {
		t.Fatalf("vector count = %d, want %d", len(vectors), len(corpus))
	}

	for _, v := range vectors {
		if v.Ciphersuite != crypto.AlgsCiphersuite {
			t.Errorf("ciphersuite = %q, want %q", v.Ciphersuite, crypto.AlgsCiphersuite)
		}
		if v.Format != "v1" {
			t.Errorf("format = %q, want v1 (the encoder only emits v1)", v.Format)
		}
		// Each vector must be independently decryptable.
		got, err := pasteportal.DecryptWithPassword(v.Password, v.Envelope)
		if err != nil {
			t.Errorf("vector %q does not decrypt: %v", v.Envelope, err)
			continue
		}
		if got != v.Plaintext {
			t.Errorf("vector decrypts to %q, want %q", got, v.Plaintext)
		}
	}
}

func TestRun_Vectors_FreshEnvelopes(t *testing.T) {
	var first, second bytes.Buffer
	if err := run([]string{"testhelper", "vectors"}, &Config{Stdout: &first}); err != nil {
		t.Fatalf("vectors error = %v", err)
	}
	if err := run([]string{"testhelper", "vectors"}, &Config{Stdout: &second}); err != nil {
		t.Fatalf("vectors error = %v", err)
	}
	if first.String() == second.String() {
		t.Error("two vector runs must not repeat salts and IVs")
	}
}

func TestRun_Roundtrip(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"testhelper", "roundtrip"}, &Config{Stdout: &out}); err != nil {
		t.Fatalf("roundtrip error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "ok:") {
		t.Errorf("output = %q, want ok line", out.String())
	}
}

func TestFatal(t *testing.T) {
	originalExitFunc := exitFunc
	defer func() { exitFunc = originalExitFunc }()

	var exitCode int
	exitFunc = func(code int) {
		exitCode = code
	}

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fatal("test error: %s", "details")

	w.Close()
	os.Stderr = oldStderr
	var buf bytes.Buffer
	buf.ReadFrom(r)

	if exitCode != 1 {
		t.Errorf("exitCode = %d, want 1", exitCode)
	}
	if got := buf.String(); got != "test error: details\n" {
		t.Errorf("stderr = %q, want the formatted line", got)
	}
}
