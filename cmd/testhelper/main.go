// Command testhelper is the Go side of the cross-implementation
// conformance contract: CI drives it next to the web and VS Code
// implementations and checks that envelopes produced by one side open
// on the others.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	pasteportal "github.com/stiliajohny/pasteportal-sub001"
	"github.com/stiliajohny/pasteportal-sub001/internal/crypto"
)

// Config carries the command's output streams so tests can run it
// in-process.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// corpus is the built-in set of password/plaintext pairs the vectors
// and roundtrip commands work through. It covers the shortest and
// longest legal passwords, multi-block content and non-ASCII text.
var corpus = []struct {
	Password  string
	Plaintext string
}{
	{"Sup3rSecret!", "hello world"},
	{"aaaaaaaa", "x"},
	{"123456789012345678901234567890", "line one\nline two\nline three"},
	{"correct-horse-battery", "The quick brown fox jumps over the lazy dog"},
	{"pässwörd12", "naïve café ☕"},
	{"S3cret#With$ymbols", `{"json":"payload","n":42}`},
}

// fixedEnvelopes are envelopes produced by the other implementations,
// one per format generation. roundtrip fails if either stops opening.
var fixedEnvelopes = []struct {
	Password  string
	Envelope  string
	Plaintext string
}{
	{
		Password:  "Sup3rSecret!",
		Envelope:  "01b183c4f029d29d09986e782905932c2410b852f04e70f78547aea3ecfc34cf9d27504455e3e86a1e8182c7590faebb86",
		Plaintext: "hello world",
	},
	{
		Password:  "Sup3rSecret!",
		Envelope:  "8123d2ee47b161556a745da59d6e345940de4224a833d6e90650697c22b9abf7",
		Plaintext: "hello world",
	},
}

// VectorOutput is one freshly encrypted conformance vector.
type VectorOutput struct {
	Ciphersuite string `json:"ciphersuite"`
	Format      string `json:"format"`
	Password    string `json:"password"`
	Plaintext   string `json:"plaintext"`
	Envelope    string `json:"envelope"`
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <encrypt|decrypt|vectors|roundtrip> [args]")
	}

	switch args[1] {
	case "encrypt":
		if len(args) != 4 {
			return fmt.Errorf("usage: testhelper encrypt <password> <plaintext>")
		}
		return runEncrypt(cfg, args[2], args[3])
	case "decrypt":
		if len(args) != 4 {
			return fmt.Errorf("usage: testhelper decrypt <password> <envelope>")
		}
		return runDecrypt(cfg, args[2], args[3])
	case "vectors":
		return runVectors(cfg)
	case "roundtrip":
		return runRoundtrip(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func runEncrypt(cfg *Config, password, plaintext string) error {
	envelope, err := pasteportal.EncryptWithPassword(password, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	fmt.Fprintln(cfg.Stdout, envelope)
	return nil
}

func runDecrypt(cfg *Config, password, envelope string) error {
	plaintext, err := pasteportal.DecryptWithPassword(password, envelope)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	fmt.Fprintln(cfg.Stdout, plaintext)
	return nil
}

func runVectors(cfg *Config) error {
	vectors := make([]VectorOutput, 0, len(corpus))
	for _, c := range corpus {
		envelope, err := pasteportal.EncryptWithPassword(c.Password, c.Plaintext)
		if err != nil {
			return fmt.Errorf("encrypt vector for %q: %w", c.Plaintext, err)
		}
		vectors = append(vectors, VectorOutput{
			Ciphersuite: crypto.AlgsCiphersuite,
			Format:      crypto.DetectFormat(envelope).String(),
			Password:    c.Password,
			Plaintext:   c.Plaintext,
			Envelope:    envelope,
		})
	}

	enc := json.NewEncoder(cfg.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vectors); err != nil {
		return fmt.Errorf("encode vectors: %w", err)
	}
	return nil
}

func runRoundtrip(cfg *Config) error {
	for _, c := range corpus {
		envelope, err := pasteportal.EncryptWithPassword(c.Password, c.Plaintext)
		if err != nil {
			return fmt.Errorf("encrypt %q: %w", c.Plaintext, err)
		}
		got, err := pasteportal.DecryptWithPassword(c.Password, envelope)
		if err != nil {
			return fmt.Errorf("decrypt %q: %w", c.Plaintext, err)
		}
		if got != c.Plaintext {
			return fmt.Errorf("roundtrip mismatch: got %q, want %q", got, c.Plaintext)
		}
	}

	for _, f := range fixedEnvelopes {
		got, err := pasteportal.DecryptWithPassword(f.Password, f.Envelope)
		if err != nil {
			return fmt.Errorf("decrypt fixed envelope %s: %w", f.Envelope[:8], err)
		}
		if got != f.Plaintext {
			return fmt.Errorf("fixed envelope %s: got %q, want %q", f.Envelope[:8], got, f.Plaintext)
		}
	}

	fmt.Fprintf(cfg.Stdout, "ok: %d roundtrips, %d fixed envelopes (%s)\n",
		len(corpus), len(fixedEnvelopes), crypto.AlgsCiphersuite)
	return nil
}

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
