// Package crypto implements the password-protection envelope shared by
// every PastePortal client. A paste protected here is encrypted before
// it leaves the process and travels as an opaque hex string; the server
// stores it without ever seeing the password or the plaintext.
//
// # Algorithm Suite
//
// The envelope uses deliberately boring, universally available
// primitives, because the same bytes must be produced by the browser
// client (Web Crypto) and the VS Code extension (node crypto):
//
//   - PBKDF2-HMAC-SHA-256 with 100,000 iterations: stretches the
//     password and salt into a 32-byte AES key.
//
//   - AES-256-CBC with PKCS#7 padding: encrypts the UTF-8 plaintext.
//     There is no authentication tag; tampering is detected only as a
//     padding or UTF-8 failure at decrypt time.
//
// # Envelope Format
//
// Two generations exist on the wire. The current (v1) layout is
//
//	"01" || hex(salt, 16 bytes) || hex(iv, 16 bytes) || hex(ciphertext)
//
// all lowercase, for a minimum length of 98 characters. The original
// layout predates per-paste salts:
//
//	hex(iv, 16 bytes) || hex(ciphertext)
//
// with the key derived from the fixed, public [LegacySalt] literal.
// Legacy envelopes are decrypted but never produced.
//
// # Format Detection
//
// An envelope longer than 66 characters that starts with "01" is
// treated as v1; anything else is treated as legacy. The branch is
// taken once and never revisited. The heuristic is inherited from the
// deployed clients and has a known blind spot: a legacy envelope of
// more than one cipher block whose IV hex happens to begin with "01"
// is misread as v1 and fails to decrypt even with the right password.
// Fixing that here would orphan envelopes the other clients produce,
// so the ambiguity is kept and documented instead.
//
// # Error Discipline
//
// Password and emptiness problems are reported specifically so a UI
// can tell the user what to fix. Everything after format detection
// (malformed hex, short segments, bad padding, wrong key, invalid
// UTF-8) collapses into the single [ErrDecryptionFailed]. A caller,
// and therefore an attacker, cannot distinguish a wrong password from
// corrupted data.
//
// Passwords, derived keys, and plaintext never appear in errors and
// are never logged.
package crypto
