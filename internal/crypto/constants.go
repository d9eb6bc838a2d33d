package crypto

const (
	// SaltSize is the size of the per-paste random salt in bytes.
	SaltSize = 16
	// IVSize is the size of the AES-CBC initialization vector in bytes.
	IVSize = 16
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32

	// Iterations is the PBKDF2 iteration count. It is fixed across every
	// client implementation; changing it would break envelope portability.
	Iterations = 100000

	// VersionMarker prefixes every v1 envelope.
	VersionMarker = "01"
	// LegacySalt is the fixed salt of pre-versioning envelopes. It is
	// neither secret nor random; it exists only so old envelopes remain
	// decryptable.
	LegacySalt = "salt"

	// MinPasswordLen and MaxPasswordLen bound the password length,
	// counted in Unicode code points.
	MinPasswordLen = 8
	MaxPasswordLen = 30

	saltHexLen  = 2 * SaltSize
	ivHexLen    = 2 * IVSize
	saltHexEnd  = len(VersionMarker) + saltHexLen
	v1HeaderLen = len(VersionMarker) + saltHexLen + ivHexLen
)

// AlgsCiphersuite is the canonical string representation of the envelope
// algorithm suite.
var AlgsCiphersuite = "PBKDF2-HMAC-SHA-256/100000:AES-256-CBC:PKCS7"
