package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the source of salt and IV bytes. It defaults to the
// platform CSPRNG and can be overridden for testing.
var randReader io.Reader = rand.Reader

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
