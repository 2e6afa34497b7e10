package random

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// Random provides ID and code generation that can be mocked for testing.
// Generated values label persisted rows; they never feed into game
// decisions.
type Random interface {
	// ID returns a new unique identifier
	ID() string

	// Code generates a random string of the given length from the given
	// alphabet, for human-readable invite codes
	Code(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand and UUIDs
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// ID returns a new UUID string
func (r *CryptoRandom) ID() string {
	return uuid.NewString()
}

// Code generates a random string of the given length from the given alphabet
func (r *CryptoRandom) Code(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[intn(len(alphabet))]
	}
	return string(result)
}

func intn(n int) int {
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(result.Int64())
}
