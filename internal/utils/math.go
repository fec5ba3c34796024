package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
)

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// SecureIntn returns a random integer in [0, n). It is safe for concurrent use.
// Falls back to math/rand/v2 if the system entropy source fails.
func SecureIntn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := SecureRandomInt(0, n-1)
	if err != nil {
		return rand.IntN(n) //nolint:gosec // fallback only, game randomness
	}
	return v
}
