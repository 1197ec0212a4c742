package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrRandomSource indicates the platform's secure random source could not be
// read. There is no fallback generator; callers get this error immediately.
var ErrRandomSource = errors.New("secure random source unavailable")

// Source yields uniform random integers. Production code uses the
// crypto/rand-backed implementation; tests may substitute a deterministic one.
type Source interface {
	// IntN returns a uniform random integer in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// cryptoSource reads from crypto/rand. It is stateless and safe for
// concurrent use.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}

// shuffle permutes data in place with a Fisher-Yates pass driven by src,
// so every permutation is equally likely.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
