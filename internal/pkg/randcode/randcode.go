package randcode

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Alphabet omits 0/O and 1/I so codes can be read aloud or typed from paper.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var ErrInvalidLength = errors.New("code length must be positive")

func Generate(n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}
	max := big.NewInt(int64(len(Alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = Alphabet[idx.Int64()]
	}
	return string(buf), nil
}
