package pkg

import (
	"crypto/rand"
	"math/big"
)

// Random picks integers in [0, n).
type Random interface {
	Intn(n int) int
}

type cryptoRandom struct{}

func NewRandom() Random {
	return cryptoRandom{}
}

func (cryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}

	return int(value.Int64())
}
