package webdemo

import (
	"golang.org/x/exp/rand"

	"github.com/cwbudde/algo-modulation/modulation"
)

// RandomBits returns n pseudo-random bits as a string of '0' and '1'.
// Equal seeds give equal strings.
func RandomBits(n int, seed uint64) string {
	if n <= 0 {
		return ""
	}

	r := rand.New(rand.NewSource(seed))
	bits := make([]uint8, n)
	for i := range bits {
		bits[i] = uint8(r.Intn(2))
	}
	return modulation.FormatBits(bits)
}
