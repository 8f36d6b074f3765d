package modulation

import (
	"strings"

	"github.com/cwbudde/algo-modulation/dsp/core"
)

var defaultBits = []uint8{0, 1, 0, 1}

// DefaultBits returns the pattern substituted for an empty bit string.
func DefaultBits() []uint8 {
	return append([]uint8(nil), defaultBits...)
}

// ParseBits keeps the '0' and '1' characters of s in order and returns them
// as bits. The result is nil when s holds no bit characters.
func ParseBits(s string) []uint8 {
	var bits []uint8
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		}
	}
	return bits
}

// FormatBits renders bits as a string of '0' and '1'.
func FormatBits(bits []uint8) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// symbolBits parses s, substitutes the default pattern when nothing is
// left, and pads with zero bits to a whole number of symbols.
func symbolBits(s string, bitsPerSymbol int) []uint8 {
	bits := ParseBits(s)
	if len(bits) == 0 {
		bits = DefaultBits()
	}
	if bitsPerSymbol > 1 {
		for len(bits)%bitsPerSymbol != 0 {
			bits = append(bits, 0)
		}
	}
	return bits
}

// SplitIQ splits bits into the even-indexed (in-phase) and odd-indexed
// (quadrature) sub-sequences. An odd-length input is treated as if padded
// with a trailing zero.
func SplitIQ(bits []uint8) (i, q []uint8) {
	n := (len(bits) + 1) / 2
	i = make([]uint8, 0, n)
	q = make([]uint8, 0, n)
	for k := 0; k < n; k++ {
		i = append(i, bits[2*k])
		if 2*k+1 < len(bits) {
			q = append(q, bits[2*k+1])
		} else {
			q = append(q, 0)
		}
	}
	return i, q
}

// samplesPerSymbol returns floor(n/symbols), at least 1.
func samplesPerSymbol(n, symbols int) int {
	if symbols <= 0 {
		return n
	}
	sps := n / symbols
	if sps < 1 {
		sps = 1
	}
	return sps
}

// holdBits returns an n-sample step waveform in which every bit is held for
// samplesPerSymbol(n, len(bits)) samples. Samples past the last bit stay
// zero; bits that do not fit are dropped.
func holdBits(bits []uint8, n int) (wave []float64, samplesPerBit int) {
	wave = make([]float64, n)
	samplesPerBit = samplesPerSymbol(n, len(bits))
	for k, b := range bits {
		start := k * samplesPerBit
		if start >= n {
			break
		}
		if b == 0 {
			continue
		}
		core.Fill(wave[start:min(start+samplesPerBit, n)], 1)
	}
	return wave, samplesPerBit
}
