package hilbert

import "errors"

// ErrEmptyInput is returned for zero-length input blocks.
var ErrEmptyInput = errors.New("hilbert: input must not be empty")

// Analytic returns the analytic signal x + j*H{x} of the real block x.
// The transform is the exact len(x)-point one for every length; the block
// is never zero-padded.
func Analytic(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	input := make([]complex128, n)
	for i, v := range x {
		input[i] = complex(v, 0)
	}

	spectrum, err := dft(input, false)
	if err != nil {
		return nil, err
	}

	applyAnalyticMask(spectrum)

	return dft(spectrum, true)
}

// Transform returns the Hilbert transform of x, the imaginary part of the
// analytic signal.
func Transform(x []float64) ([]float64, error) {
	a, err := Analytic(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = imag(v)
	}
	return out, nil
}

// applyAnalyticMask keeps DC (and Nyquist for even sizes), doubles the
// positive-frequency bins and zeroes the negative-frequency bins.
func applyAnalyticMask(spec []complex128) {
	n := len(spec)
	half := (n + 1) / 2
	for k := 1; k < half; k++ {
		spec[k] *= 2
	}
	start := half
	if n%2 == 0 {
		start = n/2 + 1
	}
	for k := start; k < n; k++ {
		spec[k] = 0
	}
}
