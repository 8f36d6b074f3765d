package hilbert

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// dft returns the exact len(x)-point DFT of x, or the normalized inverse
// DFT when inverse is set. Only power-of-two FFT plans are created: other
// lengths go through Bluestein's chirp-z algorithm.
func dft(x []complex128, inverse bool) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n == 1 {
		return []complex128{x[0]}, nil
	}

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("hilbert: failed to create FFT plan: %w", err)
		}
		out := make([]complex128, n)
		if inverse {
			err = plan.Inverse(out, x)
		} else {
			err = plan.Forward(out, x)
		}
		if err != nil {
			return nil, fmt.Errorf("hilbert: FFT failed: %w", err)
		}
		return out, nil
	}

	if !inverse {
		return bluestein(x)
	}

	// IDFT(X) = conj(DFT(conj(X))) / n
	conj := make([]complex128, n)
	for i, v := range x {
		conj[i] = cmplx.Conj(v)
	}
	out, err := bluestein(conj)
	if err != nil {
		return nil, err
	}
	scale := 1 / float64(n)
	for i, v := range out {
		out[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return out, nil
}

// bluestein computes the forward DFT of x as a linear convolution with a
// chirp, evaluated by power-of-two FFTs of at least 2n-1 points:
//
//	X[k] = w[k] * sum_j (x[j]*w[j]) * conj(w[k-j]),  w[j] = exp(-i*pi*j^2/n)
func bluestein(x []complex128) ([]complex128, error) {
	n := len(x)
	fftSize := nextPowerOf2(2*n - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("hilbert: failed to create FFT plan: %w", err)
	}

	chirp := make([]complex128, n)
	for j := range chirp {
		// j^2 mod 2n keeps the phase argument small for long blocks.
		jj := (j * j) % (2 * n)
		s, c := math.Sincos(math.Pi * float64(jj) / float64(n))
		chirp[j] = complex(c, -s)
	}

	a := make([]complex128, fftSize)
	for j, v := range x {
		a[j] = v * chirp[j]
	}
	b := make([]complex128, fftSize)
	b[0] = cmplx.Conj(chirp[0])
	for j := 1; j < n; j++ {
		b[j] = cmplx.Conj(chirp[j])
		b[fftSize-j] = b[j]
	}

	aFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, a); err != nil {
		return nil, fmt.Errorf("hilbert: forward FFT failed: %w", err)
	}
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(bFreq, b); err != nil {
		return nil, fmt.Errorf("hilbert: forward FFT failed: %w", err)
	}
	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}
	if err := plan.Inverse(a, aFreq); err != nil {
		return nil, fmt.Errorf("hilbert: inverse FFT failed: %w", err)
	}

	out := make([]complex128, n)
	for k := range out {
		out[k] = chirp[k] * a[k]
	}
	return out, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
