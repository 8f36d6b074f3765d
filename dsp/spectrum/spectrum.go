package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modulation/dsp/core"
	"github.com/cwbudde/algo-modulation/dsp/window"
)

var errEmptyInput = errors.New("spectrum input must not be empty")

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}

// Spectrum is a one-sided amplitude spectrum. A full-scale tone centred on
// a bin shows its peak amplitude.
type Spectrum struct {
	Frequencies []float64 // Hz
	Magnitudes  []float64
	SampleRate  float64
	FFTSize     int
}

// Compute windows samples with wt, zero-pads to a power of two and returns
// the amplitude-corrected one-sided spectrum.
func Compute(samples []float64, sampleRate float64, wt window.Type) (*Spectrum, error) {
	n := len(samples)
	if n == 0 {
		return nil, errEmptyInput
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("spectrum sample rate must be > 0 and finite: %f", sampleRate)
	}

	coeffs := window.Generate(wt, n, window.WithPeriodic())
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	windowed, err := window.ApplyCoefficients(samples, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	fftSize := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	input := make([]complex128, fftSize)
	for i, v := range windowed {
		input[i] = complex(v, 0)
	}
	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, input); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	mags := Magnitude(bins[:half])
	norm := 1 / (float64(n) * gain)
	freqs := make([]float64, half)
	for k := range mags {
		scale := 2 * norm
		if k == 0 || (k == half-1 && fftSize%2 == 0) {
			scale = norm
		}
		mags[k] *= scale
		freqs[k] = float64(k) * sampleRate / float64(fftSize)
	}

	return &Spectrum{
		Frequencies: freqs,
		Magnitudes:  mags,
		SampleRate:  sampleRate,
		FFTSize:     fftSize,
	}, nil
}

// Peak returns the frequency and magnitude of the strongest non-DC bin.
func (s *Spectrum) Peak() (freqHz, magnitude float64) {
	best := -1
	for k := 1; k < len(s.Magnitudes); k++ {
		if best < 0 || s.Magnitudes[k] > s.Magnitudes[best] {
			best = k
		}
	}
	if best < 0 {
		if len(s.Magnitudes) == 0 {
			return 0, 0
		}
		return s.Frequencies[0], s.Magnitudes[0]
	}
	return s.Frequencies[best], s.Magnitudes[best]
}

// DB returns the magnitudes in dB (20*log10), -Inf for empty bins.
func (s *Spectrum) DB() []float64 {
	out := make([]float64, len(s.Magnitudes))
	for i, m := range s.Magnitudes {
		out[i] = core.LinearToDB(m)
	}
	return out
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
