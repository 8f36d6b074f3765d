// Package frequency computes shape descriptors of one-sided magnitude
// spectra, such as the bandwidth a modulated signal occupies.
package frequency

import "math"

// Occupied-bandwidth and rolloff fractions used by Calculate.
const (
	DefaultOccupiedFraction = 0.99
	DefaultRolloffFraction  = 0.85
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int     `json:"binCount"`
	PeakBin  int     `json:"peakBin"`
	Energy   float64 `json:"energy"` // sum of squared magnitudes

	Centroid     float64 `json:"centroid"`     // Hz
	Spread       float64 `json:"spread"`       // Hz
	Flatness     float64 `json:"flatness"`     // Wiener entropy, 0..1
	Rolloff      float64 `json:"rolloff"`      // Hz below which 85% of the energy lies
	Bandwidth3dB float64 `json:"bandwidth3dB"` // Hz around the peak

	// Occupied is the band holding 99% of the energy, trimming 0.5% from
	// each edge.
	OccupiedLow       float64 `json:"occupiedLow"`
	OccupiedHigh      float64 `json:"occupiedHigh"`
	OccupiedBandwidth float64 `json:"occupiedBandwidth"`
}

// binFreq returns the frequency in Hz of bin i.
// fftSize = 2 * (binCount - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all statistics from a linear magnitude spectrum with
// bins from DC to Nyquist. Spectra with fewer than two bins yield the zero
// Stats apart from BinCount and Energy.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	s := Stats{BinCount: n}

	var sum float64
	for i, v := range magnitude {
		sum += v
		s.Energy += v * v
		if v > magnitude[s.PeakBin] {
			s.PeakBin = i
		}
	}
	if n < 2 || sum == 0 {
		return s
	}

	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, DefaultRolloffFraction, s.Energy)
	s.Bandwidth3dB = Bandwidth(magnitude, sampleRate)
	s.OccupiedLow, s.OccupiedHigh = occupied(magnitude, sampleRate, DefaultOccupiedFraction, s.Energy)
	s.OccupiedBandwidth = s.OccupiedHigh - s.OccupiedLow

	return s
}

func centroid(magnitude []float64, sampleRate, sumMag float64) float64 {
	n := len(magnitude)
	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}
	return weighted / sumMag
}

// spread is the standard deviation of the spectrum around its centroid.
func spread(magnitude []float64, sampleRate, cent, sumMag float64) float64 {
	n := len(magnitude)
	weighted := 0.0
	for i, v := range magnitude {
		d := binFreq(i, sampleRate, n) - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sumMag)
}

// Flatness returns the spectral flatness (geometric over arithmetic mean)
// of bins 1..N-1. Any empty bin makes it 0.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range magnitude[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the frequency below which fraction (0..1) of the energy lies.
func Rolloff(magnitude []float64, sampleRate, fraction float64) float64 {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}
	if len(magnitude) < 2 || energy == 0 {
		return 0
	}
	return rolloff(magnitude, sampleRate, fraction, energy)
}

func rolloff(magnitude []float64, sampleRate, fraction, energy float64) float64 {
	n := len(magnitude)
	threshold := fraction * energy
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}
	return binFreq(n-1, sampleRate, n)
}

// OccupiedBandwidth returns the edges of the band holding fraction of the
// energy, with (1-fraction)/2 trimmed from each end of the spectrum.
func OccupiedBandwidth(magnitude []float64, sampleRate, fraction float64) (low, high float64) {
	energy := 0.0
	for _, v := range magnitude {
		energy += v * v
	}
	if len(magnitude) < 2 || energy == 0 {
		return 0, 0
	}
	return occupied(magnitude, sampleRate, fraction, energy)
}

func occupied(magnitude []float64, sampleRate, fraction, energy float64) (low, high float64) {
	n := len(magnitude)
	tail := (1 - fraction) / 2 * energy

	lowBin, cum := 0, 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum > tail {
			lowBin = i
			break
		}
	}

	highBin := n - 1
	cum = 0
	for i := n - 1; i >= 0; i-- {
		cum += magnitude[i] * magnitude[i]
		if cum > tail {
			highBin = i
			break
		}
	}

	if highBin < lowBin {
		highBin = lowBin
	}
	return binFreq(lowBin, sampleRate, n), binFreq(highBin, sampleRate, n)
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz,
// interpolating linearly between bins.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	peakBin := 0
	for i, v := range magnitude {
		if v > magnitude[peakBin] {
			peakBin = i
		}
	}
	peak := magnitude[peakBin]
	if peak == 0 {
		return 0
	}

	threshold := peak / math.Sqrt2

	lower := binFreq(0, sampleRate, n)
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = interpFreq(i-1, i, magnitude[i-1], magnitude[i], threshold, sampleRate, n)
			break
		}
	}

	upper := binFreq(n-1, sampleRate, n)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = interpFreq(i, i+1, magnitude[i], magnitude[i+1], threshold, sampleRate, n)
			break
		}
	}

	return math.Max(0, upper-lower)
}

// interpFreq finds where the magnitude crosses threshold between two bins.
func interpFreq(binLow, binHigh int, magLow, magHigh, threshold, sampleRate float64, binCount int) float64 {
	fLow := binFreq(binLow, sampleRate, binCount)
	fHigh := binFreq(binHigh, sampleRate, binCount)

	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - magLow) / denom
	return fLow + t*(fHigh-fLow)
}
