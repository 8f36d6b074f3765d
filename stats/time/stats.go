// Package time computes time-domain statistics of sampled signals.
package time

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int     `json:"length"`
	DC            float64 `json:"dc"` // mean
	RMS           float64 `json:"rms"`
	Max           float64 `json:"max"`
	MaxPos        int     `json:"maxPos"`
	Min           float64 `json:"min"`
	MinPos        int     `json:"minPos"`
	Peak          float64 `json:"peak"`        // max(|max|, |min|)
	CrestFactor   float64 `json:"crestFactor"` // peak / RMS (linear)
	Energy        float64 `json:"energy"`      // sum of squares
	Power         float64 `json:"power"`       // energy / length
	ZeroCrossings int     `json:"zeroCrossings"`
}

// Calculate computes all statistics in a single pass. An empty signal
// yields the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum           float64
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		CrestFactor:   crest,
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: zeroCrossings,
	}
}
