package modulation

import (
	"math"

	"github.com/cwbudde/algo-modulation/dsp/core"
)

// ConstellationPoint is one (I, Q) amplitude pair.
type ConstellationPoint struct {
	I float64
	Q float64
}

// QPSKPoint maps an (I bit, Q bit) pair to its Gray-coded unit-energy
// constellation point: 00 -> 45deg, 01 -> 135deg, 11 -> 225deg, 10 -> 315deg.
func QPSKPoint(iBit, qBit uint8) ConstellationPoint {
	const a = 1 / math.Sqrt2
	switch {
	case iBit == 0 && qBit == 0:
		return ConstellationPoint{a, a}
	case iBit == 0:
		return ConstellationPoint{-a, a}
	case qBit != 0:
		return ConstellationPoint{-a, -a}
	default:
		return ConstellationPoint{a, -a}
	}
}

// synthesizeQPSK maps bit pairs to constellation points held for
// samplesPerSymbol samples each and computes Ac*(I*cos(wc*t) - Q*sin(wc*t)).
func synthesizeQPSK(f *frame) (synthesis, error) {
	n := f.len()
	bits := symbolBits(f.p.Bits, 2)
	iBits, qBits := SplitIQ(bits)
	sps := samplesPerSymbol(n, len(iBits))

	iWave := make([]float64, n)
	qWave := make([]float64, n)
	for k := range iBits {
		start := k * sps
		if start >= n {
			break
		}
		end := min(start+sps, n)
		pt := QPSKPoint(iBits[k], qBits[k])
		core.Fill(iWave[start:end], pt.I)
		core.Fill(qWave[start:end], pt.Q)
	}

	out := make([]float64, n)
	for i := range out {
		wc := f.phase(f.p.CarrierFrequency, i)
		out[i] = f.p.CarrierAmplitude * (iWave[i]*math.Cos(wc) - qWave[i]*math.Sin(wc))
	}
	return synthesis{
		message:   BasebandIQ{I: iWave, Q: qWave},
		modulated: out,
		bits:      bits,
	}, nil
}
