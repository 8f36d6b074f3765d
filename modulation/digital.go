package modulation

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// binaryFrame holds the held bit waveform shared by the one bit per symbol
// schemes.
type binaryFrame struct {
	bits          []uint8
	wave          []float64
	samplesPerBit int
}

func (f *frame) binary() binaryFrame {
	bits := symbolBits(f.p.Bits, 1)
	wave, spb := holdBits(bits, f.len())
	return binaryFrame{bits: bits, wave: wave, samplesPerBit: spb}
}

// synthesizeASK keys the carrier on and off: b(t) * c(t).
func synthesizeASK(f *frame) (synthesis, error) {
	b := f.binary()
	out := make([]float64, f.len())
	vecmath.MulBlock(out, b.wave, f.carrier)
	return synthesis{
		message:   Baseband{Samples: b.wave},
		modulated: out,
		index:     IndexOf(1),
		bits:      b.bits,
	}, nil
}

// synthesizeFSK selects fc+dev for a one and fc-dev for a zero, sample by
// sample. The index is (f1-f0)/(2*bitRate) with bitRate = fs/samplesPerBit.
func synthesizeFSK(f *frame) (synthesis, error) {
	b := f.binary()
	f0 := f.p.CarrierFrequency - f.cfg.FSKDeviation
	f1 := f.p.CarrierFrequency + f.cfg.FSKDeviation

	out := make([]float64, f.len())
	for i := range out {
		freq := f0
		if b.wave[i] != 0 {
			freq = f1
		}
		out[i] = f.p.CarrierAmplitude * math.Sin(f.phase(freq, i))
	}

	bitRate := f.cfg.Processor.SampleRate / float64(b.samplesPerBit)
	return synthesis{
		message:   Baseband{Samples: b.wave},
		modulated: out,
		index:     IndexOf((f1 - f0) / (2 * bitRate)),
		bits:      b.bits,
	}, nil
}

// synthesizeBPSK computes Ac*cos(2*pi*fc*t + pi*b(t)).
func synthesizeBPSK(f *frame) (synthesis, error) {
	b := f.binary()
	out := make([]float64, f.len())
	for i := range out {
		out[i] = f.p.CarrierAmplitude * math.Cos(f.phase(f.p.CarrierFrequency, i)+math.Pi*b.wave[i])
	}
	return synthesis{
		message:   Baseband{Samples: b.wave},
		modulated: out,
		index:     IndexOf(math.Pi),
		bits:      b.bits,
	}, nil
}
