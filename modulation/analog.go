package modulation

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-modulation/dsp/hilbert"
)

// synthesizeAM computes (1 + m/Ac) * c.
func synthesizeAM(f *frame) (synthesis, error) {
	ac := f.p.CarrierAmplitude
	out := make([]float64, f.len())
	for i := range out {
		out[i] = (1 + f.message[i]/ac) * f.carrier[i]
	}
	return synthesis{
		message:   Baseband{Samples: f.message},
		modulated: out,
		index:     IndexOf(f.p.MessageAmplitude / ac),
	}, nil
}

// synthesizeFM computes Ac*sin(2*pi*fc*t + beta*sin(2*pi*fm*t)) with
// beta = kf*Am/fm.
func synthesizeFM(f *frame) (synthesis, error) {
	beta := f.cfg.FrequencySensitivity * f.p.MessageAmplitude / f.p.MessageFrequency
	out := make([]float64, f.len())
	for i := range out {
		out[i] = f.p.CarrierAmplitude * math.Sin(f.phase(f.p.CarrierFrequency, i)+
			beta*math.Sin(f.phase(f.p.MessageFrequency, i)))
	}
	return synthesis{
		message:   Baseband{Samples: f.message},
		modulated: out,
		index:     IndexOf(beta),
	}, nil
}

// synthesizePM computes Ac*sin(2*pi*fc*t + kp*m/Am).
func synthesizePM(f *frame) (synthesis, error) {
	kp := f.cfg.PhaseSensitivity
	out := make([]float64, f.len())
	for i := range out {
		out[i] = f.p.CarrierAmplitude * math.Sin(f.phase(f.p.CarrierFrequency, i)+
			kp*(f.message[i]/f.p.MessageAmplitude))
	}
	return synthesis{
		message:   Baseband{Samples: f.message},
		modulated: out,
		index:     IndexOf(kp),
	}, nil
}

// synthesizeDSBSC computes m * c.
func synthesizeDSBSC(f *frame) (synthesis, error) {
	out := make([]float64, f.len())
	vecmath.MulBlock(out, f.message, f.carrier)
	return synthesis{
		message:   Baseband{Samples: f.message},
		modulated: out,
		index:     IndexOf(f.p.MessageAmplitude / f.p.CarrierAmplitude),
	}, nil
}

// synthesizeSSB computes the upper sideband m*cos(wc*t) - H{m}*sin(wc*t).
func synthesizeSSB(f *frame) (synthesis, error) {
	mHat, err := hilbert.Transform(f.message)
	if err != nil {
		return synthesis{}, err
	}
	out := make([]float64, f.len())
	for i := range out {
		wc := f.phase(f.p.CarrierFrequency, i)
		out[i] = f.message[i]*math.Cos(wc) - mHat[i]*math.Sin(wc)
	}
	return synthesis{
		message:   Baseband{Samples: f.message},
		modulated: out,
		index:     IndexOf(f.p.MessageAmplitude / f.p.CarrierAmplitude),
	}, nil
}
