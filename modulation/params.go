package modulation

import "github.com/cwbudde/algo-modulation/dsp/signal"

// Params are the caller-supplied inputs of one generation call.
type Params struct {
	Scheme Scheme

	MessageFrequency float64 // Hz
	MessageAmplitude float64
	CarrierFrequency float64 // Hz
	CarrierAmplitude float64

	MessageWaveform signal.Waveform
	CarrierWaveform signal.Waveform

	// Bits is the raw bit string for digital schemes. Characters other
	// than '0' and '1' are ignored.
	Bits string
}

// ParseParams builds Params from the string form used by HTML forms and
// command lines. Waveform names other than "sine" select cosine. Only the
// scheme name can fail.
func ParseParams(scheme string, msgFreq, msgAmp, carrierFreq, carrierAmp float64, msgWaveform, carrierWaveform, bits string) (Params, error) {
	s, err := ParseScheme(scheme)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Scheme:           s,
		MessageFrequency: msgFreq,
		MessageAmplitude: msgAmp,
		CarrierFrequency: carrierFreq,
		CarrierAmplitude: carrierAmp,
		MessageWaveform:  signal.ParseWaveform(msgWaveform),
		CarrierWaveform:  signal.ParseWaveform(carrierWaveform),
		Bits:             bits,
	}, nil
}
