package modulation

import "encoding/json"

// Message is the baseband output of a generation call. It is either a
// Baseband or, for QPSK, a BasebandIQ.
type Message interface {
	// Len returns the number of samples per channel.
	Len() int
	isMessage()
}

// Baseband is a single-channel message: the analog message signal or the
// held bit waveform of ASK, FSK and BPSK.
type Baseband struct {
	Samples []float64
}

// BasebandIQ carries the in-phase and quadrature step waveforms of QPSK.
type BasebandIQ struct {
	I []float64
	Q []float64
}

func (Baseband) isMessage()   {}
func (BasebandIQ) isMessage() {}

// Len returns the number of samples.
func (b Baseband) Len() int { return len(b.Samples) }

// Len returns the number of samples per channel.
func (b BasebandIQ) Len() int { return len(b.I) }

// MarshalJSON encodes the message as {"kind":"baseband","samples":[...]}.
func (b Baseband) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string    `json:"kind"`
		Samples []float64 `json:"samples"`
	}{"baseband", b.Samples})
}

// MarshalJSON encodes the message as {"kind":"iq","i":[...],"q":[...]}.
func (b BasebandIQ) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string    `json:"kind"`
		I    []float64 `json:"i"`
		Q    []float64 `json:"q"`
	}{"iq", b.I, b.Q})
}
