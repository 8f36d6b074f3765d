// Package webdemo adapts the modulation engine to the browser front ends:
// the HTML/JSON server and the WebAssembly binding share its request
// decoding, statistics and plot rendering.
package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-modulation/dsp/spectrum"
	"github.com/cwbudde/algo-modulation/dsp/window"
	"github.com/cwbudde/algo-modulation/modulation"
	"github.com/cwbudde/algo-modulation/stats/frequency"
	timestats "github.com/cwbudde/algo-modulation/stats/time"
)

// Request is the form or JSON body of a generation request. Field names
// follow the HTML form.
type Request struct {
	// ModulationType is a scheme name such as "QPSK", matched ignoring case
	// and surrounding spaces. Unknown names fail with
	// modulation.ErrUnsupportedScheme.
	ModulationType   string  `json:"modulationType" form:"modulationType"`
	MessageFrequency float64 `json:"messageFrequency" form:"messageFrequency"`
	MessageAmplitude float64 `json:"messageAmplitude" form:"messageAmplitude"`
	CarrierFrequency float64 `json:"carrierFrequency" form:"carrierFrequency"`
	CarrierAmplitude float64 `json:"carrierAmplitude" form:"carrierAmplitude"`
	MessageWaveform  string  `json:"messageWaveform" form:"messageWaveform"`
	CarrierWaveform  string  `json:"carrierWaveform" form:"carrierWaveform"`
	DigitalMessage   string  `json:"digitalMessage" form:"digitalMessage"`
}

// DefaultRequest returns the values pre-filled in the HTML form.
func DefaultRequest() Request {
	return Request{
		ModulationType:   modulation.AM.String(),
		MessageFrequency: 5,
		MessageAmplitude: 1,
		CarrierFrequency: 100,
		CarrierAmplitude: 2,
		MessageWaveform:  waveformSine,
		CarrierWaveform:  waveformSine,
		DigitalMessage:   "1010",
	}
}

// Params converts r into engine parameters. Empty waveform names select
// sine, matching the form defaults.
func (r Request) Params() (modulation.Params, error) {
	msgWave, carrierWave := r.MessageWaveform, r.CarrierWaveform
	if msgWave == "" {
		msgWave = waveformSine
	}
	if carrierWave == "" {
		carrierWave = waveformSine
	}

	return modulation.ParseParams(r.ModulationType,
		r.MessageFrequency, r.MessageAmplitude,
		r.CarrierFrequency, r.CarrierAmplitude,
		msgWave, carrierWave, r.DigitalMessage)
}

// Frame is a generated result with its analysis.
type Frame struct {
	*modulation.Result

	MessageStats   timestats.Stats
	ModulatedStats timestats.Stats
	Spectrum       *spectrum.Spectrum
	SpectralStats  frequency.Stats

	// PeakFrequency is the strongest non-DC component of the modulated signal.
	PeakFrequency float64
}

// SchemeInfo describes one modulation type for listings.
type SchemeInfo struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	Description string `json:"description"`
}

// Engine runs generation requests against one modulation generator. It is
// safe for concurrent use.
type Engine struct {
	gen *modulation.Generator
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg modulation.Config) (*Engine, error) {
	gen, err := modulation.NewGeneratorFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Engine{gen: gen}, nil
}

// Generator returns the underlying generator.
func (e *Engine) Generator() *modulation.Generator {
	return e.gen
}

// Run generates and analyzes the frame described by req.
func (e *Engine) Run(req Request) (*Frame, error) {
	p, err := req.Params()
	if err != nil {
		return nil, err
	}

	res, err := e.gen.Generate(p)
	if err != nil {
		return nil, err
	}

	spec, err := spectrum.Compute(res.Modulated, e.gen.Config().Processor.SampleRate, window.TypeHann)
	if err != nil {
		return nil, fmt.Errorf("spectrum of %s: %w", res.Scheme(), err)
	}
	peak, _ := spec.Peak()

	return &Frame{
		Result:         res,
		MessageStats:   timestats.Calculate(messageChannel(res.Message)),
		ModulatedStats: timestats.Calculate(res.Modulated),
		Spectrum:       spec,
		SpectralStats:  frequency.Calculate(spec.Magnitudes, spec.SampleRate),
		PeakFrequency:  peak,
	}, nil
}

// Schemes lists every supported modulation type.
func Schemes() []SchemeInfo {
	all := modulation.Schemes()
	out := make([]SchemeInfo, 0, len(all))
	for _, s := range all {
		family := familyAnalog
		if s.Digital() {
			family = familyDigital
		}
		out = append(out, SchemeInfo{
			Name:        s.String(),
			Family:      family,
			Description: s.Description(),
		})
	}

	return out
}

// messageChannel returns the in-phase channel of an I/Q message.
func messageChannel(m modulation.Message) []float64 {
	switch msg := m.(type) {
	case modulation.Baseband:
		return msg.Samples
	case modulation.BasebandIQ:
		return msg.I
	default:
		return nil
	}
}
