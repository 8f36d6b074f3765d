package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modulation/dsp/signal"
)

// Result is the complete output of one generation call. All sequences
// hold exactly Samples() values aligned with Time.
type Result struct {
	// Params are the inputs after clamping.
	Params Params

	Time      []float64
	Message   Message
	Carrier   []float64
	Modulated []float64
	Index     Index

	// Bits is the effective bit sequence after filtering, default
	// substitution and symbol padding. Nil for analog schemes.
	Bits []uint8
}

// Scheme returns the scheme that produced r.
func (r *Result) Scheme() Scheme {
	return r.Params.Scheme
}

// Samples returns the frame length.
func (r *Result) Samples() int {
	return len(r.Time)
}

// Generator synthesizes modulation frames from a fixed Config.
type Generator struct {
	cfg     Config
	sig     *signal.Generator
	samples int
}

// NewGenerator creates a generator from DefaultConfig modified by opts.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return NewGeneratorFromConfig(cfg)
}

// NewGeneratorFromConfig creates a generator from an explicit Config.
func NewGeneratorFromConfig(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:     cfg,
		sig:     signal.NewGeneratorFromConfig(cfg.Processor),
		samples: cfg.Processor.Samples(),
	}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Samples returns the number of samples in every generated sequence.
func (g *Generator) Samples() int {
	return g.samples
}

// Generate clamps p and synthesizes the frame for p.Scheme.
func (g *Generator) Generate(p Params) (*Result, error) {
	synth, err := synthesizerFor(p.Scheme)
	if err != nil {
		return nil, err
	}
	p = g.cfg.Clamp(p)

	t, err := g.sig.TimeAxis(g.samples)
	if err != nil {
		return nil, err
	}
	message, err := g.sig.Tone(p.MessageWaveform, p.MessageFrequency, p.MessageAmplitude, g.samples)
	if err != nil {
		return nil, err
	}
	carrier, err := g.sig.Tone(p.CarrierWaveform, p.CarrierFrequency, p.CarrierAmplitude, g.samples)
	if err != nil {
		return nil, err
	}

	f := &frame{
		cfg:     g.cfg,
		p:       p,
		t:       t,
		message: message,
		carrier: carrier,
	}
	out, err := synth(f)
	if err != nil {
		return nil, fmt.Errorf("modulation: %s synthesis failed: %w", p.Scheme, err)
	}

	return &Result{
		Params:    p,
		Time:      t,
		Message:   out.message,
		Carrier:   carrier,
		Modulated: out.modulated,
		Index:     out.index,
		Bits:      out.bits,
	}, nil
}

var defaultGenerator, _ = NewGeneratorFromConfig(DefaultConfig())

// Generate synthesizes a frame with the default configuration.
func Generate(p Params) (*Result, error) {
	return defaultGenerator.Generate(p)
}

// frame is the per-call state handed to a synthesizer.
type frame struct {
	cfg     Config
	p       Params
	t       []float64
	message []float64
	carrier []float64
}

func (f *frame) len() int { return len(f.t) }

// phase returns 2*pi*freq*t[i].
func (f *frame) phase(freq float64, i int) float64 {
	return 2 * math.Pi * freq * f.t[i]
}

type synthesis struct {
	message   Message
	modulated []float64
	index     Index
	bits      []uint8
}

type synthesizer func(*frame) (synthesis, error)

// synthesizers is the single dispatch point from scheme to synthesis.
var synthesizers = [numSchemes]synthesizer{
	AM:    synthesizeAM,
	FM:    synthesizeFM,
	PM:    synthesizePM,
	DSBSC: synthesizeDSBSC,
	SSB:   synthesizeSSB,
	ASK:   synthesizeASK,
	FSK:   synthesizeFSK,
	BPSK:  synthesizeBPSK,
	QPSK:  synthesizeQPSK,
}

func synthesizerFor(s Scheme) (synthesizer, error) {
	if !s.Valid() || synthesizers[s] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
	return synthesizers[s], nil
}
