package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modulation/dsp/core"
)

// Waveform selects the sinusoid family used for a tone.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformCosine
)

// ParseWaveform maps "sine" to WaveformSine and any other name to
// WaveformCosine.
func ParseWaveform(name string) Waveform {
	if name == "sine" {
		return WaveformSine
	}
	return WaveformCosine
}

// String returns the lowercase waveform name.
func (w Waveform) String() string {
	if w == WaveformSine {
		return "sine"
	}
	return "cosine"
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// NewGeneratorFromConfig creates a generator from an explicit configuration.
func NewGeneratorFromConfig(cfg core.ProcessorConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// TimeAxis returns samples evenly spaced time points i/SampleRate.
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if err := g.validate("time axis", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = float64(i) / g.cfg.SampleRate
	}
	return out, nil
}

// Tone generates a sinusoid of the given shape sampled at t = i/SampleRate.
func (g *Generator) Tone(shape Waveform, freqHz, amplitude float64, samples int) ([]float64, error) {
	if shape == WaveformCosine {
		return g.Cosine(freqHz, amplitude, samples)
	}
	return g.Sine(freqHz, amplitude, samples)
}

// Sine generates amplitude*sin(2*pi*freqHz*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("sine", samples); err != nil {
		return nil, err
	}
	return g.sinusoid(math.Sin, freqHz, amplitude, samples), nil
}

// Cosine generates amplitude*cos(2*pi*freqHz*t).
func (g *Generator) Cosine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.validate("cosine", samples); err != nil {
		return nil, err
	}
	return g.sinusoid(math.Cos, freqHz, amplitude, samples), nil
}

func (g *Generator) sinusoid(fn func(float64) float64, freqHz, amplitude float64, samples int) []float64 {
	out := make([]float64, samples)
	w := 2 * math.Pi * freqHz
	for i := range out {
		out[i] = amplitude * fn(w*(float64(i)/g.cfg.SampleRate))
	}
	return out
}

func (g *Generator) validate(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", what, g.cfg.SampleRate)
	}
	return nil
}
