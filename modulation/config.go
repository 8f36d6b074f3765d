package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modulation/dsp/core"
)

// Config holds the sampling grid, the clamp ranges and the per-scheme
// constants used by a Generator.
type Config struct {
	Processor core.ProcessorConfig

	MessageFrequency core.Range // Hz
	MessageAmplitude core.Range
	CarrierFrequency core.Range // Hz
	CarrierAmplitude core.Range

	// FrequencySensitivity is kf in beta = kf*Am/fm.
	FrequencySensitivity float64
	// PhaseSensitivity is kp, the peak phase deviation in radians.
	PhaseSensitivity float64
	// FSKDeviation is the offset in Hz of the mark and space tones from fc.
	FSKDeviation float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a one second, 1 kHz frame with the standard ranges.
func DefaultConfig() Config {
	return Config{
		Processor:            core.DefaultProcessorConfig(),
		MessageFrequency:     core.Range{Min: 1, Max: 100},
		MessageAmplitude:     core.Range{Min: 0.1, Max: 10},
		CarrierFrequency:     core.Range{Min: 50, Max: 500},
		CarrierAmplitude:     core.Range{Min: 0.1, Max: 10},
		FrequencySensitivity: 5,
		PhaseSensitivity:     5,
		FSKDeviation:         10,
	}
}

// WithProcessorOptions applies sampling options such as core.WithSampleRate.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(cfg *Config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.Processor)
			}
		}
	}
}

// WithMessageFrequencyRange sets the clamp range for the message frequency.
func WithMessageFrequencyRange(r core.Range) Option {
	return func(cfg *Config) { cfg.MessageFrequency = r }
}

// WithMessageAmplitudeRange sets the clamp range for the message amplitude.
func WithMessageAmplitudeRange(r core.Range) Option {
	return func(cfg *Config) { cfg.MessageAmplitude = r }
}

// WithCarrierFrequencyRange sets the clamp range for the carrier frequency.
func WithCarrierFrequencyRange(r core.Range) Option {
	return func(cfg *Config) { cfg.CarrierFrequency = r }
}

// WithCarrierAmplitudeRange sets the clamp range for the carrier amplitude.
func WithCarrierAmplitudeRange(r core.Range) Option {
	return func(cfg *Config) { cfg.CarrierAmplitude = r }
}

// WithFrequencySensitivity sets the FM constant kf.
func WithFrequencySensitivity(kf float64) Option {
	return func(cfg *Config) { cfg.FrequencySensitivity = kf }
}

// WithPhaseSensitivity sets the PM constant kp.
func WithPhaseSensitivity(kp float64) Option {
	return func(cfg *Config) { cfg.PhaseSensitivity = kp }
}

// WithFSKDeviation sets the FSK tone offset in Hz.
func WithFSKDeviation(hz float64) Option {
	return func(cfg *Config) { cfg.FSKDeviation = hz }
}

// Validate checks that cfg yields at least one sample and that no scheme
// can divide by zero. FM divides by the message frequency, PM by the
// message amplitude and AM by the carrier amplitude, so those ranges need
// a strictly positive lower bound.
func (c Config) Validate() error {
	if c.Processor.SampleRate <= 0 || math.IsInf(c.Processor.SampleRate, 0) || math.IsNaN(c.Processor.SampleRate) {
		return fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidConfig, c.Processor.SampleRate)
	}
	if c.Processor.Duration <= 0 || math.IsInf(c.Processor.Duration, 0) || math.IsNaN(c.Processor.Duration) {
		return fmt.Errorf("%w: duration must be > 0 and finite: %f", ErrInvalidConfig, c.Processor.Duration)
	}
	if c.Processor.Samples() < 1 {
		return fmt.Errorf("%w: frame must hold at least one sample: %gs at %g Hz",
			ErrInvalidConfig, c.Processor.Duration, c.Processor.SampleRate)
	}

	ranges := []struct {
		name     string
		r        core.Range
		positive bool
	}{
		{"message frequency", c.MessageFrequency, true},
		{"message amplitude", c.MessageAmplitude, true},
		{"carrier frequency", c.CarrierFrequency, false},
		{"carrier amplitude", c.CarrierAmplitude, true},
	}
	for _, rr := range ranges {
		if err := rr.r.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, rr.name, err)
		}
		if rr.positive && rr.r.Min <= 0 {
			return fmt.Errorf("%w: %s lower bound must be > 0: %g", ErrInvalidConfig, rr.name, rr.r.Min)
		}
	}

	for _, k := range []struct {
		name string
		v    float64
	}{
		{"frequency sensitivity", c.FrequencySensitivity},
		{"phase sensitivity", c.PhaseSensitivity},
		{"FSK deviation", c.FSKDeviation},
	} {
		if k.v < 0 || math.IsInf(k.v, 0) || math.IsNaN(k.v) {
			return fmt.Errorf("%w: %s must be >= 0 and finite: %f", ErrInvalidConfig, k.name, k.v)
		}
	}
	return nil
}

// Clamp returns p with every numeric parameter limited to its range.
func (c Config) Clamp(p Params) Params {
	p.MessageFrequency = c.MessageFrequency.Clamp(p.MessageFrequency)
	p.MessageAmplitude = c.MessageAmplitude.Clamp(p.MessageAmplitude)
	p.CarrierFrequency = c.CarrierFrequency.Clamp(p.CarrierFrequency)
	p.CarrierAmplitude = c.CarrierAmplitude.Clamp(p.CarrierAmplitude)
	return p
}
