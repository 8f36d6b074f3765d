// Package config loads the modserver YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-modulation/dsp/core"
	"github.com/cwbudde/algo-modulation/modulation"
)

// Config is the modserver configuration: listen address, render limit,
// plot store settings and the engine section mapped onto modulation.Config.
type Config struct {
	Listen               string `yaml:"listen"`
	MaxConcurrentRenders int    `yaml:"max_concurrent_renders"`

	Plots struct {
		Capacity int           `yaml:"capacity"`
		TTL      time.Duration `yaml:"ttl"`
		Width    int           `yaml:"width"`
		Height   int           `yaml:"height"`
	} `yaml:"plots"`

	Engine struct {
		SampleRate float64 `yaml:"sample_rate"`
		Duration   float64 `yaml:"duration"`

		MessageFrequency *core.Range `yaml:"message_frequency"`
		MessageAmplitude *core.Range `yaml:"message_amplitude"`
		CarrierFrequency *core.Range `yaml:"carrier_frequency"`
		CarrierAmplitude *core.Range `yaml:"carrier_amplitude"`

		FrequencySensitivity *float64 `yaml:"frequency_sensitivity"`
		PhaseSensitivity     *float64 `yaml:"phase_sensitivity"`
		FSKDeviation         *float64 `yaml:"fsk_deviation"`
	} `yaml:"engine"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.Listen = ":8080"
	c.MaxConcurrentRenders = 4
	c.Plots.Capacity = 256
	c.Plots.TTL = 10 * time.Minute
	c.Plots.Width = 600
	c.Plots.Height = 240

	proc := core.DefaultProcessorConfig()
	c.Engine.SampleRate = proc.SampleRate
	c.Engine.Duration = proc.Duration
	return &c
}

// LoadConfig reads filename over the defaults. Keys missing from the file
// keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the server settings and the engine configuration.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address must not be empty")
	}
	if c.MaxConcurrentRenders <= 0 {
		return fmt.Errorf("config: max_concurrent_renders must be > 0: %d", c.MaxConcurrentRenders)
	}
	if c.Plots.Capacity <= 0 {
		return fmt.Errorf("config: plots.capacity must be > 0: %d", c.Plots.Capacity)
	}
	if c.Plots.TTL <= 0 {
		return fmt.Errorf("config: plots.ttl must be > 0: %s", c.Plots.TTL)
	}
	if c.Plots.Width <= 0 || c.Plots.Height <= 0 {
		return fmt.Errorf("config: plot size must be > 0: %dx%d", c.Plots.Width, c.Plots.Height)
	}

	if err := c.Modulation().Validate(); err != nil {
		return fmt.Errorf("config: engine: %w", err)
	}

	return nil
}

// Modulation returns the engine configuration described by c.
func (c *Config) Modulation() modulation.Config {
	cfg := modulation.DefaultConfig()
	cfg.Processor.SampleRate = c.Engine.SampleRate
	cfg.Processor.Duration = c.Engine.Duration

	if r := c.Engine.MessageFrequency; r != nil {
		cfg.MessageFrequency = *r
	}
	if r := c.Engine.MessageAmplitude; r != nil {
		cfg.MessageAmplitude = *r
	}
	if r := c.Engine.CarrierFrequency; r != nil {
		cfg.CarrierFrequency = *r
	}
	if r := c.Engine.CarrierAmplitude; r != nil {
		cfg.CarrierAmplitude = *r
	}
	if v := c.Engine.FrequencySensitivity; v != nil {
		cfg.FrequencySensitivity = *v
	}
	if v := c.Engine.PhaseSensitivity; v != nil {
		cfg.PhaseSensitivity = *v
	}
	if v := c.Engine.FSKDeviation; v != nil {
		cfg.FSKDeviation = *v
	}

	return cfg
}
