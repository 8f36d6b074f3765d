package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(8000), WithDuration(0.5))
	if cfg.SampleRate != 8000 {
		t.Fatalf("sample rate = %v, want 8000", cfg.SampleRate)
	}
	if cfg.Duration != 0.5 {
		t.Fatalf("duration = %v, want 0.5", cfg.Duration)
	}
	if got := cfg.Samples(); got != 4000 {
		t.Fatalf("Samples() = %d, want 4000", got)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithDuration(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if got := cfg.Samples(); got != 1000 {
		t.Fatalf("Samples() = %d, want 1000", got)
	}
}

func TestSamplesRounds(t *testing.T) {
	cfg := ProcessorConfig{SampleRate: 100, Duration: 0.29}
	if got := cfg.Samples(); got != 29 {
		t.Fatalf("Samples() = %d, want 29", got)
	}
}

func TestFill(t *testing.T) {
	buf := []float64{1, 2, 3}
	Fill(buf[1:], 7)
	if buf[0] != 1 || buf[1] != 7 || buf[2] != 7 {
		t.Fatalf("unexpected buf: %#v", buf)
	}
}
