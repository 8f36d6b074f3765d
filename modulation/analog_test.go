package modulation

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modulation/dsp/core"
	"github.com/cwbudde/algo-modulation/dsp/signal"
	"github.com/cwbudde/algo-modulation/internal/testutil"
)

func TestAMIndex(t *testing.T) {
	p := baseParams(AM)
	p.MessageAmplitude = 1
	p.CarrierAmplitude = 2
	res := mustGenerate(t, p)

	v, ok := res.Index.Value()
	if !ok || v != 0.5 {
		t.Fatalf("AM index = %v (defined=%v), want 0.5", v, ok)
	}

	msg := res.Message.(Baseband).Samples
	for i := range res.Modulated {
		want := (1 + msg[i]/2) * res.Carrier[i]
		if math.Abs(res.Modulated[i]-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, res.Modulated[i], want)
		}
	}
}

func TestFMIndexAndEnvelope(t *testing.T) {
	p := baseParams(FM)
	p.MessageAmplitude = 2
	p.MessageFrequency = 4
	p.CarrierAmplitude = 3
	res := mustGenerate(t, p)

	if v, _ := res.Index.Value(); v != 2.5 {
		t.Fatalf("FM beta = %v, want 2.5", v)
	}
	for i, v := range res.Modulated {
		if math.Abs(v) > 3+1e-12 {
			t.Fatalf("sample %d exceeds carrier amplitude: %v", i, v)
		}
	}
}

func TestPMIndexIsSensitivity(t *testing.T) {
	res := mustGenerate(t, baseParams(PM))
	if v, _ := res.Index.Value(); v != 5 {
		t.Fatalf("PM index = %v, want 5", v)
	}

	g, err := NewGenerator(WithPhaseSensitivity(1.5))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	res, err = g.Generate(baseParams(PM))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if v, _ := res.Index.Value(); v != 1.5 {
		t.Fatalf("PM index = %v, want 1.5", v)
	}
}

func TestDSBSCIsProduct(t *testing.T) {
	res := mustGenerate(t, baseParams(DSBSC))
	msg := res.Message.(Baseband).Samples
	want := make([]float64, len(msg))
	for i := range want {
		want[i] = msg[i] * res.Carrier[i]
	}
	testutil.RequireSliceNearlyEqual(t, res.Modulated, want, 1e-12)
	if v, _ := res.Index.Value(); v != 0.5 {
		t.Fatalf("DSBSC index = %v, want 0.5", v)
	}
}

func TestSSBIsUpperSidebandTone(t *testing.T) {
	// m = sin(2*pi*fm*t) with an integer number of cycles, so
	// H{m} = -cos and the USB output is sin(2*pi*(fc+fm)*t).
	g, err := NewGenerator(WithProcessorOptions(core.WithSampleRate(1024)))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	p := baseParams(SSB)
	p.MessageFrequency = 10
	p.MessageAmplitude = 1
	p.CarrierFrequency = 100
	p.MessageWaveform = signal.WaveformSine
	res, err := g.Generate(p)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := make([]float64, res.Samples())
	for i := range want {
		want[i] = math.Sin(2 * math.Pi * 110 * res.Time[i])
	}
	testutil.RequireSliceNearlyEqual(t, res.Modulated, want, 1e-6)

	if v, _ := res.Index.Value(); v != 0.5 {
		t.Fatalf("SSB index = %v, want 0.5", v)
	}
}

func TestSSBDefaultFrameIsUpperSidebandTone(t *testing.T) {
	// Default one second frame at 1 kHz: 1000 samples.
	for _, fm := range []float64{5, 7, 13} {
		p := baseParams(SSB)
		p.MessageFrequency = fm
		p.MessageAmplitude = 1
		p.CarrierFrequency = 100
		res := mustGenerate(t, p)
		if res.Samples() != 1000 {
			t.Fatalf("samples = %d, want 1000", res.Samples())
		}

		want := make([]float64, res.Samples())
		for i := range want {
			want[i] = math.Sin(2 * math.Pi * (100 + fm) * res.Time[i])
		}
		testutil.RequireSliceNearlyEqual(t, res.Modulated, want, 1e-8)
	}
}

func TestAnalogSchemesHaveNoBits(t *testing.T) {
	for _, s := range []Scheme{AM, FM, PM, DSBSC, SSB} {
		res := mustGenerate(t, baseParams(s))
		if res.Bits != nil {
			t.Fatalf("%s: Bits = %v, want nil", s, res.Bits)
		}
		if _, ok := res.Message.(Baseband); !ok {
			t.Fatalf("%s: message is %T, want Baseband", s, res.Message)
		}
	}
}

func TestCosineWaveformSelection(t *testing.T) {
	p := baseParams(AM)
	p.MessageWaveform = signal.WaveformCosine
	p.CarrierWaveform = signal.WaveformCosine
	res := mustGenerate(t, p)

	msg := res.Message.(Baseband).Samples
	if msg[0] != p.MessageAmplitude {
		t.Fatalf("cosine message[0] = %v, want %v", msg[0], p.MessageAmplitude)
	}
	if res.Carrier[0] != p.CarrierAmplitude {
		t.Fatalf("cosine carrier[0] = %v, want %v", res.Carrier[0], p.CarrierAmplitude)
	}
}
