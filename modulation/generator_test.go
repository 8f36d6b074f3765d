package modulation

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-modulation/dsp/core"
	"github.com/cwbudde/algo-modulation/dsp/signal"
	"github.com/cwbudde/algo-modulation/internal/testutil"
)

func baseParams(s Scheme) Params {
	return Params{
		Scheme:           s,
		MessageFrequency: 5,
		MessageAmplitude: 1,
		CarrierFrequency: 100,
		CarrierAmplitude: 2,
		MessageWaveform:  signal.WaveformSine,
		CarrierWaveform:  signal.WaveformSine,
		Bits:             "1010",
	}
}

func mustGenerate(t *testing.T, p Params) *Result {
	t.Helper()
	res, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate(%s) error = %v", p.Scheme, err)
	}
	return res
}

func TestEverySchemeProducesAlignedFrame(t *testing.T) {
	for _, s := range Schemes() {
		t.Run(s.String(), func(t *testing.T) {
			res := mustGenerate(t, baseParams(s))
			if res.Samples() != 1000 {
				t.Fatalf("time axis length = %d, want 1000", res.Samples())
			}
			if len(res.Carrier) != 1000 || len(res.Modulated) != 1000 || res.Message.Len() != 1000 {
				t.Fatalf("misaligned lengths: carrier=%d modulated=%d message=%d",
					len(res.Carrier), len(res.Modulated), res.Message.Len())
			}
			if res.Scheme() != s {
				t.Fatalf("Scheme() = %s, want %s", res.Scheme(), s)
			}
			testutil.RequireFinite(t, res.Modulated)
			testutil.RequireNotAllZero(t, res.Modulated)
		})
	}
}

func TestTimeAxisIgnoresParameters(t *testing.T) {
	p := baseParams(FM)
	p.MessageFrequency = 1e9
	p.CarrierAmplitude = -5
	res := mustGenerate(t, p)
	if res.Samples() != 1000 {
		t.Fatalf("time axis length = %d, want 1000", res.Samples())
	}
	if res.Time[0] != 0 || !core.NearlyEqual(res.Time[999], 0.999, 1e-12) {
		t.Fatalf("time axis spans [%v, %v], want [0, 0.999]", res.Time[0], res.Time[999])
	}
}

func TestUnsupportedScheme(t *testing.T) {
	_, err := Generate(Params{Scheme: Scheme(42)})
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("Generate() error = %v, want ErrUnsupportedScheme", err)
	}

	_, err = ParseParams("ZZZ", 1, 1, 100, 1, "sine", "sine", "")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Fatalf("ParseParams() error = %v, want ErrUnsupportedScheme", err)
	}
}

func TestClampingIsReported(t *testing.T) {
	p := baseParams(AM)
	p.MessageFrequency = 0
	p.MessageAmplitude = 50
	p.CarrierFrequency = 10
	p.CarrierAmplitude = math.NaN()

	res := mustGenerate(t, p)
	got := res.Params
	if got.MessageFrequency != 1 || got.MessageAmplitude != 10 ||
		got.CarrierFrequency != 50 || got.CarrierAmplitude != 0.1 {
		t.Fatalf("clamped params = %+v", got)
	}
	if v, _ := res.Index.Value(); !core.NearlyEqual(v, 100, 1e-12) {
		t.Fatalf("AM index = %v, want 100", v)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, s := range Schemes() {
		p := baseParams(s)
		a := mustGenerate(t, p)
		b := mustGenerate(t, p)

		testutil.RequireIdentical(t, a.Time, b.Time)
		testutil.RequireIdentical(t, a.Carrier, b.Carrier)
		testutil.RequireIdentical(t, a.Modulated, b.Modulated)
		switch am := a.Message.(type) {
		case Baseband:
			testutil.RequireIdentical(t, am.Samples, b.Message.(Baseband).Samples)
		case BasebandIQ:
			bm := b.Message.(BasebandIQ)
			testutil.RequireIdentical(t, am.I, bm.I)
			testutil.RequireIdentical(t, am.Q, bm.Q)
		}
		if a.Index != b.Index {
			t.Fatalf("%s: index mismatch %v vs %v", s, a.Index, b.Index)
		}
	}
}

func TestConcurrentGenerate(t *testing.T) {
	want := mustGenerate(t, baseParams(SSB))

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := Generate(baseParams(SSB))
			if err != nil {
				errs <- err
				return
			}
			for i := range res.Modulated {
				if res.Modulated[i] != want.Modulated[i] {
					errs <- errors.New("concurrent result differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestCustomSampling(t *testing.T) {
	g, err := NewGenerator(WithProcessorOptions(core.WithSampleRate(4000), core.WithDuration(0.5)))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	if g.Samples() != 2000 {
		t.Fatalf("Samples() = %d, want 2000", g.Samples())
	}
	res, err := g.Generate(baseParams(FSK))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if res.Samples() != 2000 {
		t.Fatalf("frame length = %d, want 2000", res.Samples())
	}
	// 4 bits over 2000 samples -> 500 samples per bit -> 8 bits/s.
	if v, _ := res.Index.Value(); !core.NearlyEqual(v, 20.0/16, 1e-12) {
		t.Fatalf("FSK index = %v, want 1.25", v)
	}
}
