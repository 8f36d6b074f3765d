package hilbert

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-modulation/internal/testutil"
)

func TestTransformSineIsNegativeCosine(t *testing.T) {
	const n = 1024
	x := testutil.DeterministicSine(8, n, 1, n)

	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := make([]float64, n)
	for i := range want {
		want[i] = -math.Cos(2 * math.Pi * 8 * float64(i) / n)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestAnalyticRealPartPreserved(t *testing.T) {
	const n = 256
	x := testutil.DeterministicSine(5, n, 0.7, n)

	a, err := Analytic(x)
	if err != nil {
		t.Fatalf("Analytic() error = %v", err)
	}
	if len(a) != n {
		t.Fatalf("len = %d, want %d", len(a), n)
	}
	re := make([]float64, n)
	for i, v := range a {
		re[i] = real(v)
	}
	testutil.RequireSliceNearlyEqual(t, re, x, 1e-9)
}

func TestAnalyticEnvelopeIsConstantForTone(t *testing.T) {
	const n = 512
	x := testutil.DeterministicSine(16, n, 2, n)

	a, err := Analytic(x)
	if err != nil {
		t.Fatalf("Analytic() error = %v", err)
	}
	for i, v := range a {
		mag := math.Hypot(real(v), imag(v))
		if math.Abs(mag-2) > 1e-9 {
			t.Fatalf("envelope[%d] = %v, want 2", i, mag)
		}
	}
}

func TestTransformTwiceNegates(t *testing.T) {
	const n = 512
	x := testutil.DeterministicSine(12, n, 1.5, n)

	h, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	hh, err := Transform(h)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	neg := make([]float64, n)
	for i, v := range x {
		neg[i] = -v
	}
	d, err := testutil.MaxAbsDiff(hh, neg)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if d > 1e-9 {
		t.Fatalf("H{H{x}} deviates from -x by %v", d)
	}
}

func TestTransformOfConstantIsZero(t *testing.T) {
	got, err := Transform(testutil.DC(3, 64))
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, make([]float64, 64), 1e-12)
}

func TestEmptyInput(t *testing.T) {
	if _, err := Analytic(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Analytic(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestAnalyticMask(t *testing.T) {
	tests := []struct {
		n    int
		want []complex128
	}{
		{n: 4, want: []complex128{1, 2, 1, 0}},
		{n: 5, want: []complex128{1, 2, 2, 0, 0}},
		{n: 1, want: []complex128{1}},
	}
	for _, tt := range tests {
		spec := make([]complex128, tt.n)
		for i := range spec {
			spec[i] = 1
		}
		applyAnalyticMask(spec)
		for i := range spec {
			if spec[i] != tt.want[i] {
				t.Fatalf("n=%d: spec[%d] = %v, want %v", tt.n, i, spec[i], tt.want[i])
			}
		}
	}
}

// directDFT is the O(n^2) reference sum.
func directDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	sign := -1.0
	if inverse {
		sign = 1
	}
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for j, v := range x {
			s, c := math.Sincos(sign * 2 * math.Pi * float64((j*k)%n) / float64(n))
			acc += v * complex(c, s)
		}
		if inverse {
			acc /= complex(float64(n), 0)
		}
		out[k] = acc
	}
	return out
}

// broadband is a deterministic non-periodic test block.
func broadband(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		fi := float64(i)
		x[i] = math.Sin(0.37*fi) + 0.5*math.Cos(1.3*fi+0.2) + 0.1*fi/float64(n)
	}
	return x
}

func maxComplexDiff(a, b []complex128) float64 {
	d := 0.0
	for i := range a {
		d = math.Max(d, math.Hypot(real(a[i]-b[i]), imag(a[i]-b[i])))
	}
	return d
}

func TestDFTMatchesDirectSum(t *testing.T) {
	for _, n := range []int{1, 2, 3, 64, 200, 999, 1000} {
		re := broadband(n)
		x := make([]complex128, n)
		for i, v := range re {
			x[i] = complex(v, 0.3*re[n-1-i])
		}

		got, err := dft(x, false)
		if err != nil {
			t.Fatalf("n=%d: dft() error = %v", n, err)
		}
		if d := maxComplexDiff(got, directDFT(x, false)); d > 1e-8 {
			t.Fatalf("n=%d: forward deviates from direct DFT by %v", n, d)
		}

		back, err := dft(got, true)
		if err != nil {
			t.Fatalf("n=%d: inverse dft() error = %v", n, err)
		}
		if d := maxComplexDiff(back, x); d > 1e-10 {
			t.Fatalf("n=%d: round trip deviates by %v", n, d)
		}
	}
}

func TestTransformMatchesDirectReference(t *testing.T) {
	for _, n := range []int{200, 999, 1000} {
		x := broadband(n)

		in := make([]complex128, n)
		for i, v := range x {
			in[i] = complex(v, 0)
		}
		spec := directDFT(in, false)
		applyAnalyticMask(spec)
		ref := directDFT(spec, true)
		want := make([]float64, n)
		for i, v := range ref {
			want[i] = imag(v)
		}

		got, err := Transform(x)
		if err != nil {
			t.Fatalf("n=%d: Transform() error = %v", n, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestTransformSineAtNonPowerOfTwoLength(t *testing.T) {
	// One second at 1 kHz, five whole cycles.
	const n = 1000
	x := testutil.DeterministicSine(5, n, 1, n)

	got, err := Transform(x)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := make([]float64, n)
	for i := range want {
		want[i] = -math.Cos(2 * math.Pi * 5 * float64(i) / n)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}
