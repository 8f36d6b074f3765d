package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-modulation/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(2000),
		core.WithDuration(0.25),
	)

	fmt.Printf("sampleRate=%.0f samples=%d\n", cfg.SampleRate, cfg.Samples())

	// Output:
	// sampleRate=2000 samples=500
}

func ExampleRange_Clamp() {
	r := core.Range{Min: 50, Max: 500}
	fmt.Println(r.Clamp(10), r.Clamp(120), r.Clamp(900))

	// Output:
	// 50 120 500
}
