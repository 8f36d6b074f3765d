// Command modinfo prints the modulation index and signal statistics of
// modulation schemes for one set of parameters.
//
// Usage:
//
//	modinfo [flags] [scheme ...]
//
// Without arguments it prints info for all schemes.
//
// Examples:
//
//	modinfo am fm pm
//	modinfo -fm 10 -fc 200 -bits 110100 qpsk
//	modinfo -png /tmp/plots fsk
//	modinfo -random 16 -seed 3 ask bpsk
//	modinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/golang/glog"

	"github.com/cwbudde/algo-modulation/dsp/core"
	"github.com/cwbudde/algo-modulation/dsp/spectrum"
	"github.com/cwbudde/algo-modulation/dsp/window"
	"github.com/cwbudde/algo-modulation/internal/webdemo"
	"github.com/cwbudde/algo-modulation/modulation"
)

func main() {
	def := webdemo.DefaultRequest()
	fm := flag.Float64("fm", def.MessageFrequency, "message frequency in Hz")
	am := flag.Float64("am", def.MessageAmplitude, "message amplitude")
	fc := flag.Float64("fc", def.CarrierFrequency, "carrier frequency in Hz")
	ac := flag.Float64("ac", def.CarrierAmplitude, "carrier amplitude")
	msgWave := flag.String("msgwave", def.MessageWaveform, "message waveform (sine or cosine)")
	carrierWave := flag.String("carrierwave", def.CarrierWaveform, "carrier waveform (sine or cosine)")
	bits := flag.String("bits", def.DigitalMessage, "bit string for digital schemes")
	random := flag.Int("random", 0, "use this many pseudo-random bits instead of -bits")
	seed := flag.Uint64("seed", 1, "seed for -random")
	rate := flag.Float64("rate", core.DefaultProcessorConfig().SampleRate, "sample rate in Hz")
	duration := flag.Float64("duration", core.DefaultProcessorConfig().Duration, "frame duration in seconds")
	winName := flag.String("window", "hann", "analysis window for the dominant frequency (rectangular, hann, hamming, blackman)")
	pngDir := flag.String("png", "", "write message, carrier, modulated and spectrum plots to this directory")
	width := flag.Int("width", 600, "plot width in pixels")
	height := flag.Int("height", 240, "plot height in pixels")
	list := flag.Bool("list", false, "list available scheme names")
	noColor := flag.Bool("nocolor", false, "disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modinfo [flags] [scheme ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints modulation index and statistics of modulation schemes.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all schemes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modinfo am fm pm\n")
		fmt.Fprintf(os.Stderr, "  modinfo -fm 10 -fc 200 -bits 110100 qpsk\n")
		fmt.Fprintf(os.Stderr, "  modinfo -png /tmp/plots fsk\n")
		fmt.Fprintf(os.Stderr, "  modinfo -random 16 -seed 3 ask bpsk\n")
		fmt.Fprintf(os.Stderr, "  modinfo -list\n")
	}
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	if *noColor {
		color.NoColor = true
	}

	if *list {
		printList()
		return
	}

	wt, err := window.ParseType(*winName)
	if err != nil {
		glog.Exitf("invalid -window: %s", err)
	}

	engine, err := webdemo.NewEngine(engineConfig(*rate, *duration))
	if err != nil {
		glog.Exitf("invalid engine configuration: %s", err)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, s := range modulation.Schemes() {
			names = append(names, s.String())
		}
	}

	base := webdemo.Request{
		MessageFrequency: *fm,
		MessageAmplitude: *am,
		CarrierFrequency: *fc,
		CarrierAmplitude: *ac,
		MessageWaveform:  *msgWave,
		CarrierWaveform:  *carrierWave,
		DigitalMessage:   *bits,
	}
	if *random > 0 {
		base.DigitalMessage = webdemo.RandomBits(*random, *seed)
	}

	frames := generateAll(engine, base, names)
	if len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching schemes\n")
		os.Exit(1)
	}

	printHeader(frames[0], engine)
	printAnalysis(frames, wt)

	if *pngDir != "" {
		if err := writePlots(frames, *pngDir, *width, *height); err != nil {
			glog.Exitf("writing plots: %s", err)
		}
	}
}

func engineConfig(rate, duration float64) modulation.Config {
	cfg := modulation.DefaultConfig()
	cfg.Processor.SampleRate = rate
	cfg.Processor.Duration = duration
	return cfg
}

func printList() {
	for _, s := range webdemo.Schemes() {
		fmt.Printf("%-6s %-8s %s\n", s.Name, s.Family, s.Description)
	}
}

func generateAll(engine *webdemo.Engine, base webdemo.Request, names []string) []*webdemo.Frame {
	var frames []*webdemo.Frame
	for _, name := range names {
		req := base
		req.ModulationType = name
		f, err := engine.Run(req)
		if err != nil {
			glog.Warningf("skipping %q: %s (use -list to see available)", name, err)
			continue
		}
		frames = append(frames, f)
	}
	return frames
}

// printHeader shows the clamped parameters shared by all rows.
func printHeader(f *webdemo.Frame, engine *webdemo.Engine) {
	p := f.Params
	cfg := engine.Generator().Config()
	title := color.New(color.Bold, color.FgCyan)
	title.Printf("fm=%g Hz  Am=%g  fc=%g Hz  Ac=%g  %s/%s  %d samples @ %g Hz\n",
		p.MessageFrequency, p.MessageAmplitude, p.CarrierFrequency, p.CarrierAmplitude,
		p.MessageWaveform, p.CarrierWaveform, engine.Generator().Samples(), cfg.Processor.SampleRate)
}

func printAnalysis(frames []*webdemo.Frame, wt window.Type) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Scheme\tIndex\tBits\tRMS\tPeak\tCrest\tZero X\tDominant [Hz]\tOBW 99%% [Hz]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t----\t---\t----\t-----\t------\t-------------\t------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, f := range frames {
		dominant := f.PeakFrequency
		if wt != window.TypeHann {
			spec, err := spectrum.Compute(f.Modulated, f.Spectrum.SampleRate, wt)
			if err != nil {
				glog.Warningf("%s spectrum: %s", f.Scheme(), err)
			} else {
				dominant, _ = spec.Peak()
			}
		}

		bits := modulation.FormatBits(f.Bits)
		if bits == "" {
			bits = "-"
		}

		s := f.ModulatedStats
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.4f\t%.4f\t%d\t%.2f\t%.2f\n",
			f.Scheme(),
			f.Index,
			bits,
			s.RMS,
			s.Peak,
			s.CrestFactor,
			s.ZeroCrossings,
			dominant,
			f.SpectralStats.OccupiedBandwidth,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writePlots(frames []*webdemo.Frame, dir string, width, height int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, f := range frames {
		plots, err := f.Plots(width, height)
		if err != nil {
			return err
		}
		for _, name := range webdemo.PlotNames {
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", f.Scheme(), name))
			if err := os.WriteFile(path, plots[name], 0o644); err != nil {
				return err
			}
			glog.Infof("wrote %s", path)
		}
	}
	return nil
}
