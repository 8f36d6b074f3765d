package webdemo

import (
	"bytes"
	"fmt"
	"math"

	"github.com/cwbudde/algo-modulation/modulation"
	"github.com/cwbudde/algo-modulation/render"
)

// spectrumFloorDB limits the dynamic range of the spectrum plot.
const spectrumFloorDB = -100

// Plots renders the message, carrier, modulated and spectrum plots of f as
// PNG images keyed by the Plot* names.
func (f *Frame) Plots(width, height int) (map[string][]byte, error) {
	plots := []struct {
		name string
		plot render.Plot
	}{
		{PlotMessage, f.messagePlot()},
		{PlotCarrier, render.Plot{
			Title:  "Carrier Signal",
			X:      f.Time,
			Series: []render.Series{{Values: f.Carrier}},
		}},
		{PlotModulated, render.Plot{
			Title:  fmt.Sprintf("%s Modulated Signal", f.Scheme()),
			X:      f.Time,
			Series: []render.Series{{Values: f.Modulated}},
		}},
		{PlotSpectrum, f.spectrumPlot()},
	}

	out := make(map[string][]byte, len(plots))
	for _, p := range plots {
		p.plot.Width = width
		p.plot.Height = height

		var buf bytes.Buffer
		if err := p.plot.EncodePNG(&buf); err != nil {
			return nil, fmt.Errorf("render %s plot: %w", p.name, err)
		}
		out[p.name] = buf.Bytes()
	}

	return out, nil
}

func (f *Frame) messagePlot() render.Plot {
	switch msg := f.Message.(type) {
	case modulation.BasebandIQ:
		return render.Plot{
			Title: "QPSK Baseband Signals",
			X:     f.Time,
			Series: []render.Series{
				{Label: "In-phase (I)", Values: msg.I},
				{Label: "Quadrature (Q)", Values: msg.Q},
			},
		}
	default:
		return render.Plot{
			Title:  "Message Signal",
			X:      f.Time,
			Series: []render.Series{{Values: messageChannel(f.Message)}},
		}
	}
}

func (f *Frame) spectrumPlot() render.Plot {
	db := f.Spectrum.DB()
	for i, v := range db {
		if math.IsInf(v, -1) || v < spectrumFloorDB {
			db[i] = spectrumFloorDB
		}
	}

	return render.Plot{
		Title:  fmt.Sprintf("Spectrum (dB), peak %.1f Hz", f.PeakFrequency),
		X:      f.Spectrum.Frequencies,
		Series: []render.Series{{Values: db}},
	}
}
