package webdemo

// Plot names, also used as URL path segments.
const (
	PlotMessage   = "message"
	PlotCarrier   = "carrier"
	PlotModulated = "modulated"
	PlotSpectrum  = "spectrum"
)

const (
	waveformSine = "sine"

	familyAnalog  = "analog"
	familyDigital = "digital"
)

// PlotNames lists the plots produced by Frame.Plots in page order.
var PlotNames = []string{PlotMessage, PlotCarrier, PlotModulated, PlotSpectrum}
