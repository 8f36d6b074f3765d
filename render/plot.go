package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	marginLeft   = 52
	marginRight  = 12
	marginTop    = 24
	marginBottom = 22
	tickLen      = 4
	numTicks     = 5
	legendStep   = 90
)

var (
	// ErrNoSeries is returned when a plot has nothing to draw.
	ErrNoSeries = errors.New("render: plot has no series")
	// ErrLengthMismatch is returned when a series does not match the x axis.
	ErrLengthMismatch = errors.New("render: series length does not match x axis")
	// ErrInvalidSize is returned for plots smaller than their margins.
	ErrInvalidSize = errors.New("render: invalid plot size")
)

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	frameColor      = color.RGBA{0x40, 0x40, 0x40, 0xff}
	zeroColor       = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}

	palette = []color.RGBA{
		{0x1f, 0x77, 0xb4, 0xff},
		{0xd6, 0x27, 0x28, 0xff},
		{0x2c, 0xa0, 0x2c, 0xff},
		{0xff, 0x7f, 0x0e, 0xff},
	}
)

// Series is one labelled curve of a plot.
type Series struct {
	Label  string
	Values []float64
}

// Plot describes a line plot of one or more series over a shared x axis.
type Plot struct {
	Title  string
	X      []float64
	Series []Series
	Width  int
	Height int
}

// Validate reports whether the plot can be rendered.
func (p *Plot) Validate() error {
	if p.Width <= marginLeft+marginRight || p.Height <= marginTop+marginBottom {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, p.Width, p.Height)
	}

	if len(p.Series) == 0 || len(p.X) == 0 {
		return ErrNoSeries
	}

	for _, s := range p.Series {
		if len(s.Values) != len(p.X) {
			return fmt.Errorf("%w: %q has %d values, x has %d",
				ErrLengthMismatch, s.Label, len(s.Values), len(p.X))
		}
	}

	return nil
}

// Render draws the plot.
func (p *Plot) Render() (*image.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	area := image.Rect(marginLeft, marginTop, p.Width-marginRight, p.Height-marginBottom)
	xMin, xMax := bounds(p.X)
	if xMax <= xMin {
		xMax = xMin + 1
	}
	yMin, yMax := p.yRange()

	toX := func(v float64) int {
		return area.Min.X + int(math.Round((v-xMin)/(xMax-xMin)*float64(area.Dx()-1)))
	}
	toY := func(v float64) int {
		return area.Max.Y - 1 - int(math.Round((v-yMin)/(yMax-yMin)*float64(area.Dy()-1)))
	}

	if yMin < 0 && yMax > 0 {
		y := toY(0)
		drawLine(canvas, area.Min.X, y, area.Max.X-1, y, zeroColor)
	}

	for i, s := range p.Series {
		c := palette[i%len(palette)]
		prevX, prevY := toX(p.X[0]), toY(finite(s.Values[0]))
		for j := 1; j < len(s.Values); j++ {
			x, y := toX(p.X[j]), toY(finite(s.Values[j]))
			drawLine(canvas, prevX, prevY, x, y, c)
			prevX, prevY = x, y
		}
		if len(s.Values) == 1 {
			canvas.SetRGBA(prevX, prevY, c)
		}
	}

	drawFrame(canvas, area)
	drawTicks(canvas, area, xMin, xMax, yMin, yMax)
	drawText(canvas, marginLeft, marginTop-8, p.Title, frameColor)

	for i, s := range p.Series {
		if s.Label == "" {
			continue
		}
		x := area.Max.X - legendStep*(len(p.Series)-i)
		drawText(canvas, x, marginTop-8, s.Label, palette[i%len(palette)])
	}

	return canvas, nil
}

// EncodePNG renders the plot and writes it to w as PNG.
func (p *Plot) EncodePNG(w io.Writer) error {
	img, err := p.Render()
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// yRange spans all series; flat data gets a ±1 margin.
func (p *Plot) yRange() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range p.Series {
		l, h := bounds(s.Values)
		lo = math.Min(lo, l)
		hi = math.Max(hi, h)
	}

	if hi-lo < 1e-12 {
		return lo - 1, hi + 1
	}

	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// bounds ignores non-finite values.
func bounds(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo > hi {
		return 0, 0
	}

	return lo, hi
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func drawFrame(canvas *image.RGBA, r image.Rectangle) {
	drawLine(canvas, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, frameColor)
	drawLine(canvas, r.Min.X, r.Max.Y-1, r.Max.X-1, r.Max.Y-1, frameColor)
	drawLine(canvas, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y-1, frameColor)
	drawLine(canvas, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, frameColor)
}

func drawTicks(canvas *image.RGBA, r image.Rectangle, xMin, xMax, yMin, yMax float64) {
	for i := range numTicks {
		frac := float64(i) / float64(numTicks-1)

		x := r.Min.X + int(math.Round(frac*float64(r.Dx()-1)))
		drawLine(canvas, x, r.Max.Y, x, r.Max.Y+tickLen, frameColor)
		drawText(canvas, x-10, r.Max.Y+tickLen+12, formatTick(xMin+frac*(xMax-xMin)), frameColor)

		y := r.Max.Y - 1 - int(math.Round(frac*float64(r.Dy()-1)))
		drawLine(canvas, r.Min.X-tickLen, y, r.Min.X, y, frameColor)
		drawText(canvas, 2, y+4, formatTick(yMin+frac*(yMax-yMin)), frameColor)
	}
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.3g", v)
}

func drawText(canvas *image.RGBA, x, y int, s string, c color.RGBA) {
	if s == "" {
		return
	}

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawLine is Bresenham's algorithm; pixels outside the canvas are dropped.
func drawLine(canvas *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		if image.Pt(x0, y0).In(canvas.Bounds()) {
			canvas.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
