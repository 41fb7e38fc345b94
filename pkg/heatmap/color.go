package heatmap

import colorful "github.com/lucasb-eyer/go-colorful"

// gradient is a piecewise-linear color scale with positioned stops,
// interpolated component-wise in RGB.
type gradient []gradientStop

type gradientStop struct {
	col colorful.Color
	pos float64
}

// at maps t onto the gradient. Values outside the stop range saturate
// at the end colors.
func (g gradient) at(t float64) colorful.Color {
	if t <= g[0].pos {
		return g[0].col
	}
	for i := 0; i < len(g)-1; i++ {
		a, b := g[i], g[i+1]
		if t <= b.pos {
			f := (t - a.pos) / (b.pos - a.pos)
			return a.col.BlendRgb(b.col, f)
		}
	}
	return g[len(g)-1].col
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// changeScale maps relative change onto red / pale yellow / green.
var changeScale = gradient{
	{mustHex("#ff0000"), -1.5},
	{mustHex("#ffffbf"), 0},
	{mustHex("#008000"), 1.5},
}

// bluesScale approximates a perceptual single-hue blue ramp.
var bluesScale = gradient{
	{mustHex("#f7fbff"), 0},
	{mustHex("#6baed6"), 0.5},
	{mustHex("#08306b"), 1},
}

// heatCompression keeps the heatmap palette out of the least and most
// saturated ends of the blue ramp.
const heatCompression = 0.7

const (
	neutralChange       = 0   // forced position when the current value is 0
	indeterminateChange = 0.5 // forced position when the reference is 0
)

// changeColor maps a cell onto the by-change scale. The change ratio is
// clamped to [-1, 1] so a single large swing cannot saturate the scale;
// a zero current value always renders neutral, and a zero reference
// (no valid baseline) renders a fixed indeterminate shade instead of an
// infinite ratio.
func changeColor(cv CellValues) colorful.Color {
	t := clamp(cv.Change, -1, 1)
	switch {
	case cv.Current == 0:
		t = neutralChange
	case cv.Reference == 0:
		t = indeterminateChange
	}
	return changeScale.at(t)
}

// heatScale maps absolute values over the global min/max of all
// rendered columns onto the compressed blue ramp.
type heatScale struct {
	min, max float64
}

func (h heatScale) color(v float64) colorful.Color {
	t := 0.0
	if h.max > h.min {
		t = (v - h.min) / (h.max - h.min)
	}
	return bluesScale.at(t * heatCompression)
}

// colorFor selects the cell fill for the active mode.
func colorFor(mode Mode, cv CellValues, hs heatScale) colorful.Color {
	if mode == ColorByHeatmap {
		return hs.color(cv.Current)
	}
	return changeColor(cv)
}

// textColorFor picks black or white for cell labels based on the fill
// luminance (0.299R + 0.587G + 0.114B).
func textColorFor(fill colorful.Color) string {
	lum := 0.299*fill.R + 0.587*fill.G + 0.114*fill.B
	if lum < 0.5 {
		return "white"
	}
	return "black"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
