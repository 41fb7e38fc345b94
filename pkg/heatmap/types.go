package heatmap

import "github.com/heatgrid/heatgrid/pkg/frame"

// Panel holds everything needed to render one instance of the
// visualization. Geometry and values are fixed at construction; only
// the color mode mutates, via Toggle.
type Panel struct {
	table  *frame.Table
	opts   Options
	width  int
	height int

	categories []frame.Column
	engine     *Engine
	heat       heatScale
	mode       *ModeState

	xScale *BandScale
	yScale *BandScale
}

type svgLabel struct {
	X, Y float64
	Text string
}

type svgCell struct {
	X, Y          float64
	Width, Height float64
	Rx            float64

	Fill, AltFill           string
	TextColor, AltTextColor string
	Tooltip                 string

	TextX    float64
	Line1    string
	Line1Y   float64
	HasLine2 bool
	Line2    string
	Line2Y   float64
}

type svgData struct {
	Width, Height int
	Background    string
	FontFamily    string
	FontSize      int

	ColLabels []svgLabel
	RowLabels []svgLabel
	Cells     []svgCell

	Toggle       bool
	TransitionMS int
}
