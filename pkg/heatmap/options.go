// Package heatmap renders a pivoted table as an SVG matrix of colored,
// labeled cells with a click-to-toggle between two color encodings.
package heatmap

import "fmt"

// Direction selects which neighboring pivot row supplies the reference
// value for change computation. It never affects visual row ordering.
type Direction int

const (
	// TopToBottom compares each row against the row above it.
	TopToBottom Direction = iota
	// BottomToTop compares each row against the row below it.
	BottomToTop
)

// ReferenceOffset returns the row offset applied to reach the reference
// row: -1 for TopToBottom, +1 for BottomToTop.
func (d Direction) ReferenceOffset() int {
	if d == BottomToTop {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == BottomToTop {
		return "bottomToTop"
	}
	return "topToBottom"
}

// ParseDirection parses the configuration spelling of a direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "topToBottom":
		return TopToBottom, nil
	case "bottomToTop":
		return BottomToTop, nil
	}
	return TopToBottom, fmt.Errorf("invalid change direction %q (expected topToBottom or bottomToTop)", s)
}

// Margins reserve space around the cell grid for axis tick labels.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Options configures one render of the panel.
type Options struct {
	// Direction selects the reference row for change computation.
	Direction Direction
	// ToggleColor enables the click-to-toggle color mode interaction.
	ToggleColor bool
	// RemoveEmptyCols drops category columns whose values sum to zero.
	RemoveEmptyCols bool
	// Background is the panel background fill.
	Background string
	// CellPadding is the fractional padding between scale bands.
	CellPadding float64
	// Margins reserve space for the top and left axis labels.
	Margins Margins

	FontFamily string
	FontSize   int
}

// DefaultOptions returns the render defaults.
func DefaultOptions() Options {
	return Options{
		Direction:       BottomToTop,
		ToggleColor:     true,
		RemoveEmptyCols: true,
		Background:      "#ffffff",
		CellPadding:     0.05,
		Margins:         Margins{Top: 40, Right: 10, Bottom: 10, Left: 70},
		FontFamily:      "sans-serif",
		FontSize:        12,
	}
}
