package heatmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"text/template"

	"github.com/heatgrid/heatgrid/pkg/frame"
)

const (
	cellCornerRadius = 3
	transitionMS     = 500
)

// New builds a panel for one render of table at width x height. The
// table is pruned and the color domain computed up front; the mode
// state starts at ColorByChange.
func New(table *frame.Table, opts Options, width, height int) (*Panel, error) {
	if table == nil {
		return nil, fmt.Errorf("nil table")
	}
	boundedW := width - opts.Margins.Left - opts.Margins.Right
	boundedH := height - opts.Margins.Top - opts.Margins.Bottom
	if boundedW <= 0 || boundedH <= 0 {
		return nil, fmt.Errorf("panel %dx%d leaves no room inside margins", width, height)
	}

	categories := pruneCategories(table, opts.RemoveEmptyCols)

	p := &Panel{
		table:      table,
		opts:       opts,
		width:      width,
		height:     height,
		categories: categories,
		engine:     NewEngine(table, opts.Direction),
		heat:       heatDomain(categories),
		mode:       NewModeState(opts.ToggleColor),
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	p.xScale = NewBandScale(names, 0, float64(boundedW), opts.CellPadding)
	p.yScale = NewBandScale(table.Pivots(), 0, float64(boundedH), opts.CellPadding)

	return p, nil
}

// pruneCategories drops category columns whose values sum to zero or
// less, preserving table order. With pruning disabled all columns stay.
func pruneCategories(table *frame.Table, removeEmpty bool) []frame.Column {
	cols := table.Categories()
	if !removeEmpty {
		return cols
	}
	var kept []frame.Column
	for _, c := range cols {
		if c.Sum() > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

// heatDomain computes the global min/max over the pruned columns only,
// so an excluded column never stretches the heatmap color domain.
func heatDomain(categories []frame.Column) heatScale {
	h := heatScale{min: math.Inf(1), max: math.Inf(-1)}
	for _, c := range categories {
		for _, v := range c.Values {
			if v < h.min {
				h.min = v
			}
			if v > h.max {
				h.max = v
			}
		}
	}
	if h.min > h.max {
		h.min, h.max = 0, 0
	}
	return h
}

// Categories returns the pruned category columns in table order.
func (p *Panel) Categories() []frame.Column {
	return p.categories
}

// Mode returns the active color mode.
func (p *Panel) Mode() Mode {
	return p.mode.Current()
}

// Toggle advances the color mode as a cell click would. It is a no-op
// when the toggle option is disabled.
func (p *Panel) Toggle() Mode {
	return p.mode.Advance()
}

// CellValues derives the value triple for (category, pivotIndex) under
// the panel's direction.
func (p *Panel) CellValues(category string, pivotIndex int) CellValues {
	return p.engine.DeriveCellValues(category, pivotIndex)
}

// CellColor returns the hex fill of a cell under the active mode.
func (p *Panel) CellColor(category string, pivotIndex int) string {
	cv := p.engine.DeriveCellValues(category, pivotIndex)
	return colorFor(p.mode.Current(), cv, p.heat).Hex()
}

// Generate emits the panel as a self-contained SVG document. The
// document is built fully in memory, so a failed render emits nothing
// partial. Each cell carries the fill of the inactive mode as a data
// attribute; when toggling is enabled an embedded script swaps the two
// on click with an animated fill transition.
func (p *Panel) Generate() (string, error) {
	data := svgData{
		Width:        p.width,
		Height:       p.height,
		Background:   p.opts.Background,
		FontFamily:   p.opts.FontFamily,
		FontSize:     p.opts.FontSize,
		Toggle:       p.opts.ToggleColor,
		TransitionMS: transitionMS,
	}

	mode := p.mode.Current()
	alt := mode.Next()
	fontSize := float64(p.opts.FontSize)
	left := float64(p.opts.Margins.Left)
	top := float64(p.opts.Margins.Top)

	for i, c := range p.categories {
		x := left + p.xScale.PosIndex(i)
		data.ColLabels = append(data.ColLabels, svgLabel{
			X:    x + p.xScale.Bandwidth()/2,
			Y:    top - 8,
			Text: c.Name,
		})
	}

	for row, pivot := range p.table.Pivots() {
		y := top + p.yScale.PosIndex(row)
		data.RowLabels = append(data.RowLabels, svgLabel{
			X:    left - 8,
			Y:    y + p.yScale.Bandwidth()/2 + fontSize*0.35,
			Text: pivot,
		})

		for i, c := range p.categories {
			x := left + p.xScale.PosIndex(i)
			cv := p.engine.DeriveCellValues(c.Name, row)

			fill := colorFor(mode, cv, p.heat)
			altFill := colorFor(alt, cv, p.heat)

			cell := svgCell{
				X:            x,
				Y:            y,
				Width:        p.xScale.Bandwidth(),
				Height:       p.yScale.Bandwidth(),
				Rx:           cellCornerRadius,
				Fill:         fill.Hex(),
				AltFill:      altFill.Hex(),
				TextColor:    textColorFor(fill),
				AltTextColor: textColorFor(altFill),
				Tooltip:      FormatFixed(cv.Current),
				TextX:        x + p.xScale.Bandwidth()/2,
			}

			cy := y + p.yScale.Bandwidth()/2
			if cv.Current == 0 {
				cell.Line1 = "-"
			} else {
				cell.Line1 = FormatSI(cv.Current)
			}
			// The percent line is suppressed whenever either value is
			// zero, which also keeps non-finite ratios off the panel.
			if cv.Current != 0 && cv.Reference != 0 {
				cell.HasLine2 = true
				cell.Line2 = FormatPercent(cv.Change)
				cell.Line1Y = cy - fontSize*0.25
				cell.Line2Y = cy + fontSize*0.95
			} else {
				cell.Line1Y = cy + fontSize*0.35
			}

			data.Cells = append(data.Cells, cell)
		}
	}

	tmpl, err := template.New("svg").Parse(svgTemplateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse SVG template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute SVG template: %w", err)
	}

	return buf.String(), nil
}

//go:embed templates/panel.svg.tmpl
var svgTemplateStr string
