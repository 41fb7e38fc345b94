package heatmap

import "github.com/heatgrid/heatgrid/pkg/frame"

// CellValues holds the derived triple for one (category, pivot row)
// cell. Change is (Current-Reference)/Reference and may be non-finite
// when the reference is 0; callers never display it in that case.
type CellValues struct {
	Current   float64
	Reference float64
	Change    float64
}

// Engine derives cell values against a fixed table and direction.
type Engine struct {
	table  *frame.Table
	offset int
}

// NewEngine returns an engine for one render of table.
func NewEngine(table *frame.Table, dir Direction) *Engine {
	return &Engine{table: table, offset: dir.ReferenceOffset()}
}

// DeriveCellValues computes the value triple for (category, pivotIndex).
// Both values are rounded to 2 decimals. A reference row outside the
// table counts as a zero baseline, not as missing data; the first or
// last row (depending on direction) therefore reads as a full decrease
// or increase against nothing.
func (e *Engine) DeriveCellValues(category string, pivotIndex int) CellValues {
	cur, _ := e.table.Value(category, pivotIndex)
	cur = Round2(cur)

	ref, ok := e.table.Value(category, pivotIndex+e.offset)
	if !ok {
		ref = 0
	}
	ref = Round2(ref)

	return CellValues{
		Current:   cur,
		Reference: ref,
		Change:    (cur - ref) / ref,
	}
}
