package frame

import (
	"fmt"
	"strings"
)

// PivotColumn is the name of the required row-label column.
const PivotColumn = "pivot"

// MissingFieldsError reports required columns that are absent from the input.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("table is missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Column is a single numeric measure column.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Sum returns the total of all values in the column.
func (c Column) Sum() float64 {
	var total float64
	for _, v := range c.Values {
		total += v
	}
	return total
}

// Table is an ordered set of equal-length columns: one pivot column
// holding row labels and any number of numeric category columns.
type Table struct {
	pivots     []string
	categories []Column
	byName     map[string]int
}

// New builds a Table and validates its shape: the pivot column must be
// present (non-nil) and every category column must match its length.
func New(pivots []string, categories []Column) (*Table, error) {
	if pivots == nil {
		return nil, &MissingFieldsError{Fields: []string{PivotColumn}}
	}
	byName := make(map[string]int, len(categories))
	for i, c := range categories {
		if len(c.Values) != len(pivots) {
			return nil, fmt.Errorf("column %q has %d values, expected %d", c.Name, len(c.Values), len(pivots))
		}
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		byName[c.Name] = i
	}
	return &Table{pivots: pivots, categories: categories, byName: byName}, nil
}

// RowCount returns the number of pivot rows.
func (t *Table) RowCount() int {
	return len(t.pivots)
}

// Pivots returns the row labels in table order.
func (t *Table) Pivots() []string {
	return t.pivots
}

// Categories returns the category columns in table order.
func (t *Table) Categories() []Column {
	return t.categories
}

// CategoryNames returns the category column names in table order.
func (t *Table) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Category looks up a category column by name. The second return value
// reports whether the column exists.
func (t *Table) Category(name string) (Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.categories[i], true
}

// Value returns the value at (category, row). It reports false when the
// column does not exist or the row index is out of range.
func (t *Table) Value(name string, row int) (float64, bool) {
	i, ok := t.byName[name]
	if !ok || row < 0 || row >= len(t.pivots) {
		return 0, false
	}
	return t.categories[i].Values[row], true
}
