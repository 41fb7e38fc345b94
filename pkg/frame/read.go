package frame

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadCSV parses a table from CSV. The first record is the header and
// must contain a "pivot" column; every other column is a numeric
// category column. Cells that do not parse as numbers count as 0.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}
	return fromRecords(records)
}

// fromRecords builds a Table from a header row plus data rows.
func fromRecords(records [][]string) (*Table, error) {
	header := records[0]
	pivotCol := -1
	for i, name := range header {
		if name == PivotColumn {
			pivotCol = i
			break
		}
	}
	if pivotCol < 0 {
		return nil, &MissingFieldsError{Fields: []string{PivotColumn}}
	}

	rows := records[1:]
	pivots := make([]string, 0, len(rows))
	categories := make([]Column, 0, len(header)-1)
	for i, name := range header {
		if i == pivotCol {
			continue
		}
		categories = append(categories, Column{Name: name, Values: make([]float64, 0, len(rows))})
	}

	for _, row := range rows {
		ci := 0
		for i := range header {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if i == pivotCol {
				pivots = append(pivots, cell)
				continue
			}
			categories[ci].Values = append(categories[ci].Values, parseNumeric(cell))
			ci++
		}
	}

	return New(pivots, categories)
}

// parseNumeric maps unparsable and non-finite cells to 0, matching the
// falsy-as-zero policy applied throughout the value engine. ParseFloat
// accepts literal "NaN" and "Inf" spellings, which must not enter the
// table: a NaN would poison column sums and labels.
func parseNumeric(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

type jsonColumn struct {
	Name   string            `json:"name"`
	Values []json.RawMessage `json:"values"`
}

type jsonTable struct {
	Columns []jsonColumn `json:"columns"`
}

// ReadJSON parses a table from a columnar JSON document:
//
//	{"columns": [{"name": "pivot", "values": ["A", "B"]},
//	             {"name": "X", "values": [10, 20]}]}
//
// Category values may be numbers or numeric strings; anything else
// counts as 0.
func ReadJSON(r io.Reader) (*Table, error) {
	var doc jsonTable
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode json table: %w", err)
	}

	var pivots []string
	var categories []Column
	for _, col := range doc.Columns {
		if col.Name == PivotColumn {
			if pivots != nil {
				return nil, fmt.Errorf("duplicate column name %q", PivotColumn)
			}
			pivots = make([]string, len(col.Values))
			for i, raw := range col.Values {
				pivots[i] = decodeLabel(raw)
			}
			continue
		}
		values := make([]float64, len(col.Values))
		for i, raw := range col.Values {
			values[i] = decodeNumeric(raw)
		}
		categories = append(categories, Column{Name: col.Name, Values: values})
	}
	if pivots == nil {
		return nil, &MissingFieldsError{Fields: []string{PivotColumn}}
	}

	return New(pivots, categories)
}

func decodeLabel(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

func decodeNumeric(raw json.RawMessage) float64 {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseNumeric(s)
	}
	return 0
}

// LoadFile reads a table from path, dispatching on the file extension
// (.csv, .json, .xlsx).
func LoadFile(path string) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		return ReadCSV(f)
	case ".json":
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		return ReadJSON(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported table format %q (expected .csv, .json or .xlsx)", ext)
	}
}
