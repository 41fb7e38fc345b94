package frame

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a table from the first sheet of an xlsx workbook. The
// first row is the header and must contain a "pivot" column; the
// remaining rows are data, with non-numeric category cells counting
// as 0.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	// GetRows trims trailing empty cells per row; fromRecords pads short
	// rows back to the header width.
	return fromRecords(rows)
}
