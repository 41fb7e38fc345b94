package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.csv")
	data := "pivot,Q1,Q2,unused\nnorth,10,5,0\nsouth,20,3,0\nwest,0,2,0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestRenderFile(t *testing.T) {
	svg, err := renderFile(writeTestCSV(t), 800, 400, "bottomToTop", true, true, "#ffffff")
	require.NoError(t, err)

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, ">Q1</text>")
	// All-zero column is pruned from the rendered grid.
	assert.NotContains(t, svg, ">unused</text>")
	assert.Contains(t, svg, ">-50.0%</text>")
}

func TestRenderFile_KeepEmptyCols(t *testing.T) {
	svg, err := renderFile(writeTestCSV(t), 800, 400, "bottomToTop", true, false, "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, svg, ">unused</text>")
}

func TestRenderFile_Errors(t *testing.T) {
	path := writeTestCSV(t)

	_, err := renderFile(path, 800, 400, "diagonal", true, true, "#ffffff")
	assert.ErrorContains(t, err, "invalid change direction")

	_, err = renderFile(filepath.Join(t.TempDir(), "absent.csv"), 800, 400, "bottomToTop", true, true, "#ffffff")
	assert.Error(t, err)

	noPivot := filepath.Join(t.TempDir(), "nopivot.csv")
	require.NoError(t, os.WriteFile(noPivot, []byte("a,b\n1,2\n"), 0644))
	_, err = renderFile(noPivot, 800, 400, "bottomToTop", true, true, "#ffffff")
	assert.ErrorContains(t, err, "missing required fields: pivot")
}
