package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awards.xlsx")
	header := []string{"To", "From", "Mar 2026 D"}
	rows := [][]string{{"PHX", "DEN", "1-3"}}

	require.NoError(t, WriteXLSX(path, header, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Awards")
	require.NoError(t, err)
	assert.Equal(t, [][]string{header, {"PHX", "DEN", "1-3"}}, got)
}
