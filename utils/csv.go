package utils

import (
	"encoding/csv"
	"os"
)

// WriteCSV writes the export table (header + rows) to filename.
// Returns the number of data rows written.
func WriteCSV(filename string, header []string, rows [][]string) (int, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return 0, err
	}
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return i, err
		}
	}
	return len(rows), w.Error()
}
