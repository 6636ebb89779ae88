package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "PHX", cfg.Destination)
	assert.Len(t, cfg.Airports, 54)
	assert.Equal(t, 1, cfg.Workers)
}

func TestWindow(t *testing.T) {
	cfg := Default()
	window := cfg.Window()
	require.Len(t, window, 11)
	assert.Equal(t, "Mar 2026", window[0].Label())
	assert.Equal(t, "Dec 2026", window[9].Label())
	assert.Equal(t, "Jan 2027", window[10].Label())
}

func TestMonthHelpers(t *testing.T) {
	jan := Month{Year: 2027, Month: 1}
	assert.Equal(t, "Jan 2027", jan.Label())
	assert.Equal(t, Month{Year: 2026, Month: 12}, jan.Prev())
	assert.Equal(t, Month{Year: 2027, Month: 2}, jan.Next())

	assert.Equal(t, 28, Month{Year: 2026, Month: 2}.Days())
	assert.Equal(t, 29, Month{Year: 2028, Month: 2}.Days())
	assert.Equal(t, 30, Month{Year: 2026, Month: 4}.Days())
	assert.Equal(t, 31, Month{Year: 2026, Month: 3}.Days())
}

func TestLoadOverridesFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
destination: SEA
airports:
  - code: DEN
    max_points: 4500
  - code: AUS
    max_points: 7500
start_year: 2026
start_month: 6
window_months: 3
workers: 2
csv_file: out.csv
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "SEA", cfg.Destination)
	assert.Equal(t, []Airport{{Code: "DEN", MaxPoints: 4500}, {Code: "AUS", MaxPoints: 7500}}, cfg.Airports)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "out.csv", cfg.CSVFile)
	assert.Equal(t, []Month{{2026, 6}, {2026, 7}, {2026, 8}}, cfg.Window())

	// Untouched keys keep their defaults.
	assert.Equal(t, 4*time.Second, cfg.CalendarSettle)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"lowercase code", "airports:\n  - code: den\n    max_points: 4500\n"},
		{"long code", "airports:\n  - code: DENV\n    max_points: 4500\n"},
		{"zero threshold", "airports:\n  - code: DEN\n    max_points: 0\n"},
		{"bad month", "start_month: 13\n"},
		{"empty airports", "airports: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("nope/does-not-exist.yml")
	assert.Error(t, err)
}

func TestRandomDelayBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := RandomDelay()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.Less(t, d, 2500*time.Millisecond)
	}
}
