package award

import (
	"fmt"

	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
)

// BuildTable assembles the export table: a fixed header plus one row per
// configured airport, in configuration order. The column layout matches
// the spreadsheet template: identity columns, an always-empty boundary
// month on each side of the window, a "D"/"R" column pair per window
// month, then the four points/taxes summary columns. Routes without
// availability still get a row; absent values render as empty strings.
func BuildTable(cfg config.Config, results []models.AirportResult) ([]string, [][]string) {
	window := cfg.Window()
	before := window[0].Prev()
	after := window[len(window)-1].Next()

	header := []string{"To", "From", "Alt Origins"}
	header = append(header, before.Label()+" D", before.Label()+" R")
	for _, m := range window {
		header = append(header, m.Label()+" D", m.Label()+" R")
	}
	header = append(header, after.Label()+" D", after.Label()+" R")
	header = append(header,
		fmt.Sprintf("Points (To %s)", cfg.Destination),
		fmt.Sprintf("Points (From %s)", cfg.Destination),
		fmt.Sprintf("Taxes (To %s)", cfg.Destination),
		fmt.Sprintf("Taxes (From %s)", cfg.Destination),
	)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := make([]string, 0, len(header))
		row = append(row, cfg.Destination, r.Airport, "", "", "")
		for _, m := range window {
			label := m.Label()
			row = append(row,
				CompressDays(r.ToDest.MonthDays[label]),
				CompressDays(r.FromDest.MonthDays[label]),
			)
		}
		row = append(row, "", "")
		row = append(row,
			formatMin(r.ToDest), formatMin(r.FromDest),
			r.ToDest.Tax, r.FromDest.Tax,
		)
		rows = append(rows, row)
	}
	return header, rows
}

func formatMin(r models.RouteResult) string {
	if !r.HasMin {
		return ""
	}
	return FormatPoints(r.AbsMin)
}
