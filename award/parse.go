// Package award implements the in-scope core of the scraper: parsing
// calendar cells, the two-pass minimum-price reduction, day-range
// compression and the export table assembly. It is agnostic to how the
// calendar text is fetched.
package award

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
)

var (
	dayRe    = regexp.MustCompile(`^(\d{1,2})`)
	pointsRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)k`)
	taxRe    = regexp.MustCompile(`\+\s*\$(\d+(?:\.\d{1,2})?)`)
)

// ParseCell parses one rendered calendar cell like "1\n4.5k +$19" into a
// DayPrice. The second return is false for cells without a leading day
// number or without a points offer (disabled or sold-out days).
func ParseCell(text string) (models.DayPrice, bool) {
	text = strings.TrimSpace(text)

	dm := dayRe.FindStringSubmatch(text)
	if dm == nil {
		return models.DayPrice{}, false
	}
	day, _ := strconv.Atoi(dm[1])

	pm := pointsRe.FindStringSubmatch(text)
	if pm == nil {
		return models.DayPrice{}, false
	}
	val, err := strconv.ParseFloat(pm[1], 64)
	if err != nil {
		return models.DayPrice{}, false
	}

	dp := models.DayPrice{Day: day, Points: int(val * 1000)}
	if tm := taxRe.FindStringSubmatch(text); tm != nil {
		dp.Tax = "$" + tm[1]
	}
	return dp, true
}

// ParseMonth parses every cell of one rendered month and discards records
// whose day falls outside the month. Calendar grids render stray cells
// from adjacent months; the day-range guard drops them.
func ParseMonth(cells []string, month config.Month) []models.DayPrice {
	maxDay := month.Days()
	var out []models.DayPrice
	for _, text := range cells {
		dp, ok := ParseCell(text)
		if !ok {
			continue
		}
		if dp.Day < 1 || dp.Day > maxDay {
			continue
		}
		out = append(out, dp)
	}
	return out
}
