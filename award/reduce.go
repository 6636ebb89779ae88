package award

import (
	"sort"

	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
)

// ReduceRoute runs the two-pass reduction over one route direction's
// populated month cache.
//
// Pass 1 finds the absolute lowest points price at or under maxPoints
// across the whole window, plus the most common tax among those eligible
// records. Pass 2 keeps only the days priced exactly at that minimum, so
// every listed date across the window is bookable at the same price. A
// month whose cheapest day is above the minimum contributes no days even
// when that price is under the threshold.
//
// A route with no eligible price anywhere returns HasMin=false with every
// month's day list empty — normal "no availability", not an error.
func ReduceRoute(cache models.MonthCache, window []config.Month, maxPoints int) models.RouteResult {
	res := models.RouteResult{MonthDays: make(map[string][]int, len(window))}
	for _, m := range window {
		res.MonthDays[m.Label()] = []int{}
	}

	// Pass 1: discovery.
	var taxes []string
	for _, m := range window {
		for _, dp := range cache[models.MonthKey{Year: m.Year, Month: m.Month}] {
			if dp.Points > maxPoints {
				continue
			}
			if !res.HasMin || dp.Points < res.AbsMin {
				res.AbsMin = dp.Points
				res.HasMin = true
			}
			if dp.Tax != "" {
				taxes = append(taxes, dp.Tax)
			}
		}
	}
	if !res.HasMin {
		return res
	}
	res.Tax = modeTax(taxes)

	// Pass 2: exact-minimum filter.
	for _, m := range window {
		label := m.Label()
		for _, dp := range cache[models.MonthKey{Year: m.Year, Month: m.Month}] {
			if dp.Points == res.AbsMin {
				res.MonthDays[label] = append(res.MonthDays[label], dp.Day)
			}
		}
	}
	return res
}

// EligiblePoints returns the sorted distinct prices at or under maxPoints
// in one month's records. Used for per-month progress logging.
func EligiblePoints(records []models.DayPrice, maxPoints int) []int {
	seen := make(map[int]bool)
	var pts []int
	for _, dp := range records {
		if dp.Points <= maxPoints && !seen[dp.Points] {
			seen[dp.Points] = true
			pts = append(pts, dp.Points)
		}
	}
	sort.Ints(pts)
	return pts
}

// modeTax picks the most frequent tax string; among equally frequent
// values the first encountered in scan order wins.
func modeTax(taxes []string) string {
	counts := make(map[string]int, len(taxes))
	best, bestCount := "", 0
	for _, t := range taxes {
		counts[t]++
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}
