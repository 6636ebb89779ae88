package utils

import (
	"sort"

	"github.com/rennewman-going/alaska-award-scraper/models"
)

type AirportCount struct {
	Airport string
	Days    int
}

type SummaryStats struct {
	AirportsScanned  int
	RoutesWithAwards int
	CheapestRoute    string
	CheapestPoints   int
	HasCheapest      bool
	MostCommonTax    string
	DaysPerAirport   []AirportCount
}

// BuildSummaryStats aggregates the run outcome across all airports:
// how many route directions had availability, the cheapest route overall
// and the tax string seen most often among the reduced routes.
func BuildSummaryStats(destination string, results []models.AirportResult) SummaryStats {
	stats := SummaryStats{AirportsScanned: len(results)}
	taxCounts := make(map[string]int)
	bestTaxCount := 0

	countTax := func(tax string) {
		if tax == "" {
			return
		}
		taxCounts[tax]++
		if taxCounts[tax] > bestTaxCount {
			bestTaxCount = taxCounts[tax]
			stats.MostCommonTax = tax
		}
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		days := 0
		if r.ToDest.HasMin {
			stats.RoutesWithAwards++
			countTax(r.ToDest.Tax)
			if !stats.HasCheapest || r.ToDest.AbsMin < stats.CheapestPoints {
				stats.HasCheapest = true
				stats.CheapestPoints = r.ToDest.AbsMin
				stats.CheapestRoute = r.Airport + "→" + destination
			}
		}
		if r.FromDest.HasMin {
			stats.RoutesWithAwards++
			countTax(r.FromDest.Tax)
			if !stats.HasCheapest || r.FromDest.AbsMin < stats.CheapestPoints {
				stats.HasCheapest = true
				stats.CheapestPoints = r.FromDest.AbsMin
				stats.CheapestRoute = destination + "→" + r.Airport
			}
		}
		for _, d := range r.ToDest.MonthDays {
			days += len(d)
		}
		for _, d := range r.FromDest.MonthDays {
			days += len(d)
		}
		stats.DaysPerAirport = append(stats.DaysPerAirport, AirportCount{Airport: r.Airport, Days: days})
	}

	sort.Slice(stats.DaysPerAirport, func(i, j int) bool {
		if stats.DaysPerAirport[i].Days == stats.DaysPerAirport[j].Days {
			return stats.DaysPerAirport[i].Airport < stats.DaysPerAirport[j].Airport
		}
		return stats.DaysPerAirport[i].Days > stats.DaysPerAirport[j].Days
	})

	return stats
}
