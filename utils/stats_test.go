package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rennewman-going/alaska-award-scraper/models"
)

func TestBuildSummaryStats(t *testing.T) {
	results := []models.AirportResult{
		{
			Airport: "DEN",
			ToDest: models.RouteResult{
				MonthDays: map[string][]int{"Mar 2026": {1, 2, 3}},
				AbsMin:    4500, HasMin: true, Tax: "$19",
			},
			FromDest: models.RouteResult{
				MonthDays: map[string][]int{"Apr 2026": {5}},
				AbsMin:    5000, HasMin: true, Tax: "$6",
			},
		},
		{
			Airport: "AUS", // no availability either direction
		},
		{
			Airport: "SEA",
			ToDest: models.RouteResult{
				MonthDays: map[string][]int{"Mar 2026": {9}},
				AbsMin:    7500, HasMin: true, Tax: "$6",
			},
		},
		{
			Airport: "BAD",
			Err:     errors.New("session failed"),
		},
	}

	stats := BuildSummaryStats("PHX", results)
	assert.Equal(t, 4, stats.AirportsScanned)
	assert.Equal(t, 3, stats.RoutesWithAwards)
	assert.True(t, stats.HasCheapest)
	assert.Equal(t, 4500, stats.CheapestPoints)
	assert.Equal(t, "DEN→PHX", stats.CheapestRoute)
	assert.Equal(t, "$6", stats.MostCommonTax) // $6 on two routes, $19 on one

	assert.Equal(t, []AirportCount{
		{Airport: "DEN", Days: 4},
		{Airport: "SEA", Days: 1},
		{Airport: "AUS", Days: 0},
	}, stats.DaysPerAirport)
}

func TestBuildSummaryStatsEmpty(t *testing.T) {
	stats := BuildSummaryStats("PHX", nil)
	assert.Zero(t, stats.AirportsScanned)
	assert.False(t, stats.HasCheapest)
	assert.Empty(t, stats.MostCommonTax)
}
