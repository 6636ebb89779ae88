package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rennewman-going/alaska-award-scraper/award"
	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
)

// MonthFetcher is the single capability the reduction pipeline needs from
// the browsing session: raw cell text for one route month. A failed fetch
// returns an error; callers degrade it to an empty month.
type MonthFetcher interface {
	FetchMonth(ctx context.Context, origin, dest string, year, month int) ([]string, error)
}

// ScrapeAirport scrapes and reduces both route directions for one origin
// airport. It uses tabCtx — an isolated browser tab context. A dead
// session records an error on the result instead of scraping 2×window
// months against a context that can only fail.
func ScrapeAirport(tabCtx context.Context, fetch MonthFetcher, airport config.Airport, cfg config.Config) models.AirportResult {
	if err := tabCtx.Err(); err != nil {
		return models.AirportResult{
			Airport: airport.Code,
			Err:     fmt.Errorf("browser session unavailable: %w", err),
		}
	}

	log.Printf("[%s] ── %s↔%s (threshold %d) ──",
		airport.Code, airport.Code, cfg.Destination, airport.MaxPoints)

	return models.AirportResult{
		Airport:  airport.Code,
		ToDest:   ScrapeDirection(tabCtx, fetch, airport.Code, cfg.Destination, airport.MaxPoints, cfg),
		FromDest: ScrapeDirection(tabCtx, fetch, cfg.Destination, airport.Code, airport.MaxPoints, cfg),
	}
}

// ScrapeDirection fetches every window month for one route direction
// (pass 1, building the month cache) and then runs the two-pass
// reduction. Fetch failures and empty months contribute zero records and
// never abort the route.
func ScrapeDirection(ctx context.Context, fetch MonthFetcher, origin, dest string, maxPoints int, cfg config.Config) models.RouteResult {
	window := cfg.Window()
	route := origin + "→" + dest
	cache := make(models.MonthCache, len(window))

	for i, m := range window {
		monthCtx, cancel := context.WithTimeout(ctx, cfg.MonthTimeout)
		cells, err := fetch.FetchMonth(monthCtx, origin, dest, m.Year, m.Month)
		cancel()

		key := models.MonthKey{Year: m.Year, Month: m.Month}
		if err != nil {
			log.Printf("[%s] ⚠ %s: %v", route, m.Label(), err)
			cache[key] = nil
			continue
		}

		records := award.ParseMonth(cells, m)
		cache[key] = records
		log.Printf("[%s] %s → %d cells, eligible: %v",
			route, m.Label(), len(cells), award.EligiblePoints(records, maxPoints))

		if i < len(window)-1 {
			time.Sleep(config.RandomDelay())
		}
	}

	result := award.ReduceRoute(cache, window, maxPoints)
	if !result.HasMin {
		log.Printf("[%s] no availability within threshold", route)
		return result
	}

	log.Printf("[%s] → absolute min %s, tax %q",
		route, award.FormatPoints(result.AbsMin), result.Tax)
	for _, m := range window {
		if days := result.MonthDays[m.Label()]; len(days) > 0 {
			log.Printf("[%s]   %s: %s", route, m.Label(), award.CompressDays(days))
		}
	}
	return result
}
