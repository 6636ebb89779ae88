package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/chromedp/chromedp"

	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
	"github.com/rennewman-going/alaska-award-scraper/scraper"
	"github.com/rennewman-going/alaska-award-scraper/utils"
)

// RunAll processes airports through a worker pool and returns results in
// the original configuration order. Each worker owns an independent
// Chrome session, so no browsing state is ever shared between concurrent
// fetches; Workers=1 reproduces a strictly sequential run.
func RunAll(rootCtx context.Context, cfg config.Config) []models.AirportResult {
	ordered := make([]models.AirportResult, len(cfg.Airports))
	if len(cfg.Airports) == 0 {
		return ordered
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(cfg.Airports) {
		workers = len(cfg.Airports)
	}

	type airportJob struct {
		index   int
		airport config.Airport
	}

	jobs := make(chan airportJob)
	results := make(chan models.AirportResult, len(cfg.Airports))

	var wg sync.WaitGroup
	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One Calendar per worker: its one-shot debug capture then
			// fires at most once per browser session.
			cal := scraper.NewCalendar(cfg)
			for job := range jobs {
				allocCtx, cancelAlloc := utils.NewAllocator(rootCtx, cfg)

				tabCtx, cancelTab := chromedp.NewContext(allocCtx,
					chromedp.WithLogf(func(format string, args ...interface{}) {
						log.Printf("[%s] "+format, append([]interface{}{job.airport.Code}, args...)...)
					}),
				)

				log.Printf("[%s] ▶ starting", job.airport.Code)
				var result models.AirportResult
				// Launching the tab up front surfaces a broken Chrome
				// install as one recorded error instead of a month-by-month
				// failure cascade.
				if err := chromedp.Run(tabCtx); err != nil {
					result = models.AirportResult{
						Airport: job.airport.Code,
						Err:     fmt.Errorf("start browser session: %w", err),
					}
				} else {
					result = ScrapeAirport(tabCtx, cal, job.airport, cfg)
				}
				result.Index = job.index
				logOutcome(result)

				cancelTab()
				cancelAlloc()

				results <- result
			}
		}()
	}

	go func() {
		for i, airport := range cfg.Airports {
			jobs <- airportJob{index: i, airport: airport}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	for result := range results {
		ordered[result.Index] = result
	}

	return ordered
}

func logOutcome(r models.AirportResult) {
	switch {
	case r.Err != nil:
		log.Printf("[%s] ✗ %v", r.Airport, r.Err)
	case !r.ToDest.HasMin && !r.FromDest.HasMin:
		log.Printf("[%s] ✓ done — no availability either direction", r.Airport)
	default:
		log.Printf("[%s] ✓ done", r.Airport)
	}
}
