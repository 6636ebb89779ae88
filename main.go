package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rennewman-going/alaska-award-scraper/award"
	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"
	"github.com/rennewman-going/alaska-award-scraper/services"
	"github.com/rennewman-going/alaska-award-scraper/storage"
	"github.com/rennewman-going/alaska-award-scraper/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("✗ %v", err)
	}

	window := cfg.Window()
	log.Printf("╔═══════════════════════════════════════════════════╗")
	log.Printf("║   Alaska Award Scraper (two-pass consistent pts)  ║")
	log.Printf("╚═══════════════════════════════════════════════════╝")
	log.Printf("Destination : %s", cfg.Destination)
	log.Printf("Airports    : %d", len(cfg.Airports))
	log.Printf("Routes      : %d (each airport ↔ %s)", len(cfg.Airports)*2, cfg.Destination)
	log.Printf("Window      : %s – %s (%d months)",
		window[0].Label(), window[len(window)-1].Label(), len(window))
	log.Printf("Workers     : %d", cfg.Workers)
	log.Printf("Output      : %s", cfg.CSVFile)

	rootCtx, cancelRoot := context.WithTimeout(context.Background(), cfg.GlobalTimeout)
	defer cancelRoot()

	results := services.RunAll(rootCtx, cfg)

	header, rows := award.BuildTable(cfg, results)
	total, err := utils.WriteCSV(cfg.CSVFile, header, rows)
	if err != nil {
		log.Fatalf("✗ Failed to write CSV: %v", err)
	}

	if cfg.XLSXFile != "" {
		if err := utils.WriteXLSX(cfg.XLSXFile, header, rows); err != nil {
			log.Fatalf("✗ Failed to write XLSX: %v", err)
		}
	}

	if cfg.DBEnabled {
		store, err := storage.NewPostgresStore(cfg)
		if err != nil {
			log.Fatalf("✗ Failed to connect to PostgreSQL: %v", err)
		}
		defer store.Close()

		dbCtx, cancelDB := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancelDB()
		saved, err := store.SaveResults(dbCtx, cfg, results)
		if err != nil {
			log.Fatalf("✗ Failed to store results in PostgreSQL: %v", err)
		}
		log.Printf("  DB   — %d month rows upserted → award_months table", saved)
	}

	log.Printf("═══════════════════════════════════════════════════")
	log.Printf("  DONE — %d airport rows → %s", total, cfg.CSVFile)
	for _, r := range results {
		log.Printf("    %-5s %s", r.Airport+":", routeStatus(r))
	}

	stats := utils.BuildSummaryStats(cfg.Destination, results)
	log.Printf("  STATS")
	log.Printf("    Airports Scanned        : %d", stats.AirportsScanned)
	log.Printf("    Routes With Awards      : %d / %d", stats.RoutesWithAwards, len(results)*2)
	if stats.HasCheapest {
		log.Printf("    Cheapest Route          : %s at %s",
			stats.CheapestRoute, award.FormatPoints(stats.CheapestPoints))
	}
	if stats.MostCommonTax != "" {
		log.Printf("    Most Common Tax         : %s", stats.MostCommonTax)
	}
	log.Printf("    Matching Days per Airport (top 5)")
	for i, count := range stats.DaysPerAirport {
		if i == 5 {
			break
		}
		log.Printf("      - %s: %d", count.Airport, count.Days)
	}
	log.Printf("═══════════════════════════════════════════════════")
}

func routeStatus(r models.AirportResult) string {
	if r.Err != nil {
		return "ERROR: " + r.Err.Error()
	}
	toStatus, fromStatus := "—", "—"
	if r.ToDest.HasMin {
		toStatus = award.FormatPoints(r.ToDest.AbsMin)
	}
	if r.FromDest.HasMin {
		fromStatus = award.FormatPoints(r.FromDest.AbsMin)
	}
	return fmt.Sprintf("to %s, from %s", toStatus, fromStatus)
}
