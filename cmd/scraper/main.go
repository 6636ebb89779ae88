package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rennewman-going/alaska-award-scraper/award"
	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/services"
	"github.com/rennewman-going/alaska-award-scraper/utils"
)

// overrides carries the flag values; only flags the user actually set
// (tracked via flag.Visit) are applied on top of the loaded config.
type overrides struct {
	dest     string
	airports string
	out      string
	xlsx     string
	workers  int
	headless bool
}

// Flag-driven variant of the scraper for one-off runs: overrides the
// default airport table and window from the command line instead of a
// config file.
func main() {
	configFile := flag.String("config", "",
		"YAML config file (applied before any explicit flags)")
	o := overrides{}
	flag.StringVar(&o.dest, "dest", "",
		"Destination airport code")
	flag.StringVar(&o.airports, "airports", "",
		"Comma-separated CODE:THRESHOLD pairs, e.g. ABQ:4500,DEN:4500")
	flag.StringVar(&o.out, "out", "",
		"Output CSV filename")
	flag.StringVar(&o.xlsx, "xlsx", "",
		"Output XLSX filename (set to empty string to skip)")
	flag.IntVar(&o.workers, "workers", 0,
		"Concurrent browser sessions")
	flag.BoolVar(&o.headless, "headless", true,
		"Run Chrome headless (false = visible window)")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("✗ %v", err)
	}
	if err := applyOverrides(&cfg, o, set); err != nil {
		log.Fatalf("✗ %v", err)
	}

	window := cfg.Window()
	log.Printf("╔═══════════════════════════════════════════════════╗")
	log.Printf("║   Alaska Award Scraper (two-pass consistent pts)  ║")
	log.Printf("╚═══════════════════════════════════════════════════╝")
	log.Printf("Destination : %s", cfg.Destination)
	log.Printf("Airports    : %d", len(cfg.Airports))
	log.Printf("Window      : %s – %s", window[0].Label(), window[len(window)-1].Label())
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

	log.Printf("═══════════════════════════════════════════════════")
	log.Printf("  DONE — %d airport rows → %s", total, cfg.CSVFile)
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "ERROR: " + r.Err.Error()
		}
		log.Printf("    %-5s %s", r.Airport+":", status)
	}
	log.Printf("═══════════════════════════════════════════════════")
}

// applyOverrides applies explicitly-set flags to cfg and re-validates.
// Flags the user did not pass leave the loaded config untouched.
func applyOverrides(cfg *config.Config, o overrides, set map[string]bool) error {
	if set["dest"] {
		cfg.Destination = strings.ToUpper(strings.TrimSpace(o.dest))
	}
	if set["airports"] {
		airports, err := parseAirports(o.airports)
		if err != nil {
			return err
		}
		cfg.Airports = airports
	}
	if set["out"] {
		cfg.CSVFile = o.out
	}
	if set["xlsx"] {
		cfg.XLSXFile = o.xlsx
	}
	if set["workers"] {
		cfg.Workers = o.workers
	}
	if set["headless"] {
		cfg.Headless = o.headless
	}
	return cfg.Validate()
}

// parseAirports parses "ABQ:4500,DEN:4500" into the ordered airport list.
func parseAirports(s string) ([]config.Airport, error) {
	var airports []config.Airport
	for _, part := range splitTrim(s, ",") {
		code, threshold, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("bad airport spec %q (want CODE:THRESHOLD)", part)
		}
		maxPoints, err := strconv.Atoi(threshold)
		if err != nil {
			return nil, fmt.Errorf("bad threshold in %q: %w", part, err)
		}
		airports = append(airports, config.Airport{
			Code:      strings.ToUpper(strings.TrimSpace(code)),
			MaxPoints: maxPoints,
		})
	}
	if len(airports) == 0 {
		return nil, fmt.Errorf("no airports in %q", s)
	}
	return airports, nil
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
