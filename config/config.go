package config

import (
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Airport is one configured origin with its award-points ceiling.
// Prices above MaxPoints are never eligible for that route.
type Airport struct {
	Code      string `yaml:"code" validate:"required,len=3,uppercase"`
	MaxPoints int    `yaml:"max_points" validate:"gt=0"`
}

// Config holds all runtime configuration for the scraper.
type Config struct {
	Destination  string    `yaml:"destination" validate:"required,len=3,uppercase"`
	Airports     []Airport `yaml:"airports" validate:"required,min=1,dive"`
	StartYear    int       `yaml:"start_year" validate:"gte=2020"`
	StartMonth   int       `yaml:"start_month" validate:"gte=1,lte=12"`
	WindowMonths int       `yaml:"window_months" validate:"gt=0"`

	Workers   int    `yaml:"workers" validate:"gte=1"`
	CSVFile   string `yaml:"csv_file" validate:"required"`
	XLSXFile  string `yaml:"xlsx_file"`
	DebugHTML string `yaml:"debug_html"`
	Headless  bool   `yaml:"headless"`
	UserAgent string `yaml:"user_agent"`

	// Timing
	CalendarSettle  time.Duration // extra wait after navigation (Auro web components render late)
	SelectorTimeout time.Duration // per-selector wait while probing for the calendar
	MonthTimeout    time.Duration // hard cap for one month fetch
	GlobalTimeout   time.Duration

	// PostgreSQL
	DBEnabled  bool
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Default returns a Config populated with sensible defaults: the full
// PHX airport list with per-route thresholds and the Mar 2026–Jan 2027
// scan window.
func Default() Config {
	return Config{
		Destination:  "PHX",
		Airports:     defaultAirports(),
		StartYear:    2026,
		StartMonth:   3,
		WindowMonths: 11,

		Workers:   1,
		CSVFile:   "alaska_awards_PHX.csv",
		XLSXFile:  "alaska_awards_PHX.xlsx",
		DebugHTML: "debug_results.html",
		Headless:  true,
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",

		CalendarSettle:  4 * time.Second,
		SelectorTimeout: 15 * time.Second,
		MonthTimeout:    90 * time.Second,
		GlobalTimeout:   8 * time.Hour,

		DBEnabled:  getEnv("DB_ENABLED", "") == "true",
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "awards"),
		DBPassword: getEnv("DB_PASSWORD", "awards"),
		DBName:     getEnv("DB_NAME", "award_scraper"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// Window expands the configured start month into the ordered list of
// months the scan covers.
func (c Config) Window() []Month {
	months := make([]Month, 0, c.WindowMonths)
	m := Month{Year: c.StartYear, Month: c.StartMonth}
	for i := 0; i < c.WindowMonths; i++ {
		months = append(months, m)
		m = m.Next()
	}
	return months
}

// RandomDelay returns the pause used between calendar navigations.
func RandomDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(1500*time.Millisecond)))
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func defaultAirports() []Airport {
	return []Airport{
		{"ABQ", 4500}, {"ASE", 4500}, {"AUS", 7500}, {"BIL", 7500}, {"BOI", 5000},
		{"DEN", 4500}, {"DFW", 7500}, {"DRO", 7500}, {"DSM", 7500}, {"EGE", 7500},
		{"ELP", 7500}, {"EUG", 7500}, {"FAR", 7500}, {"FAT", 7500}, {"GEG", 7500},
		{"GRR", 7500}, {"GTJ", 7500}, {"HNL", 7500}, {"IAH", 7500}, {"ICT", 7500},
		{"IDA", 7500}, {"KOA", 7500}, {"LAS", 7500}, {"LAX", 7500}, {"LBB", 7500},
		{"LIH", 7500}, {"LIT", 7500}, {"MCI", 7500}, {"MEM", 7500}, {"MSN", 7500},
		{"MSP", 7500}, {"MSY", 7500}, {"OGG", 7500}, {"OKC", 7500}, {"OMA", 7500},
		{"PDX", 7500}, {"PSP", 7500}, {"RDM", 7500}, {"RNO", 7500}, {"SAF", 7500},
		{"SAN", 7500}, {"SAT", 7500}, {"SBA", 7500}, {"SEA", 7500}, {"SFO", 7500},
		{"SJC", 7500}, {"SLC", 7500}, {"SMF", 7500}, {"STL", 7500}, {"STS", 7500},
		{"SUN", 7500}, {"TUL", 7500}, {"XNA", 7500}, {"PVU", 7500},
	}
}
