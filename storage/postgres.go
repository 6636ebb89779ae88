package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rennewman-going/alaska-award-scraper/award"
	"github.com/rennewman-going/alaska-award-scraper/config"
	"github.com/rennewman-going/alaska-award-scraper/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(cfg config.Config) (*PostgresStore, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &PostgresStore{db: db}
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer schemaCancel()
	if err := store.ensureSchema(schemaCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveResults upserts one row per (origin, direction, month) with the
// compressed matching days and the route's minimum/tax summary.
// Returns the number of rows written.
func (s *PostgresStore) SaveResults(ctx context.Context, cfg config.Config, results []models.AirportResult) (int, error) {
	if len(results) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO award_months (destination, origin, direction, month_label, days, min_points, typical_tax)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (destination, origin, direction, month_label) DO UPDATE
		SET
			days = EXCLUDED.days,
			min_points = EXCLUDED.min_points,
			typical_tax = EXCLUDED.typical_tax,
			updated_at = NOW()`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	window := cfg.Window()
	total := 0
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		directions := []struct {
			name  string
			route models.RouteResult
		}{
			{"D", result.ToDest},
			{"R", result.FromDest},
		}
		for _, dir := range directions {
			var minPoints interface{}
			if dir.route.HasMin {
				minPoints = dir.route.AbsMin
			}
			for _, m := range window {
				label := m.Label()
				if _, err = stmt.ExecContext(
					ctx,
					cfg.Destination,
					result.Airport,
					dir.name,
					label,
					award.CompressDays(dir.route.MonthDays[label]),
					minPoints,
					dir.route.Tax,
				); err != nil {
					return 0, fmt.Errorf("insert %s %s %s: %w", result.Airport, dir.name, label, err)
				}
				total++
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return total, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS award_months (
			id BIGSERIAL PRIMARY KEY,
			destination TEXT NOT NULL,
			origin TEXT NOT NULL,
			direction TEXT NOT NULL,
			month_label TEXT NOT NULL,
			days TEXT NOT NULL DEFAULT '',
			min_points INT,
			typical_tax TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (destination, origin, direction, month_label)
		);
		CREATE INDEX IF NOT EXISTS idx_award_months_origin ON award_months(origin);
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
