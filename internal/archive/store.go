// Package archive persists rendered reports to Postgres so analyses can be
// compared across runs without re-scraping the source.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finlens/ratioscope/pkg/logger"
)

// ErrNotFound is returned when no snapshot exists for a ticker.
var ErrNotFound = errors.New("no archived report for ticker")

// Snapshot is one archived report. The upsert key is the ticker, so each
// ticker keeps only its latest snapshot.
type Snapshot struct {
	ID          uuid.UUID `json:"id"`
	Ticker      string    `json:"ticker"`
	Periods     []string  `json:"periods"`
	Markdown    string    `json:"markdown"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// Open connects to Postgres and ensures the schema exists.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty archive DSN")
	}
	if log == nil {
		log = logger.Nop()
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse archive DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to archive: %w", err)
	}

	s := &Store{pool: pool, log: log}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS ratio_reports (
			id UUID PRIMARY KEY,
			ticker TEXT NOT NULL UNIQUE,
			periods TEXT[] NOT NULL,
			markdown TEXT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure archive schema: %w", err)
	}
	return nil
}

// Save upserts a snapshot keyed on ticker. A re-archived ticker keeps its
// original row id.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	const query = `
		INSERT INTO ratio_reports (id, ticker, periods, markdown, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ticker)
		DO UPDATE SET
			periods = EXCLUDED.periods,
			markdown = EXCLUDED.markdown,
			generated_at = EXCLUDED.generated_at`

	_, err := s.pool.Exec(ctx, query, snap.ID, snap.Ticker, snap.Periods, snap.Markdown, snap.GeneratedAt)
	if err != nil {
		return fmt.Errorf("save report for %s: %w", snap.Ticker, err)
	}
	s.log.WithField("ticker", snap.Ticker).Info("archived report")
	return nil
}

// Load retrieves the latest snapshot for a ticker.
func (s *Store) Load(ctx context.Context, ticker string) (*Snapshot, error) {
	const query = `
		SELECT id, ticker, periods, markdown, generated_at
		FROM ratio_reports WHERE ticker = $1`

	var snap Snapshot
	err := s.pool.QueryRow(ctx, query, ticker).
		Scan(&snap.ID, &snap.Ticker, &snap.Periods, &snap.Markdown, &snap.GeneratedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
		}
		return nil, fmt.Errorf("load report for %s: %w", ticker, err)
	}
	return &snap, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
