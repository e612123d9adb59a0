// Package postgres implements the db.Store contract on a Postgres pool.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harvest-cloud/marketdex/internal/db"
	"github.com/harvest-cloud/marketdex/internal/metrics"
)

// Config holds Postgres connection settings.
type Config struct {
	DSN string
}

// Store is a pgxpool-backed db.Store.
type Store struct {
	pool *pgxpool.Pool
}

var _ db.Store = (*Store)(nil)

// NewStore creates a connection pool. The pool connects lazily; call
// WaitForReady before serving.
func NewStore(cfg Config) (*Store, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// WaitForReady pings until the database answers or the timeout elapses.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = s.Ping(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return fmt.Errorf("database not ready after %s: %w", timeout, lastErr)
}

// QueryMarkets runs the exact count and the row query sharing one predicate set.
func (s *Store) QueryMarkets(ctx context.Context, q *db.MarketQuery) (*db.MarketPage, error) {
	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(db.OpQuery).Observe(time.Since(start).Seconds())
	}()

	countSQL, countArgs := buildCountSQL(q)
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, &db.Error{Op: db.OpCount, Err: err}
	}

	selectSQL, selectArgs := buildSelectSQL(q)
	rows, err := s.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}
	defer rows.Close()

	page := &db.MarketPage{Total: total}
	for rows.Next() {
		row, err := scanMarketRow(rows)
		if err != nil {
			return nil, &db.Error{Op: db.OpQuery, Err: err}
		}
		page.Rows = append(page.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpQuery, Err: err}
	}

	return page, nil
}

// GetMarketBySlug fetches one active market row.
func (s *Store) GetMarketBySlug(ctx context.Context, slug string) (*db.MarketRow, error) {
	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(db.OpGetBySlug).Observe(time.Since(start).Seconds())
	}()

	sql := "SELECT " + marketColumns + " FROM markets WHERE is_active = TRUE AND slug = $1"
	rows, err := s.pool.Query(ctx, sql, slug)
	if err != nil {
		return nil, &db.Error{Op: db.OpGetBySlug, Err: err}
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &db.Error{Op: db.OpGetBySlug, Err: err}
		}
		return nil, db.ErrNoRows
	}
	row, err := scanMarketRow(rows)
	if err != nil {
		return nil, &db.Error{Op: db.OpGetBySlug, Err: err}
	}
	return &row, nil
}

// CountByState aggregates active markets per state code.
func (s *Store) CountByState(ctx context.Context) ([]db.StateRowCount, error) {
	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(db.OpCountByState).Observe(time.Since(start).Seconds())
	}()

	sql := `SELECT state_code, count(*) FROM markets
		WHERE is_active = TRUE AND state_code IS NOT NULL AND state_code <> ''
		GROUP BY state_code ORDER BY state_code`

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, &db.Error{Op: db.OpCountByState, Err: err}
	}
	defer rows.Close()

	var out []db.StateRowCount
	for rows.Next() {
		var c db.StateRowCount
		if err := rows.Scan(&c.StateCode, &c.Markets); err != nil {
			return nil, &db.Error{Op: db.OpCountByState, Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpCountByState, Err: err}
	}
	return out, nil
}

// scanMarketRow scans one row from the marketColumns select list. JSONB
// columns arrive as raw bytes and are decoded here; the repository layer
// validates keys against the domain vocabularies.
func scanMarketRow(rows pgx.Rows) (db.MarketRow, error) {
	var (
		row                                  db.MarketRow
		scheduleRaw, productsRaw, paymentRaw []byte
	)

	err := rows.Scan(
		&row.ID, &row.Slug, &row.Name,
		&row.Description, &row.Address, &row.City,
		&row.State, &row.StateCode, &row.ZipCode,
		&row.Latitude, &row.Longitude,
		&row.Phone, &row.Website,
		&scheduleRaw, &row.GoogleRating, &row.GoogleReviewsCount,
		&productsRaw, &paymentRaw, &row.IsActive,
	)
	if err != nil {
		return db.MarketRow{}, fmt.Errorf("scan market row: %w", err)
	}

	if len(scheduleRaw) > 0 {
		if err := json.Unmarshal(scheduleRaw, &row.Schedule); err != nil {
			return db.MarketRow{}, fmt.Errorf("decode schedule for %s: %w", row.ID, err)
		}
	}
	if len(productsRaw) > 0 {
		if err := json.Unmarshal(productsRaw, &row.Products); err != nil {
			return db.MarketRow{}, fmt.Errorf("decode products for %s: %w", row.ID, err)
		}
	}
	if len(paymentRaw) > 0 {
		if err := json.Unmarshal(paymentRaw, &row.PaymentMethods); err != nil {
			return db.MarketRow{}, fmt.Errorf("decode payment_methods for %s: %w", row.ID, err)
		}
	}

	// A half-specified coordinate pair is as good as none.
	if (row.Latitude == nil) != (row.Longitude == nil) {
		row.Latitude, row.Longitude = nil, nil
	}

	return row, nil
}
