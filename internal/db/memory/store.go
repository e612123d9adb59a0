// Package memory implements db.Store over an in-process slice of rows. It
// mirrors the Postgres driver's predicate and ordering semantics and serves
// local development and tests without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/harvest-cloud/marketdex/internal/db"
)

// Store is an in-memory db.Store.
type Store struct {
	mu   sync.RWMutex
	rows []db.MarketRow
}

var _ db.Store = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Seed replaces the row set.
func (s *Store) Seed(rows []db.MarketRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append([]db.MarketRow(nil), rows...)
}

// Close is a no-op.
func (s *Store) Close() {}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// WaitForReady always succeeds.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// QueryMarkets evaluates the predicates in-process with the same semantics
// as the SQL driver.
func (s *Store) QueryMarkets(_ context.Context, q *db.MarketQuery) (*db.MarketPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []db.MarketRow
	for _, row := range s.rows {
		if matches(&row, q) {
			matched = append(matched, row)
		}
	}

	sortRows(matched, q.Sort)

	page := &db.MarketPage{Total: len(matched)}
	if q.Limit <= 0 {
		page.Rows = matched
		return page, nil
	}

	lo := q.Offset
	if lo > len(matched) {
		lo = len(matched)
	}
	hi := lo + q.Limit
	if hi > len(matched) {
		hi = len(matched)
	}
	page.Rows = matched[lo:hi]
	return page, nil
}

// GetMarketBySlug returns one active row or db.ErrNoRows.
func (s *Store) GetMarketBySlug(_ context.Context, slug string) (*db.MarketRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.rows {
		if row.IsActive && row.Slug == slug {
			r := row
			return &r, nil
		}
	}
	return nil, db.ErrNoRows
}

// CountByState aggregates active rows by state code, sorted by code.
func (s *Store) CountByState(context.Context) ([]db.StateRowCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, row := range s.rows {
		if row.IsActive && row.StateCode != "" {
			counts[row.StateCode]++
		}
	}

	out := make([]db.StateRowCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, db.StateRowCount{StateCode: code, Markets: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StateCode < out[j].StateCode })
	return out, nil
}

func matches(row *db.MarketRow, q *db.MarketQuery) bool {
	if !row.IsActive {
		return false
	}
	if q.Text != "" && !textMatches(row, q.Text) {
		return false
	}
	if q.StateCode != "" && row.StateCode != q.StateCode {
		return false
	}
	if q.City != "" && !strings.EqualFold(row.City, q.City) {
		return false
	}
	for _, tag := range q.ProductTags {
		if !row.Products[tag] {
			return false
		}
	}
	for _, tag := range q.PaymentTags {
		if !row.PaymentMethods[tag] {
			return false
		}
	}
	if q.DayOpen != "" {
		h, ok := row.Schedule[q.DayOpen]
		if !ok || h == nil {
			return false
		}
	}
	return true
}

func textMatches(row *db.MarketRow, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(row.Name), needle) ||
		strings.Contains(strings.ToLower(row.City), needle) ||
		strings.Contains(strings.ToLower(row.State), needle)
}

func sortRows(rows []db.MarketRow, order db.SortOrder) {
	switch order {
	case db.SortNameAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Name < rows[j].Name
		})
	default:
		// SortRatingDesc and SortComposite share the same order: rating
		// descending with nulls last, ties broken by name ascending.
		sort.SliceStable(rows, func(i, j int) bool {
			if ratingLess(&rows[j], &rows[i]) {
				return true
			}
			if ratingLess(&rows[i], &rows[j]) {
				return false
			}
			return rows[i].Name < rows[j].Name
		})
	}
}

// ratingLess orders nil ratings below any value, matching NULLS LAST under
// a descending sort.
func ratingLess(a, b *db.MarketRow) bool {
	switch {
	case a.GoogleRating == nil:
		return b.GoogleRating != nil
	case b.GoogleRating == nil:
		return false
	default:
		return *a.GoogleRating < *b.GoogleRating
	}
}
