package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harvest-cloud/marketdex/internal/db"
)

// marketColumns is the select list for market rows. Nullable text columns
// are coalesced so rows scan into plain strings.
const marketColumns = `id, slug, name,
	COALESCE(description, ''), COALESCE(address, ''), COALESCE(city, ''),
	COALESCE(state, ''), COALESCE(state_code, ''), COALESCE(zip_code, ''),
	latitude, longitude,
	COALESCE(phone, ''), COALESCE(website, ''),
	schedule, google_rating, COALESCE(google_reviews_count, 0),
	products, payment_methods, is_active`

// whereBuilder accumulates AND-joined conditions with numbered placeholders.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *whereBuilder) add(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *whereBuilder) clause() string {
	return strings.Join(b.conds, " AND ")
}

// buildWhere translates MarketQuery predicates into a WHERE clause.
// Tag keys are parameterized even though they come from a closed vocabulary.
func buildWhere(q *db.MarketQuery) *whereBuilder {
	b := &whereBuilder{}
	b.add("is_active = TRUE")

	if q.Text != "" {
		p := b.arg("%" + q.Text + "%")
		b.add(fmt.Sprintf("(name ILIKE %s OR city ILIKE %s OR state ILIKE %s)", p, p, p))
	}
	if q.StateCode != "" {
		b.add("state_code = " + b.arg(q.StateCode))
	}
	if q.City != "" {
		b.add("city ILIKE " + b.arg(q.City))
	}
	for _, tag := range q.ProductTags {
		b.add("products ->> " + b.arg(tag) + " = 'true'")
	}
	for _, tag := range q.PaymentTags {
		b.add("payment_methods ->> " + b.arg(tag) + " = 'true'")
	}
	if q.DayOpen != "" {
		// jsonb_typeof returns NULL for a missing key and 'null' for an
		// explicit JSON null; only a real hours object counts as open.
		b.add("jsonb_typeof(schedule -> " + b.arg(q.DayOpen) + ") = 'object'")
	}

	return b
}

func orderBy(sort db.SortOrder) string {
	switch sort {
	case db.SortRatingDesc:
		return "google_rating DESC NULLS LAST, name ASC"
	case db.SortNameAsc:
		return "name ASC"
	default:
		return "google_rating DESC NULLS LAST, name ASC"
	}
}

// buildSelectSQL renders the row query for a MarketQuery.
func buildSelectSQL(q *db.MarketQuery) (string, []any) {
	b := buildWhere(q)

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(marketColumns)
	sb.WriteString(" FROM markets WHERE ")
	sb.WriteString(b.clause())
	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderBy(q.Sort))

	if q.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.arg(q.Limit))
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.arg(q.Offset))
	}

	return sb.String(), b.args
}

// buildCountSQL renders the exact-count query sharing the same predicates.
func buildCountSQL(q *db.MarketQuery) (string, []any) {
	b := buildWhere(q)
	return "SELECT count(*) FROM markets WHERE " + b.clause(), b.args
}
