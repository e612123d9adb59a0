package marketdex

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchBuilder is a fluent builder for market search queries.
type SearchBuilder struct {
	client *Client
	params url.Values
}

// Query sets the free-text query.
func (b *SearchBuilder) Query(q string) *SearchBuilder {
	b.params.Set("q", q)
	return b
}

// State filters by 2-letter state code.
func (b *SearchBuilder) State(code string) *SearchBuilder {
	b.params.Set("state", code)
	return b
}

// City filters by city name (case-insensitive).
func (b *SearchBuilder) City(city string) *SearchBuilder {
	b.params.Set("city", city)
	return b
}

// Products filters by product tags; every tag must be present.
func (b *SearchBuilder) Products(tags ...string) *SearchBuilder {
	b.params.Set("products", strings.Join(tags, ","))
	return b
}

// PaymentMethods filters by payment tags; every tag must be present.
func (b *SearchBuilder) PaymentMethods(tags ...string) *SearchBuilder {
	b.params.Set("payment_methods", strings.Join(tags, ","))
	return b
}

// OpenOn filters to markets open on a day ("sunday".."saturday").
func (b *SearchBuilder) OpenOn(day string) *SearchBuilder {
	b.params.Set("day", day)
	return b
}

// Near sets the geographic center point for radius search.
func (b *SearchBuilder) Near(lat, lng float64) *SearchBuilder {
	b.params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	b.params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	return b
}

// Radius sets the search radius in miles. Requires Near.
func (b *SearchBuilder) Radius(miles float64) *SearchBuilder {
	b.params.Set("radius", strconv.FormatFloat(miles, 'f', -1, 64))
	return b
}

// Sort sets the result ordering (SortRating, SortName, SortDistance).
func (b *SearchBuilder) Sort(sort string) *SearchBuilder {
	b.params.Set("sort", sort)
	return b
}

// Page sets the 1-based page number.
func (b *SearchBuilder) Page(n int) *SearchBuilder {
	b.params.Set("page", strconv.Itoa(n))
	return b
}

// Limit sets the page size (server clamps to its maximum).
func (b *SearchBuilder) Limit(n int) *SearchBuilder {
	b.params.Set("limit", strconv.Itoa(n))
	return b
}

// Do executes the search.
func (b *SearchBuilder) Do(ctx context.Context) (*SearchPage, error) {
	var page SearchPage
	if err := b.client.get(ctx, "/api/markets", b.params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
