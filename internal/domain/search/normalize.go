package search

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/harvest-cloud/marketdex/internal/domain"
)

// Normalize parses raw query parameters into a Spec. It is forgiving by
// design: malformed day/sort/page/limit values degrade to safe defaults so a
// public search endpoint stays available. The only rejected input is a
// partially specified or unparsable geo triple, which wraps domain.ErrBadGeo.
func Normalize(params url.Values) (Spec, error) {
	spec := Spec{
		Text:      strings.ToLower(strings.TrimSpace(params.Get("q"))),
		StateCode: strings.ToUpper(strings.TrimSpace(params.Get("state"))),
		City:      strings.TrimSpace(params.Get("city")),
		Sort:      SortDefault,
		Page:      parsePage(params.Get("page")),
		Limit:     parseLimit(params.Get("limit")),
	}

	spec.Products = parseProductTags(params.Get("products"))
	spec.PaymentMethods = parsePaymentTags(params.Get("payment_methods"))

	if day, ok := domain.ParseDay(params.Get("day")); ok {
		spec.DayOpen = day
	}

	g, err := parseGeo(params.Get("lat"), params.Get("lng"), params.Get("radius"))
	if err != nil {
		return Spec{}, err
	}
	spec.Geo = g

	spec.Sort = parseSort(params.Get("sort"), spec.Geo != nil)

	return spec, nil
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultLimit
	}
	if n < 1 {
		return 1
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// parseSort maps the wire token to a Sort. Unrecognized tokens fall back to
// the default; a location with no explicit sort implies distance ordering,
// and distance without a location degrades to the default composite sort.
func parseSort(raw string, hasGeo bool) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(raw))) {
	case SortRating:
		return SortRating
	case SortName:
		return SortName
	case SortDistance:
		if hasGeo {
			return SortDistance
		}
		return SortDefault
	default:
		if hasGeo {
			return SortDistance
		}
		return SortDefault
	}
}

func parseProductTags(raw string) []domain.Product {
	var out []domain.Product
	seen := make(map[domain.Product]struct{})
	for _, tok := range strings.Split(raw, ",") {
		p, ok := domain.ParseProduct(tok)
		if !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func parsePaymentTags(raw string) []domain.Payment {
	var out []domain.Payment
	seen := make(map[domain.Payment]struct{})
	for _, tok := range strings.Split(raw, ",") {
		p, ok := domain.ParsePayment(tok)
		if !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// parseGeo validates the all-or-nothing lat/lng/radius triple. A radius that
// cannot match anything (<= 0) means no geo search rather than an error.
func parseGeo(latRaw, lngRaw, radiusRaw string) (*Geo, error) {
	latRaw = strings.TrimSpace(latRaw)
	lngRaw = strings.TrimSpace(lngRaw)
	radiusRaw = strings.TrimSpace(radiusRaw)

	present := 0
	for _, v := range []string{latRaw, lngRaw, radiusRaw} {
		if v != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present < 3 {
		return nil, fmt.Errorf("%w: lat, lng and radius must be given together", domain.ErrBadGeo)
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lat %q", domain.ErrBadGeo, latRaw)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lng %q", domain.ErrBadGeo, lngRaw)
	}
	radius, err := strconv.ParseFloat(radiusRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid radius %q", domain.ErrBadGeo, radiusRaw)
	}
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: NaN coordinate", domain.ErrBadGeo)
	}

	if radius <= 0 {
		return nil, nil
	}

	return &Geo{Lat: lat, Lng: lng, RadiusMiles: radius}, nil
}
