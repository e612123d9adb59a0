package domain

// Market is a farmers-market directory record. Read-only to the search core;
// the store owns its lifecycle.
type Market struct {
	ID          string
	Slug        string
	Name        string
	Description string
	Address     string
	City        string
	State       string
	StateCode   string
	ZipCode     string

	// Latitude/Longitude are either both present or both nil.
	Latitude  *float64
	Longitude *float64

	Phone   string
	Website string

	Schedule Schedule

	GoogleRating       *float64
	GoogleReviewsCount int

	Products       map[Product]bool
	PaymentMethods map[Payment]bool

	IsActive bool
}

// HasCoordinates reports whether both latitude and longitude are present.
func (m *Market) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}

// SellsAll reports whether every given product tag is true for this market.
// A missing tag key counts as false, not unknown.
func (m *Market) SellsAll(products []Product) bool {
	for _, p := range products {
		if !m.Products[p] {
			return false
		}
	}
	return true
}

// AcceptsAll reports whether every given payment tag is true for this market.
func (m *Market) AcceptsAll(methods []Payment) bool {
	for _, p := range methods {
		if !m.PaymentMethods[p] {
			return false
		}
	}
	return true
}

// StateCount is the number of active markets in one state.
type StateCount struct {
	StateCode string
	StateName string
	Markets   int
}
