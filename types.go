package marketdex

// Hours is one day's opening window.
type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Market is a directory record as returned by the API. DistanceMiles is set
// only on geo search results.
type Market struct {
	ID                 string            `json:"id"`
	Slug               string            `json:"slug"`
	Name               string            `json:"name"`
	Description        string            `json:"description,omitempty"`
	Address            string            `json:"address,omitempty"`
	City               string            `json:"city,omitempty"`
	State              string            `json:"state,omitempty"`
	StateCode          string            `json:"state_code,omitempty"`
	ZipCode            string            `json:"zip_code,omitempty"`
	Latitude           *float64          `json:"latitude"`
	Longitude          *float64          `json:"longitude"`
	Phone              string            `json:"phone,omitempty"`
	Website            string            `json:"website,omitempty"`
	Schedule           map[string]*Hours `json:"schedule,omitempty"`
	GoogleRating       *float64          `json:"google_rating"`
	GoogleReviewsCount int               `json:"google_reviews_count"`
	Products           map[string]bool   `json:"products,omitempty"`
	PaymentMethods     map[string]bool   `json:"payment_methods,omitempty"`
	DistanceMiles      *float64          `json:"distance_miles,omitempty"`
}

// SearchPage is one page of search results.
type SearchPage struct {
	Data       []Market `json:"data"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}

// State is one row of the per-state directory index.
type State struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Markets int    `json:"markets"`
}

// Sort tokens accepted by the search endpoint.
const (
	SortRating   = "rating"
	SortName     = "name"
	SortDistance = "distance"
)
