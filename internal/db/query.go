package db

// SortOrder is a store-level ordering. Distance ordering never reaches the
// store; it is applied in-process by the geo ranker.
type SortOrder string

const (
	// SortComposite orders by rating descending (nulls last) then name ascending.
	SortComposite SortOrder = "composite"
	// SortRatingDesc orders by rating descending, nulls last.
	SortRatingDesc SortOrder = "rating_desc"
	// SortNameAsc orders by name ascending.
	SortNameAsc SortOrder = "name_asc"
)

// MarketQuery is the set of push-down predicates for QueryMarkets. Zero
// values mean "no filter". Only active markets are ever returned.
type MarketQuery struct {
	// Text matches name OR city OR state, case-insensitive substring.
	Text string
	// StateCode matches state_code exactly.
	StateCode string
	// City matches city case-insensitively.
	City string
	// ProductTags and PaymentTags are conjunctive: every tag must map to
	// true in the row's corresponding tag map.
	ProductTags []string
	PaymentTags []string
	// DayOpen requires a non-null schedule entry for the day token.
	DayOpen string

	Sort SortOrder

	// Offset/Limit paginate at the store. Limit <= 0 means no limit.
	Offset int
	Limit  int
}
