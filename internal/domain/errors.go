package domain

import "errors"

var (
	// ErrMarketNotFound signals a missing or inactive market.
	ErrMarketNotFound = errors.New("market not found")
	// ErrBadGeo signals a partially specified or unparsable lat/lng/radius triple.
	ErrBadGeo = errors.New("incomplete geo parameters")
)
