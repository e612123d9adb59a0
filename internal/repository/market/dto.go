package market

import (
	"github.com/harvest-cloud/marketdex/internal/db"
	"github.com/harvest-cloud/marketdex/internal/domain"
)

// rowToMarket converts a stored row into a domain record. Tag maps and the
// schedule are validated against the closed vocabularies here, at the store
// boundary: unknown keys are dropped so they can never act as silent filters.
func rowToMarket(row *db.MarketRow) domain.Market {
	m := domain.Market{
		ID:                 row.ID,
		Slug:               row.Slug,
		Name:               row.Name,
		Description:        row.Description,
		Address:            row.Address,
		City:               row.City,
		State:              row.State,
		StateCode:          row.StateCode,
		ZipCode:            row.ZipCode,
		Latitude:           row.Latitude,
		Longitude:          row.Longitude,
		Phone:              row.Phone,
		Website:            row.Website,
		GoogleRating:       row.GoogleRating,
		GoogleReviewsCount: row.GoogleReviewsCount,
		IsActive:           row.IsActive,
	}

	if (m.Latitude == nil) != (m.Longitude == nil) {
		m.Latitude, m.Longitude = nil, nil
	}

	if len(row.Products) > 0 {
		m.Products = make(map[domain.Product]bool, len(row.Products))
		for key, val := range row.Products {
			if p, ok := domain.ParseProduct(key); ok {
				m.Products[p] = val
			}
		}
	}

	if len(row.PaymentMethods) > 0 {
		m.PaymentMethods = make(map[domain.Payment]bool, len(row.PaymentMethods))
		for key, val := range row.PaymentMethods {
			if p, ok := domain.ParsePayment(key); ok {
				m.PaymentMethods[p] = val
			}
		}
	}

	if len(row.Schedule) > 0 {
		m.Schedule = make(domain.Schedule, len(row.Schedule))
		for key, hours := range row.Schedule {
			day, ok := domain.ParseDay(key)
			if !ok {
				continue
			}
			if hours == nil {
				m.Schedule[day] = nil
				continue
			}
			m.Schedule[day] = &domain.Hours{Open: hours.Open, Close: hours.Close}
		}
	}

	return m
}
