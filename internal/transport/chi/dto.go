package chi

import (
	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
	"github.com/harvest-cloud/marketdex/internal/usecase/health"
)

type apiHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type apiMarket struct {
	ID                 string               `json:"id"`
	Slug               string               `json:"slug"`
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	Address            string               `json:"address,omitempty"`
	City               string               `json:"city,omitempty"`
	State              string               `json:"state,omitempty"`
	StateCode          string               `json:"state_code,omitempty"`
	ZipCode            string               `json:"zip_code,omitempty"`
	Latitude           *float64             `json:"latitude"`
	Longitude          *float64             `json:"longitude"`
	Phone              string               `json:"phone,omitempty"`
	Website            string               `json:"website,omitempty"`
	Schedule           map[string]*apiHours `json:"schedule,omitempty"`
	GoogleRating       *float64             `json:"google_rating"`
	GoogleReviewsCount int                  `json:"google_reviews_count"`
	Products           map[string]bool      `json:"products,omitempty"`
	PaymentMethods     map[string]bool      `json:"payment_methods,omitempty"`
	DistanceMiles      *float64             `json:"distance_miles,omitempty"`
}

type searchResponse struct {
	Data       []apiMarket `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

type apiState struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Markets int    `json:"markets"`
}

type statesResponse struct {
	Data []apiState `json:"data"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func marketToAPI(m *domain.Market, distance *float64) apiMarket {
	out := apiMarket{
		ID:                 m.ID,
		Slug:               m.Slug,
		Name:               m.Name,
		Description:        m.Description,
		Address:            m.Address,
		City:               m.City,
		State:              m.State,
		StateCode:          m.StateCode,
		ZipCode:            m.ZipCode,
		Latitude:           m.Latitude,
		Longitude:          m.Longitude,
		Phone:              m.Phone,
		Website:            m.Website,
		GoogleRating:       m.GoogleRating,
		GoogleReviewsCount: m.GoogleReviewsCount,
		DistanceMiles:      distance,
	}

	if len(m.Schedule) > 0 {
		out.Schedule = make(map[string]*apiHours, len(m.Schedule))
		for day, hours := range m.Schedule {
			if hours == nil {
				out.Schedule[string(day)] = nil
				continue
			}
			out.Schedule[string(day)] = &apiHours{Open: hours.Open, Close: hours.Close}
		}
	}
	if len(m.Products) > 0 {
		out.Products = make(map[string]bool, len(m.Products))
		for tag, v := range m.Products {
			out.Products[string(tag)] = v
		}
	}
	if len(m.PaymentMethods) > 0 {
		out.PaymentMethods = make(map[string]bool, len(m.PaymentMethods))
		for tag, v := range m.PaymentMethods {
			out.PaymentMethods[string(tag)] = v
		}
	}

	return out
}

func pageToAPI(page *domsearch.Page) searchResponse {
	data := make([]apiMarket, len(page.Items))
	for i, item := range page.Items {
		data[i] = marketToAPI(&item.Market, item.DistanceMiles)
	}
	return searchResponse{
		Data:       data,
		Total:      page.TotalMatches,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

func healthToAPI(report health.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
