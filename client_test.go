package marketdex

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestClient_Market(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/markets/midtown" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		_ = json.NewEncoder(w).Encode(Market{ID: "1", Slug: "midtown", Name: "Midtown Farmers Market"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithAPIKey("test-key"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := c.Market(context.Background(), "midtown")
	if err != nil {
		t.Fatalf("Market: %v", err)
	}
	if m.Slug != "midtown" || m.Name != "Midtown Farmers Market" {
		t.Errorf("market = %+v", m)
	}
}

func TestClient_Market_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	if _, err := c.Market(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    "bad_geo",
			"message": "lat, lng and radius must be given together",
		})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	_, err := c.Search().Near(38.58, -121.49).Do(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Code != "bad_geo" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestSearchBuilder_Params(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(SearchPage{Page: 1, Limit: 12})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	_, err := c.Search().
		Query("honey").
		State("CA").
		City("Sacramento").
		Products("honey", "eggs").
		PaymentMethods("snap").
		OpenOn("saturday").
		Near(38.58, -121.49).
		Radius(25).
		Sort(SortDistance).
		Page(2).
		Limit(24).
		Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	q := req.URL.Query()

	want := map[string]string{
		"q":               "honey",
		"state":           "CA",
		"city":            "Sacramento",
		"products":        "honey,eggs",
		"payment_methods": "snap",
		"day":             "saturday",
		"lat":             "38.58",
		"lng":             "-121.49",
		"radius":          "25",
		"sort":            "distance",
		"page":            "2",
		"limit":           "24",
	}
	for key, val := range want {
		if got := q.Get(key); got != val {
			t.Errorf("param %s = %q, want %q", key, got, val)
		}
	}
}

func TestClient_Search_Page(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(SearchPage{
			Data:       []Market{{Slug: "midtown"}},
			Total:      13,
			Page:       1,
			Limit:      12,
			TotalPages: 2,
		})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	page, err := c.Search().Query("market").Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if page.Total != 13 || page.TotalPages != 2 || len(page.Data) != 1 {
		t.Errorf("page = %+v", page)
	}
}

func TestClient_States(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/states" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string][]State{
			"data": {{Code: "CA", Name: "California", Markets: 12}},
		})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	states, err := c.States(context.Background())
	if err != nil {
		t.Fatalf("States: %v", err)
	}
	if len(states) != 1 || states[0].Code != "CA" || states[0].Markets != 12 {
		t.Errorf("states = %+v", states)
	}
}
