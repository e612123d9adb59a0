package search

import "testing"

func TestNewPage_TotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{50, 12, 5},
		{10, 0, 0},
	}
	for _, tt := range tests {
		page := NewPage(nil, tt.total, 1, tt.limit)
		if page.TotalPages != tt.want {
			t.Errorf("NewPage(total=%d, limit=%d).TotalPages = %d, want %d",
				tt.total, tt.limit, page.TotalPages, tt.want)
		}
	}
}
