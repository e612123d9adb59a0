package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authGet(t *testing.T, h http.Handler, target, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBearerAuth_DisabledWithoutKeys(t *testing.T) {
	h := BearerAuthMiddleware(nil)(okHandler())

	if rec := authGet(t, h, "/api/markets", ""); rec.Code != http.StatusOK {
		t.Errorf("no keys configured: status = %d, want pass-through", rec.Code)
	}

	// Blank keys are ignored, not treated as a configured key.
	h = BearerAuthMiddleware([]string{""})(okHandler())
	if rec := authGet(t, h, "/api/markets", ""); rec.Code != http.StatusOK {
		t.Errorf("blank key: status = %d, want pass-through", rec.Code)
	}
}

func TestBearerAuth_ValidKey(t *testing.T) {
	h := BearerAuthMiddleware([]string{"secret-1", "secret-2"})(okHandler())

	if rec := authGet(t, h, "/api/markets", "Bearer secret-2"); rec.Code != http.StatusOK {
		t.Errorf("valid key rejected: status = %d", rec.Code)
	}
}

func TestBearerAuth_Rejections(t *testing.T) {
	h := BearerAuthMiddleware([]string{"secret"})(okHandler())

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic c2VjcmV0"},
		{"unknown key", "Bearer wrong"},
		{"bare token", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := authGet(t, h, "/api/markets", tt.authorization)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestBearerAuth_ExemptPaths(t *testing.T) {
	h := BearerAuthMiddleware([]string{"secret"})(okHandler())

	for _, path := range []string{"/health", "/metrics"} {
		if rec := authGet(t, h, path, ""); rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want exempt", path, rec.Code)
		}
	}
}
