package chi

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in error response bodies.
const (
	codeBadRequest     = "bad_request"
	codeBadGeo         = "bad_geo"
	codeMarketNotFound = "market_not_found"
	codeInternalError  = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
