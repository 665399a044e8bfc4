package server

import (
	"net/http"

	"github.com/ntuan2502/gold-tracker/internal/quote"
)

// NewHandler builds the full HTTP handler with routes and middleware.
// Exported for tests (httptest.NewServer).
func NewHandler(quoteSvc *quote.Service) http.Handler {
	return newMux(quoteSvc)
}

func newMux(quoteSvc *quote.Service) http.Handler {
	h := &handler{quoteSvc: quoteSvc}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/v1/quotes", h.getQuotes)
	mux.HandleFunc("GET /api/v1/status", h.status)

	// Middleware stack: recovery -> requestID -> logging
	var handler http.Handler = mux
	handler = logging(handler)
	handler = requestID(handler)
	handler = recovery(handler)

	return handler
}
