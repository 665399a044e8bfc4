package provider

import (
	"context"
	"time"
)

// Quote is the raw, not-yet-persisted shape returned by remote quotation
// providers.
type Quote struct {
	Date time.Time
	Type string
	Buy  float64
	Sell float64
}

type Provider interface {
	Name() string
	// Fetch returns every quotation the provider has inside [from, to].
	// A failure means the whole range failed; partial results are never
	// returned alongside an error.
	Fetch(ctx context.Context, from, to time.Time) ([]Quote, error)
}
