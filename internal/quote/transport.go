package quote

import (
	"github.com/ntuan2502/gold-tracker/internal/apperror"
)

type GetQuotesRequest struct {
	FromDate string
	ToDate   string
}

func (r GetQuotesRequest) Validate() *apperror.AppError {
	if r.FromDate == "" {
		return apperror.New(apperror.BadRequest, "fromDate is required")
	}
	if r.ToDate == "" {
		return apperror.New(apperror.BadRequest, "toDate is required")
	}
	return nil
}

// Outcome tells the caller which source of truth produced the result.
type Outcome string

const (
	// OutcomeCached: the cached series passed validation; no remote call was made.
	OutcomeCached Outcome = "cached"
	// OutcomeFresh: the series came from the remote provider.
	OutcomeFresh Outcome = "fresh"
	// OutcomeFailed: the flow could not produce a series; the caller keeps
	// whatever result it had before.
	OutcomeFailed Outcome = "failed"
)

type Result struct {
	Quotes  []Quote `json:"quotes"`
	Outcome Outcome `json:"outcome"`
	// Persisted is true when a refilled series was durably written back to
	// the cache. A fresh result with Persisted=false was served anyway;
	// read latency never waits on write durability being achieved.
	Persisted bool `json:"persisted"`
}
