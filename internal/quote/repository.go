package quote

import (
	"context"
	"time"
)

type Repository interface {
	// ListRange returns quotes with date inside [from, to], ascending by
	// date. An empty result is a valid, non-error outcome.
	ListRange(ctx context.Context, from, to time.Time) ([]Quote, error)
	// SaveBatch upserts quotes as one atomic batch keyed by their document
	// IDs, stamping each record with the provenance tag and a sync
	// timestamp. Either all records are written or none are.
	SaveBatch(ctx context.Context, quotes []Quote, provenance string) (int64, error)
}
