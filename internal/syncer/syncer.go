package syncer

import (
	"context"
	"log/slog"
	"time"

	"github.com/ntuan2502/gold-tracker/internal/quote"
)

// Querier runs one cache reconciliation for a date range.
type Querier interface {
	GetQuotes(ctx context.Context, req quote.GetQuotesRequest) (*quote.Result, error)
}

// Syncer keeps the quote cache warm for a trailing window of days by
// running the reconciliation flow on an interval, so interactive queries
// for recent dates usually hit cache.
type Syncer struct {
	svc      Querier
	interval time.Duration
	window   int
	loc      *time.Location
	notify   chan struct{}
	now      func() time.Time
}

func New(svc Querier, interval time.Duration, windowDays int, loc *time.Location) *Syncer {
	if interval <= 0 {
		interval = time.Hour
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	if loc == nil {
		loc = time.Local
	}
	return &Syncer{
		svc:      svc,
		interval: interval,
		window:   windowDays,
		loc:      loc,
		notify:   make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Notify wakes the syncer ahead of its next tick. Non-blocking.
func (s *Syncer) Notify() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Run syncs once immediately, then on every tick or notify, until ctx is
// cancelled.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.syncOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-s.notify:
		case <-ticker.C:
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	today := s.now().In(s.loc)
	req := quote.GetQuotesRequest{
		FromDate: today.AddDate(0, 0, -(s.window - 1)).Format(quote.InputDateLayout),
		ToDate:   today.Format(quote.InputDateLayout),
	}

	result, err := s.svc.GetQuotes(ctx, req)
	if err != nil {
		slog.Error("syncer: refresh failed", "error", err)
		return
	}
	slog.Info("syncer: cache refreshed",
		"outcome", result.Outcome, "count", len(result.Quotes),
		"from", req.FromDate, "to", req.ToDate)
}
