package quote

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ntuan2502/gold-tracker/internal/apperror"
	"github.com/ntuan2502/gold-tracker/internal/provider"
)

// flowState is one step of the read-validate-refill-write reconciliation.
// The "discard suspect cache and refill" path is a first-class transition,
// not an implicit fallthrough.
type flowState int

const (
	stateReading flowState = iota
	stateValidating
	stateRefilling
	stateWriting
	stateServingCached
	stateServingFresh
	stateFailed
)

type Service struct {
	repo     Repository
	provider provider.Provider
	loc      *time.Location
	inFlight atomic.Int32
}

type ServiceOption func(*Service)

// WithLocation sets the calendar-day timezone used to interpret dd/MM/yyyy
// range bounds.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *Service) { s.loc = loc }
}

func NewService(repo Repository, p provider.Provider, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		provider: p,
		loc:      time.Local,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Busy reports whether any reconciliation is in flight. Independent
// invocations may overlap; there is no cross-invocation mutual exclusion.
func (s *Service) Busy() bool {
	return s.inFlight.Load() > 0
}

// GetQuotes runs the reconciliation flow for one date range. Malformed
// dates are the only errors returned; every I/O failure is logged and
// folded into the Result's Outcome so the caller's previous result stays
// untouched.
func (s *Service) GetQuotes(ctx context.Context, req GetQuotesRequest) (*Result, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}
	from, to, err := ParseRange(req.FromDate, req.ToDate, s.loc)
	if err != nil {
		return nil, apperror.New(apperror.BadRequest, err.Error())
	}

	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	return s.reconcile(ctx, from, to), nil
}

func (s *Service) reconcile(ctx context.Context, from, to time.Time) *Result {
	var (
		cached []Quote
		fresh  []Quote
		result *Result
	)

	st := stateReading
	for {
		switch st {
		case stateReading:
			var err error
			cached, err = s.repo.ListRange(ctx, from, to)
			if err != nil {
				slog.Error("quote cache read failed", "error", err)
				st = stateFailed
				continue
			}
			st = stateValidating

		case stateValidating:
			switch {
			case len(cached) == 0:
				st = stateRefilling
			case Suspect(cached):
				slog.Warn("cached quotes exceed price threshold, refilling",
					"count", len(cached), "threshold", int64(MaxValidGoldPrice))
				st = stateRefilling
			default:
				st = stateServingCached
			}

		case stateRefilling:
			raw, err := s.provider.Fetch(ctx, from, to)
			if err != nil {
				slog.Error("quote refill failed", "provider", s.provider.Name(), "error", err)
				st = stateFailed
				continue
			}
			fresh = make([]Quote, 0, len(raw))
			for _, rq := range raw {
				fresh = append(fresh, Quote{
					Type: SeriesType(rq.Type),
					Date: rq.Date,
					Buy:  rq.Buy,
					Sell: rq.Sell,
				})
			}
			// The fresh series is the result from here on, whatever happens
			// to the write below.
			result = &Result{Quotes: fresh, Outcome: OutcomeFresh}
			if len(fresh) == 0 {
				st = stateServingFresh
				continue
			}
			st = stateWriting

		case stateWriting:
			n, err := s.repo.SaveBatch(ctx, fresh, s.provider.Name())
			if err != nil {
				slog.Error("quote batch write failed", "provider", s.provider.Name(), "error", err)
			} else {
				slog.Info("persisted quotes", "count", n, "provider", s.provider.Name())
				result.Persisted = true
			}
			st = stateServingFresh

		case stateServingCached:
			return &Result{Quotes: cached, Outcome: OutcomeCached}

		case stateServingFresh:
			return result

		case stateFailed:
			return &Result{Outcome: OutcomeFailed}
		}
	}
}
