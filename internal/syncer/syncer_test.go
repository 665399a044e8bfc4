package syncer

import (
	"context"
	"testing"
	"time"

	"github.com/ntuan2502/gold-tracker/internal/quote"
)

type stubQuerier struct {
	reqs  chan quote.GetQuotesRequest
	reply *quote.Result
}

func (s *stubQuerier) GetQuotes(_ context.Context, req quote.GetQuotesRequest) (*quote.Result, error) {
	s.reqs <- req
	return s.reply, nil
}

func TestSyncOnce_TrailingWindow(t *testing.T) {
	q := &stubQuerier{
		reqs:  make(chan quote.GetQuotesRequest, 1),
		reply: &quote.Result{Outcome: quote.OutcomeCached},
	}

	s := New(q, time.Hour, 7, time.UTC)
	s.now = func() time.Time { return time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC) }

	s.syncOnce(context.Background())

	req := <-q.reqs
	if req.FromDate != "04/01/2026" {
		t.Errorf("expected fromDate 04/01/2026, got %s", req.FromDate)
	}
	if req.ToDate != "10/01/2026" {
		t.Errorf("expected toDate 10/01/2026, got %s", req.ToDate)
	}
}

func TestNew_Defaults(t *testing.T) {
	q := &stubQuerier{reqs: make(chan quote.GetQuotesRequest, 1)}

	// A zero interval would make Run's ticker panic at startup.
	s := New(q, 0, 0, nil)
	if s.interval != time.Hour {
		t.Errorf("expected interval default of 1h, got %s", s.interval)
	}
	if s.window != 7 {
		t.Errorf("expected window default of 7, got %d", s.window)
	}
	if s.loc == nil {
		t.Error("expected a location default")
	}
}

func TestRun_SyncsOnStartAndNotify(t *testing.T) {
	q := &stubQuerier{
		reqs:  make(chan quote.GetQuotesRequest, 4),
		reply: &quote.Result{Outcome: quote.OutcomeFresh},
	}

	s := New(q, time.Hour, 7, time.UTC)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// One sync on start.
	select {
	case <-q.reqs:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial sync")
	}

	// Notify triggers another without waiting for the ticker.
	s.Notify()
	select {
	case <-q.reqs:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notified sync")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}
}
