package giavang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ntuan2502/gold-tracker/internal/provider"
)

const (
	defaultEndpoint = "https://api.giavang.org/v1/gold/formatted"
	queryDateLayout = "02/01/2006"
	chunkDays       = 90
)

// payload date formats, most specific first. The provider renders dates as
// ISO-8601; some series omit the time component.
var payloadDateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02"}

// HTTPClient describes the HTTP client used to reach the provider.
//
//go:generate mockgen -package=giavang_test -destination=mock_http_client_test.go -source=giavang.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type quotePayload struct {
	Date string  `json:"date"`
	Type string  `json:"type"`
	Buy  float64 `json:"buy"`
	Sell float64 `json:"sell"`
}

type envelope struct {
	Success bool           `json:"success"`
	Data    []quotePayload `json:"data"`
}

// Client fetches formatted gold quotations over HTTP.
type Client struct {
	workers  int
	client   HTTPClient
	endpoint string
}

func New(opts ...Option) *Client {
	c := &Client{
		workers:  3,
		client:   http.DefaultClient,
		endpoint: defaultEndpoint,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type Option func(*Client)

func WithWorkers(n int) Option {
	return func(c *Client) { c.workers = n }
}

func WithClient(hc HTTPClient) Option {
	return func(c *Client) { c.client = hc }
}

func WithEndpoint(ep string) Option {
	return func(c *Client) { c.endpoint = ep }
}

func (c *Client) Name() string { return "giavang" }

// Fetch retrieves all quotations in [from, to]. Long ranges are split into
// chunks fetched concurrently; a single failed chunk fails the whole call so
// the caller never sees a partially refilled range.
func (c *Client) Fetch(ctx context.Context, from, to time.Time) ([]provider.Quote, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("date range cannot be empty")
	}
	if from.After(to) {
		return nil, fmt.Errorf("fromDate cannot be after toDate")
	}

	chunks := provider.SplitDateRange(from, to, chunkDays)
	results := make([][]provider.Quote, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, ch := range chunks {
		g.Go(func() error {
			quotes, err := c.fetchChunk(ctx, ch.From, ch.To)
			if err != nil {
				return fmt.Errorf("fetch %s to %s: %w",
					ch.From.Format(queryDateLayout), ch.To.Format(queryDateLayout), err)
			}
			results[i] = quotes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []provider.Quote
	for _, r := range results {
		all = append(all, r...)
	}

	slog.Info("retrieved giavang quotes",
		"from", from.Format(queryDateLayout), "to", to.Format(queryDateLayout),
		"count", len(all))

	return all, nil
}

func (c *Client) fetchChunk(ctx context.Context, from, to time.Time) ([]provider.Quote, error) {
	params := url.Values{}
	params.Set("fromDate", from.Format(queryDateLayout))
	params.Set("toDate", to.Format(queryDateLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("giavang returned HTTP %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse giavang response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("giavang reported failure")
	}
	// A null or missing data field is a malformed envelope. An empty array
	// decodes to a non-nil slice and means zero records, which is fine.
	if env.Data == nil {
		return nil, fmt.Errorf("giavang response has no data array")
	}

	quotes := make([]provider.Quote, 0, len(env.Data))
	for _, d := range env.Data {
		date, ok := parseDate(d.Date)
		if !ok || d.Buy < 0 || d.Sell < 0 {
			continue
		}
		quotes = append(quotes, provider.Quote{
			Date: date,
			Type: d.Type,
			Buy:  d.Buy,
			Sell: d.Sell,
		})
	}
	return quotes, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range payloadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
