package quote

import "time"

// SeriesType identifies a quotation series (product/unit category).
type SeriesType string

const (
	SeriesSJC  SeriesType = "SJC"
	SeriesRing SeriesType = "NHAN"
)

// MaxValidGoldPrice is the upper bound for a plausible VND gold price.
// Prices above it mean the provider reported in the wrong denomination,
// so the whole cached series is discarded, not just the offending record.
const MaxValidGoldPrice = 200_000_000

type Quote struct {
	DocID    string     `json:"docId"`
	Type     SeriesType `json:"type"`
	Date     time.Time  `json:"date"`
	Buy      float64    `json:"buy"`
	Sell     float64    `json:"sell"`
	Provider string     `json:"provider,omitempty"`
	SyncedAt time.Time  `json:"syncedAt,omitempty"`
}

// Suspect reports whether any quote in the series carries a buy or sell
// price above MaxValidGoldPrice. One outlier vetoes the entire series.
func Suspect(quotes []Quote) bool {
	for _, q := range quotes {
		if q.Buy > MaxValidGoldPrice || q.Sell > MaxValidGoldPrice {
			return true
		}
	}
	return false
}
