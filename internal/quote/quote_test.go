package quote

import (
	"testing"
	"time"
)

func TestSuspect(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		quotes []Quote
		want   bool
	}{
		{
			name: "all valid",
			quotes: []Quote{
				{Type: SeriesSJC, Date: date, Buy: 91_500_000, Sell: 92_100_000},
				{Type: SeriesSJC, Date: date.AddDate(0, 0, 1), Buy: 91_800_000, Sell: 92_400_000},
			},
			want: false,
		},
		{
			name: "one sell outlier vetoes the series",
			quotes: []Quote{
				{Type: SeriesSJC, Date: date, Buy: 91_500_000, Sell: 92_100_000},
				{Type: SeriesSJC, Date: date.AddDate(0, 0, 1), Buy: 91_800_000, Sell: 520_000_000},
			},
			want: true,
		},
		{
			name: "buy outlier alone is enough",
			quotes: []Quote{
				{Type: SeriesRing, Date: date, Buy: 275_000_000, Sell: 92_100_000},
			},
			want: true,
		},
		{
			name: "exactly the threshold is still valid",
			quotes: []Quote{
				{Type: SeriesSJC, Date: date, Buy: MaxValidGoldPrice, Sell: MaxValidGoldPrice},
			},
			want: false,
		},
		{
			name:   "empty series",
			quotes: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suspect(tt.quotes); got != tt.want {
				t.Errorf("Suspect() = %v, want %v", got, tt.want)
			}
		})
	}
}
