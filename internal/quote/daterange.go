package quote

import (
	"fmt"
	"time"
)

const (
	// InputDateLayout is the caller-facing calendar date format.
	InputDateLayout = "02/01/2006"
	// ISOLayout renders timestamps as ISO-8601 strings. String comparison of
	// two rendered values equals chronological comparison, which is what the
	// store's range predicate relies on.
	ISOLayout = "2006-01-02T15:04:05"

	docIDLayout = "20060102_150405"
)

// ParseRange converts dd/MM/yyyy bounds into the inclusive interval
// [fromDate 00:00:00, toDate 23:59:59] in loc. Malformed input or an
// inverted range is an error, surfaced before any I/O happens.
func ParseRange(fromDate, toDate string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(InputDateLayout, fromDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse fromDate %q: %w", fromDate, err)
	}
	to, err := time.ParseInLocation(InputDateLayout, toDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse toDate %q: %w", toDate, err)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("fromDate %s is after toDate %s", fromDate, toDate)
	}
	to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return from, to, nil
}

// DocumentID computes the deterministic document key for a record, so
// re-writing the same logical quote overwrites instead of duplicating.
func DocumentID(typ SeriesType, date time.Time) string {
	return fmt.Sprintf("%s_%s", typ, date.Format(docIDLayout))
}

// FormatISO renders a timestamp for storage and range predicates.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO reads back a stored timestamp.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}
