package quote

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "github.com/ntuan2502/gold-tracker/internal/quote"
)

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// SaveBatch commits all quotes in a single transaction. Each record is
// upserted under its deterministic document ID and stamped with the
// provenance tag and a shared sync timestamp, so re-running the same refill
// overwrites documents instead of duplicating them.
func (r *Repository) SaveBatch(ctx context.Context, quotes []domain.Quote, provenance string) (int64, error) {
	if len(quotes) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `INSERT INTO quotes (doc_id, type, date, buy, sell, provider, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_id) DO UPDATE SET
			buy = excluded.buy,
			sell = excluded.sell,
			provider = excluded.provider,
			synced_at = excluded.synced_at`

	prep, err := tx.PrepareContext(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer func() { _ = prep.Close() }()

	syncedAt := domain.FormatISO(r.now())

	var total int64
	for _, q := range quotes {
		docID := domain.DocumentID(q.Type, q.Date)
		if _, err := prep.ExecContext(ctx, docID, string(q.Type), domain.FormatISO(q.Date),
			q.Buy, q.Sell, provenance, syncedAt); err != nil {
			return 0, fmt.Errorf("upsert quote %s: %w", docID, err)
		}
		total++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}
	return total, nil
}

// ListRange executes the inclusive date range query. Dates are stored as
// ISO-8601 strings, so the string comparison below is a chronological one.
func (r *Repository) ListRange(ctx context.Context, from, to time.Time) ([]domain.Quote, error) {
	const query = `SELECT doc_id, type, date, buy, sell, provider, synced_at
		FROM quotes
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query, domain.FormatISO(from), domain.FormatISO(to))
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var quotes []domain.Quote
	for rows.Next() {
		var q domain.Quote
		var typ, dateStr, syncedStr string
		if err := rows.Scan(&q.DocID, &typ, &dateStr, &q.Buy, &q.Sell, &q.Provider, &syncedStr); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		q.Type = domain.SeriesType(typ)
		if q.Date, err = domain.ParseISO(dateStr); err != nil {
			return nil, fmt.Errorf("parse date for %s: %w", q.DocID, err)
		}
		if q.SyncedAt, err = domain.ParseISO(syncedStr); err != nil {
			return nil, fmt.Errorf("parse synced_at for %s: %w", q.DocID, err)
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}
