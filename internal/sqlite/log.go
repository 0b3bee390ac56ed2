package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// LogRepository implements timelog.LogRepository for SQLite
type LogRepository struct {
	db *DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *DB) *LogRepository {
	return &LogRepository{db: db}
}

// List returns log documents ordered by date ascending
func (r *LogRepository) List(ctx context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error) {
	var (
		where []string
		args  []any
	)
	if opts.From != "" {
		where = append(where, "date >= ?")
		args = append(args, opts.From)
	}
	if opts.To != "" {
		where = append(where, "date <= ?")
		args = append(args, opts.To)
	}

	query := `SELECT date, entries, updated_at FROM log_documents`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	docs := []timelog.LogDocument{}
	for rows.Next() {
		var (
			doc timelog.LogDocument
			raw string
		)
		if err := rows.Scan(&doc.Date, &raw, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		if err := decodeJSON(raw, &doc.Entries); err != nil {
			return nil, err
		}
		if doc.Entries == nil {
			doc.Entries = []timelog.Entry{}
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", err)
	}

	return docs, nil
}

// Upsert replaces the entries stored for doc.Date, creating the row if needed
func (r *LogRepository) Upsert(ctx context.Context, doc *timelog.LogDocument) error {
	entries := doc.Entries
	if entries == nil {
		entries = []timelog.Entry{}
	}
	raw, err := encodeJSON(entries)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO log_documents (date, entries, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			entries = excluded.entries,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, doc.Date, raw, doc.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert log %s: %w", doc.Date, err)
	}

	return nil
}
