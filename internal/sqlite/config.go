package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/daylog/internal/domain/timelog"
	"github.com/ganot/daylog/internal/repository"
)

// ConfigRepository implements timelog.ConfigRepository for SQLite
type ConfigRepository struct {
	db *DB
}

// NewConfigRepository creates a new ConfigRepository
func NewConfigRepository(db *DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get retrieves the configuration document
func (r *ConfigRepository) Get(ctx context.Context) (*timelog.ConfigDocument, error) {
	query := `
		SELECT categories, updated_at
		FROM config_documents
		WHERE id = 1
	`

	var (
		raw string
		doc timelog.ConfigDocument
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&raw, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	if err := decodeJSON(raw, &doc.Categories); err != nil {
		return nil, err
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}

	return &doc, nil
}

// Upsert replaces the configuration document, creating it if needed
func (r *ConfigRepository) Upsert(ctx context.Context, doc *timelog.ConfigDocument) error {
	categories := doc.Categories
	if categories == nil {
		categories = []string{}
	}
	raw, err := encodeJSON(categories)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO config_documents (id, categories, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			categories = excluded.categories,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, raw, doc.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert config: %w", err)
	}

	return nil
}
