package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

const schema = `
-- Category configuration, a single document
CREATE TABLE IF NOT EXISTS config_documents (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    categories TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- One log document per calendar date
CREATE TABLE IF NOT EXISTS log_documents (
    date TEXT PRIMARY KEY,
    entries TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

// RunMigrations creates the document tables if they are missing.
func (db *DB) RunMigrations() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
