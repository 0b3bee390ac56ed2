// Package localstore persists the client's configuration and log collection.
package localstore

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// Document keys.
const (
	ConfigKey = "config"
	LogsKey   = "timeLog"
)

// Store reads and writes the two client documents. Loads never fail: missing
// or corrupt data yields the defaults.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// New creates a store over backend.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, logger: logger}
}

type storedConfig struct {
	Categories *[]string `json:"categories"`
}

// LoadConfig returns the persisted configuration, or the default one.
func (s *Store) LoadConfig() timelog.Configuration {
	data, ok := s.read(ConfigKey)
	if !ok {
		return timelog.DefaultConfiguration()
	}
	var stored storedConfig
	if err := json.Unmarshal(data, &stored); err != nil || stored.Categories == nil {
		s.logger.Warn("discarding corrupt local document", "key", ConfigKey, "error", err)
		return timelog.DefaultConfiguration()
	}
	return timelog.Configuration{Categories: *stored.Categories}
}

// SaveConfig overwrites the persisted configuration.
func (s *Store) SaveConfig(cfg timelog.Configuration) error {
	categories := cfg.Categories
	if categories == nil {
		categories = []string{}
	}
	return s.write(ConfigKey, timelog.Configuration{Categories: categories})
}

// LoadLogs returns the persisted log collection sorted by date, or an empty one.
func (s *Store) LoadLogs() []timelog.LogEntry {
	data, ok := s.read(LogsKey)
	if !ok {
		return []timelog.LogEntry{}
	}
	var logs []timelog.LogEntry
	if err := json.Unmarshal(data, &logs); err != nil {
		s.logger.Warn("discarding corrupt local document", "key", LogsKey, "error", err)
		return []timelog.LogEntry{}
	}
	return normalizeLogs(logs)
}

// SaveLogs overwrites the persisted log collection.
func (s *Store) SaveLogs(logs []timelog.LogEntry) error {
	return s.write(LogsKey, normalizeLogs(timelog.CloneLogs(logs)))
}

func (s *Store) read(key string) ([]byte, bool) {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		s.logger.Warn("local store read failed", "key", key, "error", err)
		return nil, false
	}
	return data, ok
}

func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func normalizeLogs(logs []timelog.LogEntry) []timelog.LogEntry {
	if logs == nil {
		return []timelog.LogEntry{}
	}
	for i := range logs {
		if logs[i].Entries == nil {
			logs[i].Entries = []timelog.Entry{}
		}
	}
	timelog.SortByDate(logs)
	return logs
}
