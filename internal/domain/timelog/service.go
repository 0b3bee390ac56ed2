package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ganot/daylog/internal/repository"
)

// Service implements the remote store operations over its repositories.
type Service struct {
	configs ConfigRepository
	logs    LogRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new timelog service.
func NewService(configs ConfigRepository, logs LogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		configs: configs,
		logs:    logs,
		logger:  logger,
		now:     time.Now,
	}
}

// GetConfig returns the stored configuration document.
func (s *Service) GetConfig(ctx context.Context) (*ConfigDocument, error) {
	doc, err := s.configs.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("getting config: %w", err)
	}
	return doc, nil
}

// SetConfig replaces the stored category list.
func (s *Service) SetConfig(ctx context.Context, categories []string) (*ConfigDocument, error) {
	if categories == nil {
		return nil, ErrInvalidInput
	}
	doc := &ConfigDocument{
		Categories: cloneStrings(categories),
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.configs.Upsert(ctx, doc); err != nil {
		return nil, fmt.Errorf("setting config: %w", err)
	}
	s.logger.Debug("config stored", "categories", len(doc.Categories))
	return doc, nil
}

// ListLogs returns stored logs ascending by date.
func (s *Service) ListLogs(ctx context.Context, opts ListLogsOptions) ([]LogDocument, error) {
	if err := ValidateListOptions(opts); err != nil {
		return nil, err
	}
	docs, err := s.logs.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	if docs == nil {
		docs = []LogDocument{}
	}
	return docs, nil
}

// UpsertEntry stores entry, replacing whatever was stored for its date.
func (s *Service) UpsertEntry(ctx context.Context, entry LogEntry) (*LogDocument, error) {
	if err := ValidateLogEntry(entry); err != nil {
		return nil, err
	}
	doc := &LogDocument{
		Date:      entry.Date,
		Entries:   cloneEntries(entry.Entries),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.logs.Upsert(ctx, doc); err != nil {
		return nil, fmt.Errorf("upserting log %s: %w", entry.Date, err)
	}
	s.logger.Debug("log stored", "date", doc.Date, "entries", len(doc.Entries))
	return doc, nil
}

// Summary aggregates the logs within opts.
func (s *Service) Summary(ctx context.Context, opts ListLogsOptions) (*Summary, error) {
	docs, err := s.ListLogs(ctx, opts)
	if err != nil {
		return nil, err
	}
	logs := make([]LogEntry, len(docs))
	for i, d := range docs {
		logs[i] = d.LogEntry()
	}
	summary := Summarize(logs)
	return &summary, nil
}
