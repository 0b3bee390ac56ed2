package timelog

import "context"

// ConfigRepository persists the single configuration document.
type ConfigRepository interface {
	Get(ctx context.Context) (*ConfigDocument, error)
	Upsert(ctx context.Context, doc *ConfigDocument) error
}

// LogRepository persists log documents keyed by date.
type LogRepository interface {
	List(ctx context.Context, opts ListLogsOptions) ([]LogDocument, error)
	Upsert(ctx context.Context, doc *LogDocument) error
}
