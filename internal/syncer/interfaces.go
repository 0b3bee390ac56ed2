package syncer

import (
	"context"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// Remote is the remote store adapter.
type Remote interface {
	FetchConfig(ctx context.Context) (timelog.Configuration, error)
	PushConfig(ctx context.Context, categories []string) error
	FetchLogs(ctx context.Context) ([]timelog.LogEntry, error)
	PushEntry(ctx context.Context, entry timelog.LogEntry) error
}

// LocalStore is the client-side persistence for both documents.
type LocalStore interface {
	LoadConfig() timelog.Configuration
	SaveConfig(cfg timelog.Configuration) error
	LoadLogs() []timelog.LogEntry
	SaveLogs(logs []timelog.LogEntry) error
}

// View receives copies of state whenever it changes. Calls are made without
// the orchestrator's lock held.
type View interface {
	RenderConfig(cfg timelog.Configuration)
	RenderLogs(logs []timelog.LogEntry)
	RenderStatus(status Status)
}

// NopView discards every render.
type NopView struct{}

func (NopView) RenderConfig(timelog.Configuration) {}
func (NopView) RenderLogs([]timelog.LogEntry)      {}
func (NopView) RenderStatus(Status)                {}
