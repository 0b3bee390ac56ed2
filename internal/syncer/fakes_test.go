package syncer

import (
	"context"
	"errors"
	"sync"

	"github.com/ganot/daylog/internal/domain/timelog"
)

var errNetwork = errors.New("network down")

type fakeRemote struct {
	mu sync.Mutex

	config    timelog.Configuration
	configErr error
	logs      []timelog.LogEntry
	logsErr   error
	pushErr   error

	calls         []string
	pushedConfigs [][]string
	pushedEntries []timelog.LogEntry

	// When set, the fetch signals started and waits for release.
	configStarted, configRelease chan struct{}
	logsStarted, logsRelease     chan struct{}
	// When set, the first push waits for it to close.
	firstPushRelease chan struct{}
	pushes           int
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeRemote) FetchConfig(context.Context) (timelog.Configuration, error) {
	f.record("FetchConfig")
	// The response reflects the store when the request arrived.
	f.mu.Lock()
	cfg, err := f.config.Clone(), f.configErr
	f.mu.Unlock()
	if f.configStarted != nil {
		close(f.configStarted)
		<-f.configRelease
	}
	if err != nil {
		return timelog.Configuration{}, err
	}
	return cfg, nil
}

func (f *fakeRemote) FetchLogs(context.Context) ([]timelog.LogEntry, error) {
	f.record("FetchLogs")
	f.mu.Lock()
	logs, err := timelog.CloneLogs(f.logs), f.logsErr
	f.mu.Unlock()
	if f.logsStarted != nil {
		close(f.logsStarted)
		<-f.logsRelease
	}
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (f *fakeRemote) waitFirstPush() {
	f.mu.Lock()
	f.pushes++
	first := f.pushes == 1
	release := f.firstPushRelease
	f.mu.Unlock()
	if first && release != nil {
		<-release
	}
}

func (f *fakeRemote) PushConfig(_ context.Context, categories []string) error {
	f.record("PushConfig")
	f.waitFirstPush()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushedConfigs = append(f.pushedConfigs, append([]string(nil), categories...))
	f.config = timelog.Configuration{Categories: categories}.Clone()
	return nil
}

func (f *fakeRemote) PushEntry(_ context.Context, entry timelog.LogEntry) error {
	f.record("PushEntry")
	f.waitFirstPush()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushedEntries = append(f.pushedEntries, entry.Clone())
	f.logs = timelog.Upsert(f.logs, entry.Clone())
	return nil
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type recordingView struct {
	mu       sync.Mutex
	configs  []timelog.Configuration
	logs     [][]timelog.LogEntry
	statuses []Status
}

func (v *recordingView) RenderConfig(cfg timelog.Configuration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.configs = append(v.configs, cfg)
}

func (v *recordingView) RenderLogs(logs []timelog.LogEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.logs = append(v.logs, logs)
}

func (v *recordingView) RenderStatus(s Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statuses = append(v.statuses, s)
}

func (v *recordingView) Statuses() []Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Status(nil), v.statuses...)
}

// failingStore wraps a LocalStore and fails selected writes.
type failingStore struct {
	LocalStore
	failConfig bool
	failLogs   bool
}

func (s failingStore) SaveConfig(cfg timelog.Configuration) error {
	if s.failConfig {
		return errors.New("disk full")
	}
	return s.LocalStore.SaveConfig(cfg)
}

func (s failingStore) SaveLogs(logs []timelog.LogEntry) error {
	if s.failLogs {
		return errors.New("disk full")
	}
	return s.LocalStore.SaveLogs(logs)
}
