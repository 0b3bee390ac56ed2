// Package syncer keeps the local store authoritative for the session while
// reconciling it with the remote store on a best-effort basis.
//
// Reads render from the local store first. Reconcile then fetches the remote
// configuration followed by the remote logs and overwrites the local copies,
// except for entities the user touched after the fetch began. Mutations are
// written locally before they return and pushed to the remote store by
// detached tasks that run in submission order.
package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/daylog/internal/domain/timelog"
)

// State is a copy of the orchestrator's application state.
type State struct {
	Config timelog.Configuration
	Logs   []timelog.LogEntry
	Status Status
}

// Orchestrator owns the session state and sequences local writes with
// remote reconciliation.
type Orchestrator struct {
	local  LocalStore
	remote Remote
	view   View
	logger *slog.Logger

	mu     sync.Mutex
	config timelog.Configuration
	logs   []timelog.LogEntry
	status Status

	// gen counts local mutations. configGen and dateGen record the
	// generation of the latest mutation to each entity.
	gen       uint64
	configGen uint64
	dateGen   map[string]uint64

	// renderMu orders status renders the same as status writes.
	renderMu sync.Mutex

	// lastPush is closed when the most recently queued push finishes.
	lastPush chan struct{}
	tasks    sync.WaitGroup
}

// New creates an orchestrator. Call Load or Start before reading state.
func New(local LocalStore, remote Remote, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		local:   local,
		remote:  remote,
		view:    NopView{},
		logger:  slog.New(slog.DiscardHandler),
		config:  timelog.DefaultConfiguration(),
		logs:    []timelog.LogEntry{},
		status:  StatusOffline,
		dateGen: map[string]uint64{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start renders from the local store and reconciles in the background.
func (o *Orchestrator) Start(ctx context.Context) {
	o.Load()
	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		o.Reconcile(ctx)
	}()
}

// Load replaces the in-memory state with the local store's documents and
// renders them.
func (o *Orchestrator) Load() {
	cfg := o.local.LoadConfig()
	logs := o.local.LoadLogs()

	o.mu.Lock()
	o.config = cfg.Clone()
	o.logs = timelog.CloneLogs(logs)
	o.mu.Unlock()

	o.view.RenderConfig(cfg)
	o.view.RenderLogs(logs)
}

// Reconcile fetches the remote configuration, then the remote logs, folding
// each into local state. Failures only change the status.
func (o *Orchestrator) Reconcile(ctx context.Context) {
	o.reconcileConfig(ctx)
	o.reconcileLogs(ctx)
}

func (o *Orchestrator) reconcileConfig(ctx context.Context) {
	since := o.beginRemote()
	cfg, err := o.remote.FetchConfig(ctx)
	if err != nil {
		o.logger.Warn("fetching remote config failed", "error", err)
		o.setStatus(StatusOffline)
		return
	}

	o.mu.Lock()
	if o.configGen > since {
		o.mu.Unlock()
		o.logger.Info("keeping local config edited during fetch")
		o.setStatus(StatusSynced)
		return
	}
	next := cfg.Clone()
	if err := o.local.SaveConfig(next); err != nil {
		o.logger.Warn("saving fetched config locally failed", "error", err)
	}
	o.config = next
	snapshot := next.Clone()
	o.mu.Unlock()

	o.view.RenderConfig(snapshot)
	o.setStatus(StatusSynced)
}

func (o *Orchestrator) reconcileLogs(ctx context.Context) {
	since := o.beginRemote()
	fetched, err := o.remote.FetchLogs(ctx)
	if err != nil {
		o.logger.Warn("fetching remote logs failed", "error", err)
		o.setStatus(StatusOffline)
		return
	}

	o.mu.Lock()
	merged := mergeLogs(fetched, o.logs, o.dateGen, since)
	if err := o.local.SaveLogs(merged); err != nil {
		o.logger.Warn("saving fetched logs locally failed", "error", err)
	}
	o.logs = merged
	snapshot := timelog.CloneLogs(merged)
	o.mu.Unlock()

	o.view.RenderLogs(snapshot)
	o.setStatus(StatusSynced)
}

// mergeLogs takes the remote collection wholesale, keeping the local version
// of any date mutated after generation since.
func mergeLogs(remote, local []timelog.LogEntry, dateGen map[string]uint64, since uint64) []timelog.LogEntry {
	byDate := make(map[string]timelog.LogEntry, len(remote))
	for _, l := range remote {
		byDate[l.Date] = l.Clone()
	}
	for date, g := range dateGen {
		if g <= since {
			continue
		}
		if l, ok := timelog.Find(local, date); ok {
			byDate[date] = l.Clone()
		}
	}
	out := make([]timelog.LogEntry, 0, len(byDate))
	for _, l := range byDate {
		out = append(out, l)
	}
	timelog.SortByDate(out)
	return out
}

// AddCategory appends a category. A blank name is rejected with
// timelog.ErrInvalidInput and nothing is saved.
func (o *Orchestrator) AddCategory(ctx context.Context, name string) error {
	return o.mutateConfig(ctx, func(cfg timelog.Configuration) (timelog.Configuration, error) {
		return timelog.AddCategory(cfg, name)
	})
}

// DeleteCategory removes the category at index.
func (o *Orchestrator) DeleteCategory(ctx context.Context, index int) error {
	return o.mutateConfig(ctx, func(cfg timelog.Configuration) (timelog.Configuration, error) {
		return timelog.RemoveCategory(cfg, index)
	})
}

// RenameCategory relabels the category at index.
func (o *Orchestrator) RenameCategory(ctx context.Context, index int, name string) error {
	return o.mutateConfig(ctx, func(cfg timelog.Configuration) (timelog.Configuration, error) {
		return timelog.RenameCategory(cfg, index, name)
	})
}

// MoveCategory reorders the category at from to position to.
func (o *Orchestrator) MoveCategory(ctx context.Context, from, to int) error {
	return o.mutateConfig(ctx, func(cfg timelog.Configuration) (timelog.Configuration, error) {
		return timelog.MoveCategory(cfg, from, to)
	})
}

// SetCategories replaces the whole category list.
func (o *Orchestrator) SetCategories(ctx context.Context, categories []string) error {
	return o.mutateConfig(ctx, func(timelog.Configuration) (timelog.Configuration, error) {
		if categories == nil {
			return timelog.Configuration{}, timelog.ErrInvalidInput
		}
		return timelog.Configuration{Categories: categories}.Clone(), nil
	})
}

func (o *Orchestrator) mutateConfig(ctx context.Context, apply func(timelog.Configuration) (timelog.Configuration, error)) error {
	o.mu.Lock()
	next, err := apply(o.config.Clone())
	if err != nil {
		o.mu.Unlock()
		return err
	}
	if err := o.local.SaveConfig(next); err != nil {
		o.mu.Unlock()
		return fmt.Errorf("saving config locally: %w", err)
	}
	o.config = next
	o.gen++
	o.configGen = o.gen
	snapshot := next.Clone()
	o.mu.Unlock()

	o.view.RenderConfig(snapshot)
	o.push(ctx, "config", func(ctx context.Context) error {
		return o.remote.PushConfig(ctx, snapshot.Categories)
	})
	return nil
}

// SubmitDay records entries for date, replacing anything logged for that
// date before. Entries with a blank label or non-positive hours are dropped.
func (o *Orchestrator) SubmitDay(ctx context.Context, date string, entries []timelog.Entry) error {
	if err := timelog.ValidateDate(date); err != nil {
		return err
	}
	entry := timelog.LogEntry{Date: date, Entries: timelog.Normalize(entries)}

	o.mu.Lock()
	next := timelog.Upsert(o.logs, entry)
	if err := o.local.SaveLogs(next); err != nil {
		o.mu.Unlock()
		return fmt.Errorf("saving logs locally: %w", err)
	}
	o.logs = next
	o.gen++
	o.dateGen[date] = o.gen
	snapshot := timelog.CloneLogs(next)
	o.mu.Unlock()

	o.view.RenderLogs(snapshot)
	pushed := entry.Clone()
	o.push(ctx, "entry "+date, func(ctx context.Context) error {
		return o.remote.PushEntry(ctx, pushed)
	})
	return nil
}

// push queues a detached remote write. Writes run one at a time in the order
// they were queued and outlive the caller's context cancellation.
func (o *Orchestrator) push(ctx context.Context, what string, send func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	o.mu.Lock()
	prev := o.lastPush
	done := make(chan struct{})
	o.lastPush = done
	o.mu.Unlock()

	o.tasks.Add(1)
	go func() {
		defer o.tasks.Done()
		defer close(done)
		if prev != nil {
			<-prev
		}

		o.setStatus(StatusSyncing)
		if err := send(ctx); err != nil {
			o.logger.Warn("remote push failed", "what", what, "error", err)
			o.setStatus(StatusOffline)
			return
		}
		o.logger.Debug("remote push done", "what", what)
		o.setStatus(StatusSynced)
	}()
}

// Wait blocks until every detached task has finished.
func (o *Orchestrator) Wait() {
	o.tasks.Wait()
}

// Snapshot returns a copy of the current state.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return State{
		Config: o.config.Clone(),
		Logs:   timelog.CloneLogs(o.logs),
		Status: o.status,
	}
}

// Status returns the outcome of the most recent remote operation.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// beginRemote marks a fetch as started and returns the mutation generation
// it started at.
func (o *Orchestrator) beginRemote() uint64 {
	o.mu.Lock()
	since := o.gen
	o.mu.Unlock()
	o.setStatus(StatusSyncing)
	return since
}

func (o *Orchestrator) setStatus(s Status) {
	o.renderMu.Lock()
	defer o.renderMu.Unlock()
	o.mu.Lock()
	o.status = s
	o.mu.Unlock()
	o.view.RenderStatus(s)
}
