package integration_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganot/daylog/internal/domain/timelog"
	"github.com/ganot/daylog/internal/localstore"
	"github.com/ganot/daylog/internal/remote"
	"github.com/ganot/daylog/internal/syncer"
	"github.com/ganot/daylog/internal/testserver"
)

type client struct {
	dir   string
	store *localstore.Store
	sync  *syncer.Orchestrator
}

func newClient(t *testing.T, baseURL string) *client {
	t.Helper()
	dir := t.TempDir()
	store := localstore.New(localstore.NewFileBackend(dir), nil)
	return &client{
		dir:   dir,
		store: store,
		sync:  syncer.New(store, remote.NewClient(baseURL)),
	}
}

func TestPushedConfigIsFetchedBack(t *testing.T) {
	ts := testserver.New(t)
	c := newClient(t, ts.URL())
	ctx := context.Background()

	require.NoError(t, c.sync.SetCategories(ctx, []string{"A", "B"}))
	c.sync.Wait()

	fetched, err := remote.NewClient(ts.URL()).FetchConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, fetched.Categories)
}

func TestSecondClientReconcilesFirstClientsWrites(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()

	first := newClient(t, ts.URL())
	first.sync.Start(ctx)
	first.sync.Wait()
	require.NoError(t, first.sync.SetCategories(ctx, []string{"Work", "Music"}))
	require.NoError(t, first.sync.SubmitDay(ctx, "2024-01-02", []timelog.Entry{{Label: "Music", Hours: 1}}))
	require.NoError(t, first.sync.SubmitDay(ctx, "2024-01-01", []timelog.Entry{{Label: "Work", Hours: 8}}))
	require.NoError(t, first.sync.SubmitDay(ctx, "2024-01-02", []timelog.Entry{{Label: "Work", Hours: 2}}))
	first.sync.Wait()
	assert.Equal(t, syncer.StatusSynced, first.sync.Status())

	second := newClient(t, ts.URL())
	second.sync.Start(ctx)
	second.sync.Wait()

	state := second.sync.Snapshot()
	assert.Equal(t, syncer.StatusSynced, state.Status)
	assert.Equal(t, []string{"Work", "Music"}, state.Config.Categories)
	assert.Equal(t, []timelog.LogEntry{
		{Date: "2024-01-01", Entries: []timelog.Entry{{Label: "Work", Hours: 8}}},
		{Date: "2024-01-02", Entries: []timelog.Entry{{Label: "Work", Hours: 2}}},
	}, state.Logs)

	// Fetched documents are written through to disk.
	assert.FileExists(t, filepath.Join(second.dir, "config.json"))
	assert.FileExists(t, filepath.Join(second.dir, "timeLog.json"))
	assert.Equal(t, state.Logs, second.store.LoadLogs())
}

func TestEmptyServerKeepsLocalConfig(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()
	c := newClient(t, ts.URL())
	require.NoError(t, c.store.SaveConfig(timelog.Configuration{Categories: []string{"Mine"}}))

	c.sync.Load()
	c.sync.Reconcile(ctx)

	assert.Equal(t, []string{"Mine"}, c.sync.Snapshot().Config.Categories)
}

func TestUnreachableServerDegradesToOffline(t *testing.T) {
	dead := httptest.NewServer(nil)
	dead.Close()
	ctx := context.Background()

	c := newClient(t, dead.URL)
	require.NoError(t, c.store.SaveLogs([]timelog.LogEntry{
		{Date: "2024-01-01", Entries: []timelog.Entry{{Label: "TV", Hours: 1}}},
	}))

	c.sync.Start(ctx)
	c.sync.Wait()
	assert.Equal(t, syncer.StatusOffline, c.sync.Status())
	assert.Len(t, c.sync.Snapshot().Logs, 1)

	require.NoError(t, c.sync.SubmitDay(ctx, "2024-01-02", []timelog.Entry{{Label: "TV", Hours: 2}}))
	c.sync.Wait()
	assert.Equal(t, syncer.StatusOffline, c.sync.Status())
	assert.Len(t, c.store.LoadLogs(), 2)
}

func TestCorruptLocalDocumentsFallBackToDefaults(t *testing.T) {
	ts := testserver.New(t)
	c := newClient(t, ts.URL())
	require.NoError(t, os.WriteFile(filepath.Join(c.dir, "config.json"), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(c.dir, "timeLog.json"), []byte(`{"date":"x"}`), 0o600))

	c.sync.Load()
	state := c.sync.Snapshot()
	assert.Equal(t, timelog.DefaultCategories(), state.Config.Categories)
	assert.Empty(t, state.Logs)
}

func TestServerSummaryMatchesSubmittedDays(t *testing.T) {
	ts := testserver.New(t)
	ctx := context.Background()
	c := newClient(t, ts.URL())

	require.NoError(t, c.sync.SubmitDay(ctx, "2024-01-01", []timelog.Entry{{Label: "A", Hours: 0.1}, {Label: "B", Hours: 0.2}}))
	require.NoError(t, c.sync.SubmitDay(ctx, "2024-01-02", []timelog.Entry{{Label: "B", Hours: 1}}))
	c.sync.Wait()

	summary, err := ts.Service.Summary(ctx, timelog.ListLogsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1.3, summary.Total)
	assert.Equal(t, []timelog.DayTotal{{Date: "2024-01-01", Total: 0.3}, {Date: "2024-01-02", Total: 1}}, summary.Days)
}
