package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganot/daylog/internal/domain/timelog"
)

type serviceStub struct {
	getConfigFn   func(context.Context) (*timelog.ConfigDocument, error)
	setConfigFn   func(context.Context, []string) (*timelog.ConfigDocument, error)
	listLogsFn    func(context.Context, timelog.ListLogsOptions) ([]timelog.LogDocument, error)
	upsertEntryFn func(context.Context, timelog.LogEntry) (*timelog.LogDocument, error)
	summaryFn     func(context.Context, timelog.ListLogsOptions) (*timelog.Summary, error)
}

func (s serviceStub) GetConfig(ctx context.Context) (*timelog.ConfigDocument, error) {
	return s.getConfigFn(ctx)
}
func (s serviceStub) SetConfig(ctx context.Context, categories []string) (*timelog.ConfigDocument, error) {
	return s.setConfigFn(ctx, categories)
}
func (s serviceStub) ListLogs(ctx context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error) {
	return s.listLogsFn(ctx, opts)
}
func (s serviceStub) UpsertEntry(ctx context.Context, entry timelog.LogEntry) (*timelog.LogDocument, error) {
	return s.upsertEntryFn(ctx, entry)
}
func (s serviceStub) Summary(ctx context.Context, opts timelog.ListLogsOptions) (*timelog.Summary, error) {
	return s.summaryFn(ctx, opts)
}

var stamp = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func TestGetCategories(t *testing.T) {
	h := NewHandler(serviceStub{
		getConfigFn: func(context.Context) (*timelog.ConfigDocument, error) {
			return &timelog.ConfigDocument{Categories: []string{"A", "B"}, UpdatedAt: stamp}, nil
		},
	})

	out, err := h.GetCategories(context.Background(), GetCategoriesParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, out.Categories)
	assert.Equal(t, "2024-03-05T10:00:00Z", out.UpdatedAt)
}

func TestGetCategories_NotStored(t *testing.T) {
	h := NewHandler(serviceStub{
		getConfigFn: func(context.Context) (*timelog.ConfigDocument, error) {
			return nil, timelog.ErrConfigNotFound
		},
	})

	out, err := h.GetCategories(context.Background(), GetCategoriesParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, out.Categories)
}

func TestSetCategories(t *testing.T) {
	var got []string
	h := NewHandler(serviceStub{
		setConfigFn: func(_ context.Context, categories []string) (*timelog.ConfigDocument, error) {
			got = categories
			return &timelog.ConfigDocument{Categories: categories, UpdatedAt: stamp}, nil
		},
	})

	out, err := h.SetCategories(context.Background(), SetCategoriesParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
	assert.Equal(t, []string{}, out.Categories)
}

func TestListLogs(t *testing.T) {
	var gotOpts timelog.ListLogsOptions
	h := NewHandler(serviceStub{
		listLogsFn: func(_ context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error) {
			gotOpts = opts
			return []timelog.LogDocument{
				{Date: "2024-01-01", Entries: []timelog.Entry{{Label: "A", Hours: 1}}, UpdatedAt: stamp},
			}, nil
		},
	})

	out, err := h.ListLogs(context.Background(), RangeParams{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, timelog.ListLogsOptions{From: "2024-01-01", To: "2024-01-31"}, gotOpts)
	require.Len(t, out.Logs, 1)
	assert.Equal(t, []EntryParams{{Label: "A", Hours: 1}}, out.Logs[0].Entries)
}

func TestListLogs_InvalidRange(t *testing.T) {
	h := NewHandler(serviceStub{
		listLogsFn: func(context.Context, timelog.ListLogsOptions) ([]timelog.LogDocument, error) {
			return nil, timelog.ErrInvalidInput
		},
	})

	_, err := h.ListLogs(context.Background(), RangeParams{From: "bad"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_INPUT", apiErr.Code)
}

func TestSubmitDay_DropsZeroHours(t *testing.T) {
	var got timelog.LogEntry
	h := NewHandler(serviceStub{
		upsertEntryFn: func(_ context.Context, entry timelog.LogEntry) (*timelog.LogDocument, error) {
			got = entry
			return &timelog.LogDocument{Date: entry.Date, Entries: entry.Entries, UpdatedAt: stamp}, nil
		},
	})

	out, err := h.SubmitDay(context.Background(), SubmitDayParams{
		Date:    "2024-03-05",
		Entries: []EntryParams{{Label: "Work (client)", Hours: 0}, {Label: "Exercise", Hours: 1.5}},
	})
	require.NoError(t, err)
	assert.Equal(t, []timelog.Entry{{Label: "Exercise", Hours: 1.5}}, got.Entries)
	assert.Equal(t, "2024-03-05", out.Date)
	assert.Equal(t, []EntryParams{{Label: "Exercise", Hours: 1.5}}, out.Entries)
}

func TestGetSummary(t *testing.T) {
	h := NewHandler(serviceStub{
		summaryFn: func(context.Context, timelog.ListLogsOptions) (*timelog.Summary, error) {
			s := timelog.Summarize([]timelog.LogEntry{
				{Date: "2024-01-01", Entries: []timelog.Entry{{Label: "A", Hours: 0.1}, {Label: "B", Hours: 0.2}}},
			})
			return &s, nil
		},
	})

	out, err := h.GetSummary(context.Background(), RangeParams{})
	require.NoError(t, err)
	assert.Equal(t, 0.3, out.Total)
	assert.Len(t, out.Categories, 2)
}

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError(nil))
	assert.Nil(t, MapError(errors.New("boom")))
	assert.Equal(t, "CONFIG_NOT_FOUND", MapError(timelog.ErrConfigNotFound).Code)
	assert.Equal(t, "INTERNAL", toolError(errors.New("boom")).(*APIError).Code)
}
