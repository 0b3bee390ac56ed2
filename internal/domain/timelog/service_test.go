package timelog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/daylog/internal/domain/timelog"
	"github.com/ganot/daylog/internal/repository"
	"github.com/ganot/daylog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_GetConfigNotFound(t *testing.T) {
	ctx := context.Background()
	configs := &mocks.ConfigRepository{}
	configs.On("Get", ctx).Return((*timelog.ConfigDocument)(nil), repository.ErrNotFound)

	svc := timelog.NewService(configs, &mocks.LogRepository{}, nil)
	_, err := svc.GetConfig(ctx)
	require.ErrorIs(t, err, timelog.ErrConfigNotFound)
}

func TestService_GetConfigWrapsErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	configs := &mocks.ConfigRepository{}
	configs.On("Get", ctx).Return((*timelog.ConfigDocument)(nil), boom)

	svc := timelog.NewService(configs, &mocks.LogRepository{}, nil)
	_, err := svc.GetConfig(ctx)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, timelog.ErrConfigNotFound)
}

func TestService_SetConfig(t *testing.T) {
	ctx := context.Background()
	configs := &mocks.ConfigRepository{}
	configs.On("Upsert", ctx, mock.MatchedBy(func(doc *timelog.ConfigDocument) bool {
		return len(doc.Categories) == 2 && doc.Categories[0] == "A" && !doc.UpdatedAt.IsZero()
	})).Return(nil)

	svc := timelog.NewService(configs, &mocks.LogRepository{}, nil)
	doc, err := svc.SetConfig(ctx, []string{"A", "B"})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, doc.Categories)
	configs.AssertExpectations(t)
}

func TestService_SetConfigRequiresCategories(t *testing.T) {
	svc := timelog.NewService(&mocks.ConfigRepository{}, &mocks.LogRepository{}, nil)
	_, err := svc.SetConfig(context.Background(), nil)
	require.ErrorIs(t, err, timelog.ErrInvalidInput)
}

func TestService_UpsertEntryValidation(t *testing.T) {
	logs := &mocks.LogRepository{}
	svc := timelog.NewService(&mocks.ConfigRepository{}, logs, nil)

	_, err := svc.UpsertEntry(context.Background(), timelog.LogEntry{Date: "2024-13-01"})
	require.ErrorIs(t, err, timelog.ErrInvalidInput)
	logs.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_UpsertEntry(t *testing.T) {
	ctx := context.Background()
	logs := &mocks.LogRepository{}
	logs.On("Upsert", ctx, mock.MatchedBy(func(doc *timelog.LogDocument) bool {
		return doc.Date == "2024-01-05" && len(doc.Entries) == 1
	})).Return(nil)

	svc := timelog.NewService(&mocks.ConfigRepository{}, logs, nil)
	doc, err := svc.UpsertEntry(ctx, timelog.LogEntry{
		Date:    "2024-01-05",
		Entries: []timelog.Entry{{Label: "Reading", Hours: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, "2024-01-05", doc.Date)
	logs.AssertExpectations(t)
}

func TestService_ListLogsNeverNil(t *testing.T) {
	ctx := context.Background()
	logs := &mocks.LogRepository{}
	logs.On("List", ctx, timelog.ListLogsOptions{}).Return(nil, nil)

	svc := timelog.NewService(&mocks.ConfigRepository{}, logs, nil)
	docs, err := svc.ListLogs(ctx, timelog.ListLogsOptions{})
	require.NoError(t, err)
	require.NotNil(t, docs)
	require.Empty(t, docs)
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	opts := timelog.ListLogsOptions{From: "2024-01-01"}
	logs := &mocks.LogRepository{}
	logs.On("List", ctx, opts).Return([]timelog.LogDocument{
		{Date: "2024-01-01", Entries: []timelog.Entry{{Label: "TV", Hours: 1}}},
		{Date: "2024-01-02", Entries: []timelog.Entry{{Label: "TV", Hours: 0.5}}},
	}, nil)

	svc := timelog.NewService(&mocks.ConfigRepository{}, logs, nil)
	summary, err := svc.Summary(ctx, opts)
	require.NoError(t, err)
	require.Equal(t, 1.5, summary.Total)
	require.Len(t, summary.Days, 2)
}
