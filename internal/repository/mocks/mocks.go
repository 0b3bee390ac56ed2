package mocks

import (
	"context"

	"github.com/ganot/daylog/internal/domain/timelog"
	"github.com/stretchr/testify/mock"
)

// ConfigRepository is a mock for timelog.ConfigRepository.
type ConfigRepository struct {
	mock.Mock
}

func (m *ConfigRepository) Get(ctx context.Context) (*timelog.ConfigDocument, error) {
	args := m.Called(ctx)
	if doc, ok := args.Get(0).(*timelog.ConfigDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConfigRepository) Upsert(ctx context.Context, doc *timelog.ConfigDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// LogRepository is a mock for timelog.LogRepository.
type LogRepository struct {
	mock.Mock
}

func (m *LogRepository) List(ctx context.Context, opts timelog.ListLogsOptions) ([]timelog.LogDocument, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]timelog.LogDocument); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LogRepository) Upsert(ctx context.Context, doc *timelog.LogDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
