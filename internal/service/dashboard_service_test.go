package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCounter struct {
	count int
}

func (m *mockCounter) Count(ctx context.Context) (int, error) {
	return m.count, nil
}

type mockBehaviorCounter struct {
	count    int
	lastDate time.Time
}

func (m *mockBehaviorCounter) CountBehaviorOn(ctx context.Context, date time.Time) (int, error) {
	m.lastDate = date
	return m.count, nil
}

func TestDashboardServiceSummary(t *testing.T) {
	behavior := &mockBehaviorCounter{count: 2}
	svc := NewDashboardService(&mockCounter{count: 12}, &mockCounter{count: 5}, behavior, zap.NewNop(), time.UTC)
	svc.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, summary.StudentCount)
	assert.Equal(t, 5, summary.ActivityCount)
	assert.Equal(t, 2, summary.TodayLogCount)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), behavior.lastDate)
}
