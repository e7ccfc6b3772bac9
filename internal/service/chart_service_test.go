package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
)

type mockBehaviorReader struct {
	rows []models.BehaviorLog
	err  error
}

func (m *mockBehaviorReader) AllBehavior(ctx context.Context, studentID string) ([]models.BehaviorLog, error) {
	return m.rows, m.err
}

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestChartServiceDailyAverages(t *testing.T) {
	reader := &mockBehaviorReader{rows: []models.BehaviorLog{
		{LogDate: day("2024-01-01"), Mood: 4, Focus: 5, Social: 2},
		{LogDate: day("2024-01-01"), Mood: 2, Focus: 4, Social: 3},
		{LogDate: day("2024-01-02"), Mood: 5, Focus: 5, Social: 5},
	}}
	svc := NewChartService(reader, zap.NewNop())

	chart, err := svc.Aggregate(context.Background(), "s1", models.PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, chart.Labels)
	assert.Equal(t, []float64{3, 5}, chart.Mood)
	assert.Equal(t, []float64{4.5, 5}, chart.Focus)
	assert.Equal(t, []float64{2.5, 5}, chart.Social)
}

func TestChartServiceMonthlyBuckets(t *testing.T) {
	reader := &mockBehaviorReader{rows: []models.BehaviorLog{
		{LogDate: day("2024-02-10"), Mood: 1, Focus: 1, Social: 1},
		{LogDate: day("2024-01-05"), Mood: 3, Focus: 3, Social: 3},
		{LogDate: day("2024-01-20"), Mood: 5, Focus: 5, Social: 5},
	}}
	svc := NewChartService(reader, zap.NewNop())

	chart, err := svc.Aggregate(context.Background(), "s1", models.PeriodMonthly)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01", "2024-02"}, chart.Labels)
	assert.Equal(t, []float64{4, 1}, chart.Mood)
}

func TestChartServiceRoundsToTwoDecimals(t *testing.T) {
	reader := &mockBehaviorReader{rows: []models.BehaviorLog{
		{LogDate: day("2024-03-01"), Mood: 1, Focus: 1, Social: 1},
		{LogDate: day("2024-03-01"), Mood: 2, Focus: 2, Social: 2},
		{LogDate: day("2024-03-01"), Mood: 2, Focus: 2, Social: 2},
	}}
	svc := NewChartService(reader, zap.NewNop())

	chart, err := svc.Aggregate(context.Background(), "s1", models.PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.67}, chart.Mood)
}

func TestChartServiceUnknownPeriodBucketsByYear(t *testing.T) {
	reader := &mockBehaviorReader{rows: []models.BehaviorLog{
		{LogDate: day("2023-06-01"), Mood: 2, Focus: 2, Social: 2},
		{LogDate: day("2024-06-01"), Mood: 4, Focus: 4, Social: 4},
	}}
	svc := NewChartService(reader, zap.NewNop())

	chart, err := svc.Aggregate(context.Background(), "s1", models.ChartPeriod("weekly"))
	require.NoError(t, err)
	assert.Equal(t, []string{"2023", "2024"}, chart.Labels)
}

func TestChartServiceNoLogs(t *testing.T) {
	svc := NewChartService(&mockBehaviorReader{}, zap.NewNop())

	chart, err := svc.Aggregate(context.Background(), "s1", models.PeriodDaily)
	require.NoError(t, err)
	assert.NotNil(t, chart.Labels)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Mood)
	assert.Empty(t, chart.Focus)
	assert.Empty(t, chart.Social)
}
