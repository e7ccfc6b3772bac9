package service

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

type behaviorLogReader interface {
	AllBehavior(ctx context.Context, studentID string) ([]models.BehaviorLog, error)
}

// ChartService turns a student's behavior logs into chart-ready averages.
type ChartService struct {
	logs   behaviorLogReader
	logger *zap.Logger
}

// NewChartService constructs the chart service.
func NewChartService(logs behaviorLogReader, logger *zap.Logger) *ChartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartService{logs: logs, logger: logger}
}

type bucket struct {
	mood, focus, social, n int
}

// Aggregate buckets the student's behavior logs by calendar key and averages
// the scores per bucket, rounded to 2 decimals. Keys sort lexicographically,
// which is chronological for the formats used. A student with no logs yields
// four empty sequences.
func (s *ChartService) Aggregate(ctx context.Context, studentID string, period models.ChartPeriod) (*models.BehaviorChart, error) {
	rows, err := s.logs.AllBehavior(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load behavior logs")
	}

	var layout string
	switch period {
	case models.PeriodDaily:
		layout = "2006-01-02"
	case models.PeriodMonthly:
		layout = "2006-01"
	default:
		layout = "2006"
	}

	buckets := make(map[string]*bucket)
	for _, row := range rows {
		key := row.LogDate.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.mood += row.Mood
		b.focus += row.Focus
		b.social += row.Social
		b.n++
	}

	labels := make([]string, 0, len(buckets))
	for key := range buckets {
		labels = append(labels, key)
	}
	sort.Strings(labels)

	chart := &models.BehaviorChart{
		Labels: labels,
		Mood:   make([]float64, 0, len(labels)),
		Focus:  make([]float64, 0, len(labels)),
		Social: make([]float64, 0, len(labels)),
	}
	for _, key := range labels {
		b := buckets[key]
		chart.Mood = append(chart.Mood, round2(float64(b.mood)/float64(b.n)))
		chart.Focus = append(chart.Focus, round2(float64(b.focus)/float64(b.n)))
		chart.Social = append(chart.Social, round2(float64(b.social)/float64(b.n)))
	}
	return chart, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
