package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

type studentCounter interface {
	Count(ctx context.Context) (int, error)
}

type activityCounter interface {
	Count(ctx context.Context) (int, error)
}

type behaviorCounter interface {
	CountBehaviorOn(ctx context.Context, date time.Time) (int, error)
}

// DashboardService composes the landing-page counters. Counts are computed
// fresh on every request, never cached.
type DashboardService struct {
	students   studentCounter
	activities activityCounter
	behavior   behaviorCounter
	logger     *zap.Logger
	location   *time.Location
	now        func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(students studentCounter, activities activityCounter, behavior behaviorCounter, logger *zap.Logger, location *time.Location) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.Local
	}
	return &DashboardService{students: students, activities: activities, behavior: behavior, logger: logger, location: location, now: time.Now}
}

// Summary returns the roster size, catalog size and today's observation count.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	studentCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	activityCount, err := s.activities.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count activities")
	}

	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	todayLogs, err := s.behavior.CountBehaviorOn(ctx, today)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count behavior logs")
	}

	return &models.DashboardSummary{
		StudentCount:  studentCount,
		ActivityCount: activityCount,
		TodayLogCount: todayLogs,
	}, nil
}
