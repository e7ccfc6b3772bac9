package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

type mockLogbookRepo struct {
	behavior *models.BehaviorLog
	activity *models.ActivityLog
}

func (m *mockLogbookRepo) CreateBehavior(ctx context.Context, log *models.BehaviorLog) error {
	m.behavior = log
	return nil
}

func (m *mockLogbookRepo) CreateActivity(ctx context.Context, log *models.ActivityLog) error {
	m.activity = log
	return nil
}

type mockStudentFinder struct {
	student *models.Student
}

func (m *mockStudentFinder) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if m.student == nil || m.student.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.student, nil
}

func newLogbookService(repo *mockLogbookRepo, students *mockStudentFinder) *LogbookService {
	return NewLogbookService(repo, students, validator.New(), zap.NewNop(), time.UTC)
}

func TestLogbookServiceRecordBehavior(t *testing.T) {
	repo := &mockLogbookRepo{}
	svc := newLogbookService(repo, &mockStudentFinder{student: &models.Student{ID: "s1"}})

	when := day("2024-05-01")
	log, err := svc.RecordBehavior(context.Background(), BehaviorLogRequest{
		StudentID: "s1",
		LogDate:   &when,
		Mood:      4,
		Focus:     3,
		Social:    5,
		Notes:     "ร่าเริงดี",
	}, "u1")
	require.NoError(t, err)
	assert.Equal(t, when, log.LogDate)
	assert.Equal(t, "u1", log.CreatedBy)
	require.NotNil(t, repo.behavior)
}

func TestLogbookServiceRecordBehaviorDefaultsToToday(t *testing.T) {
	repo := &mockLogbookRepo{}
	svc := newLogbookService(repo, &mockStudentFinder{student: &models.Student{ID: "s1"}})
	svc.now = func() time.Time { return time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC) }

	log, err := svc.RecordBehavior(context.Background(), BehaviorLogRequest{
		StudentID: "s1", Mood: 3, Focus: 3, Social: 3,
	}, "u1")
	require.NoError(t, err)
	assert.Equal(t, day("2024-05-02"), log.LogDate)
}

func TestLogbookServiceTodayFollowsReportingTimezone(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)
	svc := NewLogbookService(&mockLogbookRepo{}, &mockStudentFinder{}, validator.New(), zap.NewNop(), bangkok)
	// 18:30 UTC is already the next day in Bangkok (UTC+7)
	svc.now = func() time.Time { return time.Date(2024, 5, 2, 18, 30, 0, 0, time.UTC) }

	assert.Equal(t, day("2024-05-03"), svc.Today())
}

func TestLogbookServiceRecordBehaviorScoreOutOfRange(t *testing.T) {
	svc := newLogbookService(&mockLogbookRepo{}, &mockStudentFinder{student: &models.Student{ID: "s1"}})

	for _, score := range []int{0, 6} {
		_, err := svc.RecordBehavior(context.Background(), BehaviorLogRequest{
			StudentID: "s1", Mood: score, Focus: 3, Social: 3,
		}, "u1")
		require.Error(t, err, "score %d", score)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestLogbookServiceRecordBehaviorUnknownStudent(t *testing.T) {
	svc := newLogbookService(&mockLogbookRepo{}, &mockStudentFinder{})

	_, err := svc.RecordBehavior(context.Background(), BehaviorLogRequest{
		StudentID: "missing", Mood: 3, Focus: 3, Social: 3,
	}, "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLogbookServiceRecordActivity(t *testing.T) {
	repo := &mockLogbookRepo{}
	svc := newLogbookService(repo, &mockStudentFinder{student: &models.Student{ID: "s1"}})

	log, err := svc.RecordActivity(context.Background(), ActivityLogRequest{
		StudentID:  "s1",
		ActivityID: "a1",
		Remark:     "สนุกมาก",
	}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a1", log.ActivityID)
	require.NotNil(t, repo.activity)
}

func TestLogbookServiceRecordActivityMissingActivity(t *testing.T) {
	svc := newLogbookService(&mockLogbookRepo{}, &mockStudentFinder{student: &models.Student{ID: "s1"}})

	_, err := svc.RecordActivity(context.Background(), ActivityLogRequest{StudentID: "s1"}, "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
