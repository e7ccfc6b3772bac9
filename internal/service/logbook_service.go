package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

type logbookRepository interface {
	CreateBehavior(ctx context.Context, log *models.BehaviorLog) error
	CreateActivity(ctx context.Context, log *models.ActivityLog) error
}

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// BehaviorLogRequest is the typed behavior form payload. A nil LogDate means
// "today" in the reporting timezone; scores arrive pre-defaulted to 3 when the
// form left them blank.
type BehaviorLogRequest struct {
	StudentID string `validate:"required"`
	LogDate   *time.Time
	Mood      int `validate:"min=1,max=5"`
	Focus     int `validate:"min=1,max=5"`
	Social    int `validate:"min=1,max=5"`
	Notes     string
}

// ActivityLogRequest is the typed activity form payload.
type ActivityLogRequest struct {
	StudentID  string `validate:"required"`
	ActivityID string `validate:"required"`
	DoneAt     *time.Time
	Remark     string
}

// LogbookService appends behavior observations and activity completions.
type LogbookService struct {
	repo      logbookRepository
	students  studentFinder
	validator *validator.Validate
	logger    *zap.Logger
	location  *time.Location
	now       func() time.Time
}

// NewLogbookService constructs the logbook service. The location decides what
// "today" means when a form omits the date.
func NewLogbookService(repo logbookRepository, students studentFinder, validate *validator.Validate, logger *zap.Logger, location *time.Location) *LogbookService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.Local
	}
	return &LogbookService{repo: repo, students: students, validator: validate, logger: logger, location: location, now: time.Now}
}

// RecordBehavior appends one behavior observation and returns it.
func (s *LogbookService) RecordBehavior(ctx context.Context, req BehaviorLogRequest, createdBy string) (*models.BehaviorLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "scores must be between 1 and 5")
	}
	if err := s.ensureStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	log := &models.BehaviorLog{
		StudentID: req.StudentID,
		LogDate:   s.resolveDate(req.LogDate),
		Mood:      req.Mood,
		Focus:     req.Focus,
		Social:    req.Social,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}
	if err := s.repo.CreateBehavior(ctx, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record behavior log")
	}
	return log, nil
}

// RecordActivity appends one activity-completion record and returns it. An
// unknown activity id surfaces through the foreign key.
func (s *LogbookService) RecordActivity(ctx context.Context, req ActivityLogRequest, createdBy string) (*models.ActivityLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a student and an activity are required")
	}
	if err := s.ensureStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	log := &models.ActivityLog{
		StudentID:  req.StudentID,
		ActivityID: req.ActivityID,
		DoneAt:     s.resolveDate(req.DoneAt),
		Remark:     req.Remark,
		CreatedBy:  createdBy,
	}
	if err := s.repo.CreateActivity(ctx, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record activity log")
	}
	return log, nil
}

// Today returns the current calendar date in the reporting timezone,
// truncated to midnight UTC for date-column comparisons.
func (s *LogbookService) Today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *LogbookService) resolveDate(d *time.Time) time.Time {
	if d == nil {
		return s.Today()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *LogbookService) ensureStudent(ctx context.Context, id string) error {
	if _, err := s.students.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return nil
}
