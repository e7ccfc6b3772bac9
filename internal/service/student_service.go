package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

// recentLogLimit caps the history shown on detail and print views.
const recentLogLimit = 30

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

type studentLogReader interface {
	RecentBehavior(ctx context.Context, studentID string, limit int) ([]models.BehaviorLog, error)
	RecentActivity(ctx context.Context, studentID string, limit int) ([]models.ActivityLogEntry, error)
}

type activityLister interface {
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
}

// StudentRequest holds the create/edit form payload.
type StudentRequest struct {
	FullName string `validate:"required"`
	Age      int    `validate:"min=6,max=12"`
	Gender   string
	Notes    string
}

// StudentService handles roster use-cases.
type StudentService struct {
	repo       studentRepository
	logs       studentLogReader
	activities activityLister
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, logs studentLogReader, activities activityLister, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logs: logs, activities: activities, validator: validate, logger: logger}
}

// List returns students matching the filter ordered by name.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req StudentRequest, createdBy string) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a name and an age between 6 and 12 are required")
	}
	student := &models.Student{
		FullName:  req.FullName,
		Age:       req.Age,
		Gender:    req.Gender,
		Notes:     req.Notes,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	return student, nil
}

// Update modifies an existing student record.
func (s *StudentService) Update(ctx context.Context, id string, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a name and an age between 6 and 12 are required")
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	student.FullName = req.FullName
	student.Age = req.Age
	student.Gender = req.Gender
	student.Notes = req.Notes
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return student, nil
}

// Delete removes a student and, through the cascading foreign keys, the
// student's logs.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}

// Detail loads a student together with recent logs and the activities whose
// applicability range contains the student's age. Used by the detail page and
// the printable profile.
func (s *StudentService) Detail(ctx context.Context, id string) (*models.StudentDetail, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	behavior, err := s.logs.RecentBehavior(ctx, id, recentLogLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load behavior logs")
	}
	activityLogs, err := s.logs.RecentActivity(ctx, id, recentLogLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity logs")
	}
	age := student.Age
	recommended, err := s.activities.List(ctx, models.ActivityFilter{Age: &age})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recommended activities")
	}

	return &models.StudentDetail{
		Student:     *student,
		Behavior:    behavior,
		Activities:  activityLogs,
		Recommended: recommended,
	}, nil
}
