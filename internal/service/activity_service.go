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

type activityRepository interface {
	List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error)
	FindByID(ctx context.Context, id string) (*models.Activity, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id string) error
}

// ActivityRequest holds the create/edit form payload. Blank bounds default to
// 6/12 before validation.
type ActivityRequest struct {
	Title       string `validate:"required"`
	Description string
	Category    string
	AgeMin      int `validate:"ltefield=AgeMax"`
	AgeMax      int
}

// ActivityService handles catalog use-cases.
type ActivityService struct {
	repo      activityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs the activity service.
func NewActivityService(repo activityRepository, validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, validator: validate, logger: logger}
}

// List returns catalog activities ordered by title, optionally restricted to
// those applicable to an age.
func (s *ActivityService) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	activities, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activities")
	}
	return activities, nil
}

// Get returns one catalog entry.
func (s *ActivityService) Get(ctx context.Context, id string) (*models.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	return activity, nil
}

// Create adds a catalog entry.
func (s *ActivityService) Create(ctx context.Context, req ActivityRequest, createdBy string) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a title and a valid age range are required")
	}
	activity := &models.Activity{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AgeMin:      req.AgeMin,
		AgeMax:      req.AgeMax,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create activity")
	}
	return activity, nil
}

// Update modifies an existing catalog entry.
func (s *ActivityService) Update(ctx context.Context, id string, req ActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "a title and a valid age range are required")
	}
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	activity.Title = req.Title
	activity.Description = req.Description
	activity.Category = req.Category
	activity.AgeMin = req.AgeMin
	activity.AgeMax = req.AgeMax
	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update activity")
	}
	return activity, nil
}

// Delete removes a catalog entry.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete activity")
	}
	return nil
}
