package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

type mockActivityRepo struct {
	activities []models.Activity
	byID       *models.Activity
	lastFilter models.ActivityFilter
	created    *models.Activity
	updated    *models.Activity
	deleteErr  error
	deletedID  string
}

func (m *mockActivityRepo) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	m.lastFilter = filter
	return m.activities, nil
}

func (m *mockActivityRepo) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	if m.byID == nil || m.byID.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.byID, nil
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *models.Activity) error {
	m.created = activity
	return nil
}

func (m *mockActivityRepo) Update(ctx context.Context, activity *models.Activity) error {
	m.updated = activity
	return nil
}

func (m *mockActivityRepo) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

func TestActivityServiceCreate(t *testing.T) {
	repo := &mockActivityRepo{}
	svc := NewActivityService(repo, validator.New(), zap.NewNop())

	activity, err := svc.Create(context.Background(), ActivityRequest{
		Title:    "เกมต่อบล็อก",
		Category: "STEM",
		AgeMin:   6,
		AgeMax:   9,
	}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "เกมต่อบล็อก", activity.Title)
	assert.Equal(t, 6, activity.AgeMin)
	require.NotNil(t, repo.created)
}

func TestActivityServiceCreateBlankTitle(t *testing.T) {
	repo := &mockActivityRepo{}
	svc := NewActivityService(repo, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), ActivityRequest{AgeMin: 6, AgeMax: 12}, "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestActivityServiceCreateInvertedAgeRange(t *testing.T) {
	svc := NewActivityService(&mockActivityRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), ActivityRequest{Title: "ผิดช่วง", AgeMin: 10, AgeMax: 7}, "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestActivityServiceListAgeFilter(t *testing.T) {
	repo := &mockActivityRepo{activities: []models.Activity{{ID: "a1", Title: "อ่านนิทานภาพ"}}}
	svc := NewActivityService(repo, validator.New(), zap.NewNop())

	age := 7
	activities, err := svc.List(context.Background(), models.ActivityFilter{Age: &age})
	require.NoError(t, err)
	assert.Len(t, activities, 1)
	require.NotNil(t, repo.lastFilter.Age)
	assert.Equal(t, 7, *repo.lastFilter.Age)
}

func TestActivityServiceUpdateNotFound(t *testing.T) {
	svc := NewActivityService(&mockActivityRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Update(context.Background(), "missing", ActivityRequest{Title: "ใหม่", AgeMin: 6, AgeMax: 12})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestActivityServiceDeleteNotFound(t *testing.T) {
	repo := &mockActivityRepo{deleteErr: sql.ErrNoRows}
	svc := NewActivityService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
