package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kidanta/kidanta-center/internal/models"
)

// ActivityRepository manages persistence for the activity catalog.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = "id, title, description, category, age_min, age_max, created_by, created_at, updated_at"

// List returns catalog activities ordered by title, optionally narrowed to
// those whose applicability range contains the filter age.
func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	query := fmt.Sprintf("SELECT %s FROM activities", activityColumns)
	var args []interface{}
	if filter.Age != nil {
		query += " WHERE age_min <= $1 AND age_max >= $1"
		args = append(args, *filter.Age)
	}
	query += " ORDER BY title ASC"

	activities := []models.Activity{}
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// FindByID fetches an activity by ID.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*models.Activity, error) {
	query := fmt.Sprintf("SELECT %s FROM activities WHERE id = $1", activityColumns)
	var activity models.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return &activity, nil
}

// Create inserts a new catalog entry.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = now
	}
	activity.UpdatedAt = now
	const query = `INSERT INTO activities (id, title, description, category, age_min, age_max, created_by, created_at, updated_at)
        VALUES (:id, :title, :description, :category, :age_min, :age_max, :created_by, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// Update modifies an existing catalog entry.
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	activity.UpdatedAt = time.Now().UTC()
	const query = `UPDATE activities SET title = :title, description = :description, category = :category, age_min = :age_min, age_max = :age_max, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// Delete removes an activity. Returns sql.ErrNoRows when the id is unknown.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM activities WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count returns the catalog size.
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM activities"); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return total, nil
}
