package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kidanta/kidanta-center/internal/models"
)

// LogbookRepository manages the append-only behavior and activity logs.
type LogbookRepository struct {
	db *sqlx.DB
}

// NewLogbookRepository constructs a LogbookRepository.
func NewLogbookRepository(db *sqlx.DB) *LogbookRepository {
	return &LogbookRepository{db: db}
}

// CreateBehavior appends one behavior observation.
func (r *LogbookRepository) CreateBehavior(ctx context.Context, log *models.BehaviorLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO behavior_logs (id, student_id, log_date, mood, focus, social, notes, created_by, created_at)
        VALUES (:id, :student_id, :log_date, :mood, :focus, :social, :notes, :created_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create behavior log: %w", err)
	}
	return nil
}

// CreateActivity appends one activity-completion record.
func (r *LogbookRepository) CreateActivity(ctx context.Context, log *models.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO activity_logs (id, student_id, activity_id, done_at, remark, created_by, created_at)
        VALUES (:id, :student_id, :activity_id, :done_at, :remark, :created_by, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

// RecentBehavior returns the newest behavior logs for a student by log date.
func (r *LogbookRepository) RecentBehavior(ctx context.Context, studentID string, limit int) ([]models.BehaviorLog, error) {
	const query = `SELECT id, student_id, log_date, mood, focus, social, notes, created_by, created_at
        FROM behavior_logs WHERE student_id = $1 ORDER BY log_date DESC, created_at DESC LIMIT $2`
	logs := []models.BehaviorLog{}
	if err := r.db.SelectContext(ctx, &logs, query, studentID, limit); err != nil {
		return nil, fmt.Errorf("recent behavior logs: %w", err)
	}
	return logs, nil
}

// RecentActivity returns the newest activity logs for a student joined with
// their catalog titles.
func (r *LogbookRepository) RecentActivity(ctx context.Context, studentID string, limit int) ([]models.ActivityLogEntry, error) {
	const query = `SELECT l.id, l.student_id, l.activity_id, l.done_at, l.remark, l.created_by, l.created_at, a.title AS activity_title
        FROM activity_logs l JOIN activities a ON a.id = l.activity_id
        WHERE l.student_id = $1 ORDER BY l.done_at DESC, l.created_at DESC LIMIT $2`
	entries := []models.ActivityLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, studentID, limit); err != nil {
		return nil, fmt.Errorf("recent activity logs: %w", err)
	}
	return entries, nil
}

// AllBehavior returns every behavior log for a student. Chart aggregation
// orders buckets itself, so no ORDER BY here.
func (r *LogbookRepository) AllBehavior(ctx context.Context, studentID string) ([]models.BehaviorLog, error) {
	const query = `SELECT id, student_id, log_date, mood, focus, social, notes, created_by, created_at
        FROM behavior_logs WHERE student_id = $1`
	logs := []models.BehaviorLog{}
	if err := r.db.SelectContext(ctx, &logs, query, studentID); err != nil {
		return nil, fmt.Errorf("all behavior logs: %w", err)
	}
	return logs, nil
}

// CountBehaviorOn counts behavior logs recorded for the given calendar date.
func (r *LogbookRepository) CountBehaviorOn(ctx context.Context, date time.Time) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM behavior_logs WHERE log_date = $1", date); err != nil {
		return 0, fmt.Errorf("count behavior logs: %w", err)
	}
	return total, nil
}
