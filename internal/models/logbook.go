package models

import "time"

// Behavior score bounds and the default applied when a form omits a score.
const (
	ScoreMin     = 1
	ScoreMax     = 5
	ScoreDefault = 3
)

// BehaviorLog is one observation of a student on a date. Rows are append-only.
type BehaviorLog struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	LogDate   time.Time `db:"log_date" json:"log_date"`
	Mood      int       `db:"mood" json:"mood"`
	Focus     int       `db:"focus" json:"focus"`
	Social    int       `db:"social" json:"social"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ActivityLog records that a student performed a catalog activity on a date.
type ActivityLog struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"student_id" json:"student_id"`
	ActivityID string    `db:"activity_id" json:"activity_id"`
	DoneAt     time.Time `db:"done_at" json:"done_at"`
	Remark     string    `db:"remark" json:"remark"`
	CreatedBy  string    `db:"created_by" json:"created_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ActivityLogEntry is an activity log joined with its catalog title for
// detail and print views.
type ActivityLogEntry struct {
	ActivityLog
	ActivityTitle string `db:"activity_title" json:"activity_title"`
}
