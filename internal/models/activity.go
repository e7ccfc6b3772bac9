package models

import "time"

// Default applicability range applied when a form leaves the bounds blank.
const (
	ActivityDefaultAgeMin = 6
	ActivityDefaultAgeMax = 12
)

// Activity is a catalog entry with an inclusive [AgeMin, AgeMax]
// applicability range.
type Activity struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	AgeMin      int       `db:"age_min" json:"age_min"`
	AgeMax      int       `db:"age_max" json:"age_max"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ActivityFilter narrows the catalog listing.
type ActivityFilter struct {
	// Age, when set, keeps only activities whose range contains it.
	Age *int
}
