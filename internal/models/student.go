package models

import "time"

// Student ages accepted by the center.
const (
	StudentAgeMin = 6
	StudentAgeMax = 12
)

// Student represents a child enrolled at the center.
type Student struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	// Search matches full_name case-insensitively as a substring.
	Search string
}

// StudentDetail bundles a student with its recent history and the catalog
// activities applicable to the student's current age.
type StudentDetail struct {
	Student     Student
	Behavior    []BehaviorLog
	Activities  []ActivityLogEntry
	Recommended []Activity
}
