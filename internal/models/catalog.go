package models

// CourseModule is a catalog entry for one module of a course.
type CourseModule struct {
	ID        string `db:"id" json:"id"`
	CourseID  string `db:"course_id" json:"course_id"`
	Title     string `db:"title" json:"title"`
	Position  int    `db:"position" json:"position"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// AssignmentMeta is a catalog entry for one assignment of a course.
// LatePenaltyPerDay is a percent-of-grade deduction applied per day late.
type AssignmentMeta struct {
	ID                string  `db:"id" json:"id"`
	CourseID          string  `db:"course_id" json:"course_id"`
	Title             string  `db:"title" json:"title"`
	Points            float64 `db:"points" json:"points"`
	DueDate           string  `db:"due_date" json:"due_date"`
	LatePenaltyPerDay float64 `db:"late_penalty_per_day" json:"late_penalty_per_day"`
	CreatedAt         string  `db:"created_at" json:"created_at"`
}
