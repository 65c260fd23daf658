package models

// EnrollmentStatus represents the lifecycle of a course enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
)

// Valid returns true when the status is a supported value.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusDropped, EnrollmentStatusCompleted:
		return true
	default:
		return false
	}
}

// EnrollmentRecord captures a student's registration to a course. There is one
// record per (student, course) pair; progress_percent is advanced externally
// as the student moves through the course.
//
// Timestamps are ISO-8601 strings passed through unmodified. The aggregation
// engine never parses them, except for day-bucketing of enrolled_at in the
// enrollment trend.
type EnrollmentRecord struct {
	StudentID       string           `db:"student_id" json:"student_id"`
	CourseID        string           `db:"course_id" json:"course_id"`
	Status          EnrollmentStatus `db:"status" json:"status"`
	ProgressPercent float64          `db:"progress_percent" json:"progress_percent"`
	EnrolledAt      string           `db:"enrolled_at" json:"enrolled_at"`
	LastAccessedAt  string           `db:"last_accessed_at" json:"last_accessed_at"`
	CompletedAt     *string          `db:"completed_at" json:"completed_at,omitempty"`
}

// ModuleProgressRecord tracks a student's interaction with a single module.
// At most one record per (student, module); upserted as the student works.
type ModuleProgressRecord struct {
	StudentID        string  `db:"student_id" json:"student_id"`
	ModuleID         string  `db:"module_id" json:"module_id"`
	CourseID         string  `db:"course_id" json:"course_id"`
	ProgressPercent  float64 `db:"progress_percent" json:"progress_percent"`
	CompletedAt      *string `db:"completed_at" json:"completed_at,omitempty"`
	TimeSpentMinutes int     `db:"time_spent_minutes" json:"time_spent_minutes"`
}

// SubmissionStatus enumerates assignment submission states.
type SubmissionStatus string

const (
	SubmissionStatusNotSubmitted SubmissionStatus = "not_submitted"
	SubmissionStatusSubmitted    SubmissionStatus = "submitted"
	SubmissionStatusLate         SubmissionStatus = "late"
	SubmissionStatusGraded       SubmissionStatus = "graded"
	SubmissionStatusReturned     SubmissionStatus = "returned"
)

// Valid returns true when the status is a supported value.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusNotSubmitted, SubmissionStatusSubmitted, SubmissionStatusLate,
		SubmissionStatusGraded, SubmissionStatusReturned:
		return true
	default:
		return false
	}
}

// Gradable reports whether a submission in this status carries an adjusted
// grade. adjusted_grade is defined exactly for graded and returned submissions.
func (s SubmissionStatus) Gradable() bool {
	return s == SubmissionStatusGraded || s == SubmissionStatusReturned
}

// SubmissionRecord is one student's submission for one assignment.
// AdjustedGrade is computed once at grading time and stored; it is never
// recomputed when the assignment's penalty configuration changes later.
type SubmissionRecord struct {
	StudentID     string           `db:"student_id" json:"student_id"`
	CourseID      string           `db:"course_id" json:"course_id"`
	AssignmentID  string           `db:"assignment_id" json:"assignment_id"`
	Status        SubmissionStatus `db:"status" json:"status"`
	Grade         *float64         `db:"grade" json:"grade,omitempty"`
	AdjustedGrade *float64         `db:"adjusted_grade" json:"adjusted_grade,omitempty"`
	IsLate        bool             `db:"is_late" json:"is_late"`
	DaysLate      *int             `db:"days_late" json:"days_late,omitempty"`
	SubmittedAt   string           `db:"submitted_at" json:"submitted_at"`
	GradedAt      *string          `db:"graded_at" json:"graded_at,omitempty"`
}

// AttendanceStatus represents the mark for a single session.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// Counted reports whether the mark counts toward the attendance percentage.
// present, late and excused all count; only present counts as "attended".
func (s AttendanceStatus) Counted() bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusLate || s == AttendanceStatusExcused
}

// AttendanceRecord is one session mark for one student in a course.
type AttendanceRecord struct {
	StudentID string           `db:"student_id" json:"student_id"`
	CourseID  string           `db:"course_id" json:"course_id"`
	ModuleID  string           `db:"module_id" json:"module_id"`
	Status    AttendanceStatus `db:"status" json:"status"`
	MarkedAt  string           `db:"marked_at" json:"marked_at"`
}
