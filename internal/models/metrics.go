package models

import "time"

// CompletionStatus classifies a student's standing in a course.
type CompletionStatus string

const (
	CompletionStatusNotStarted CompletionStatus = "not_started"
	CompletionStatusInProgress CompletionStatus = "in_progress"
	CompletionStatusCompleted  CompletionStatus = "completed"
	CompletionStatusDropped    CompletionStatus = "dropped"
)

// StudentProgress is the derived per-student, per-course progress snapshot.
// Every percentage field is rounded to two decimals; consumers rely on
// 2-decimal stability for display and equality comparison.
type StudentProgress struct {
	StudentID                 string           `json:"student_id"`
	CourseID                  string           `json:"course_id"`
	ModulesCompleted          int              `json:"modules_completed"`
	TotalModules              int              `json:"total_modules"`
	TotalTimeSpentMinutes     int              `json:"total_time_spent_minutes"`
	AssignmentsCompleted      int              `json:"assignments_completed"`
	TotalAssignments          int              `json:"total_assignments"`
	AverageAssignmentScore    float64          `json:"average_assignment_score"`
	AttendancePercentage      float64          `json:"attendance_percentage"`
	CompletionStatus          CompletionStatus `json:"completion_status"`
	OverallProgressPercentage float64          `json:"overall_progress_percentage"`
}

// GradeDistribution buckets graded submissions by letter grade.
type GradeDistribution struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
	F int `json:"F"`
}

// EnrollmentTrendPoint is one day of the enrollment trend series.
type EnrollmentTrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CourseAnalytics is the derived course-wide metric set.
type CourseAnalytics struct {
	CourseID               string                 `json:"course_id"`
	TotalEnrolled          int                    `json:"total_enrolled"`
	ActiveStudents         int                    `json:"active_students"`
	AverageCompletionRate  float64                `json:"average_completion_rate"`
	AverageAssignmentScore float64                `json:"average_assignment_score"`
	AverageAttendanceRate  float64                `json:"average_attendance_rate"`
	GradeDistribution      GradeDistribution      `json:"grade_distribution"`
	AvgTimePerStudentHours float64                `json:"avg_time_per_student_hours"`
	MostActiveModuleID     *string                `json:"most_active_module_id,omitempty"`
	LeastActiveModuleID    *string                `json:"least_active_module_id,omitempty"`
	EnrollmentTrend        []EnrollmentTrendPoint `json:"enrollment_trend"`
}

// AttendanceStats summarises one student's attendance in one course.
// Attended counts strictly present marks; the percentage counts present,
// late and excused. Both conventions coexist deliberately.
type AttendanceStats struct {
	StudentID            string  `json:"student_id"`
	CourseID             string  `json:"course_id"`
	TotalSessions        int     `json:"total_sessions"`
	Attended             int     `json:"attended"`
	Absent               int     `json:"absent"`
	Late                 int     `json:"late"`
	Excused              int     `json:"excused"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// CourseAttendanceSummary lists per-student attendance lines for a course,
// in first-appearance order of the student IDs.
type CourseAttendanceSummary struct {
	CourseID string                  `json:"course_id"`
	Students []StudentAttendanceLine `json:"students"`
}

// StudentAttendanceLine is one row of the course attendance summary.
type StudentAttendanceLine struct {
	StudentID            string  `json:"student_id"`
	Present              int     `json:"present"`
	Absent               int     `json:"absent"`
	Late                 int     `json:"late"`
	Excused              int     `json:"excused"`
	TotalSessions        int     `json:"total_sessions"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// TimelineAssignmentEntry is one assignment slot in a student's timeline.
// Entries exist for every catalog assignment; unmatched slots carry the
// not_submitted status with a nil grade and zero percentage.
type TimelineAssignmentEntry struct {
	AssignmentID string           `json:"assignment_id"`
	Title        string           `json:"title"`
	DueDate      string           `json:"due_date"`
	Status       SubmissionStatus `json:"status"`
	Grade        *float64         `json:"grade"`
	Percentage   float64          `json:"percentage"`
	IsLate       bool             `json:"is_late"`
	SubmittedAt  *string          `json:"submitted_at,omitempty"`
}

// TimelineAttendanceEvent is one attendance mark in a student's timeline.
type TimelineAttendanceEvent struct {
	Date     string           `json:"date"`
	Status   AttendanceStatus `json:"status"`
	ModuleID string           `json:"module_id"`
}

// PerformanceTimeline is the chronological per-student series used for
// trend display.
type PerformanceTimeline struct {
	StudentID   string                    `json:"student_id"`
	CourseID    string                    `json:"course_id"`
	Assignments []TimelineAssignmentEntry `json:"assignments"`
	Attendance  []TimelineAttendanceEvent `json:"attendance"`
}

// SystemMetrics represents system level analytics captured from instrumentation.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
