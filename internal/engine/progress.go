package engine

import (
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// StudentProgressInput is the record snapshot for one student in one course.
// The caller scopes every slice to the (student, course) pair; the engine
// does no further filtering.
type StudentProgressInput struct {
	Enrollment       models.EnrollmentRecord
	ModuleProgress   []models.ModuleProgressRecord
	Submissions      []models.SubmissionRecord
	Attendance       []models.AttendanceRecord
	TotalModules     int
	TotalAssignments int
}

// BuildStudentProgress combines one student's enrollment, module progress,
// submissions and attendance into a StudentProgress snapshot.
func BuildStudentProgress(in StudentProgressInput) models.StudentProgress {
	modulesCompleted := 0
	timeSpent := 0
	for _, mp := range in.ModuleProgress {
		if mp.CompletedAt != nil {
			modulesCompleted++
		}
		timeSpent += mp.TimeSpentMinutes
	}

	assignmentsCompleted := 0
	scores := make([]float64, 0, len(in.Submissions))
	for _, sub := range in.Submissions {
		if !sub.Status.Gradable() {
			continue
		}
		assignmentsCompleted++
		// Submissions without an adjusted grade are excluded from the
		// average, not counted as zero.
		if sub.AdjustedGrade != nil {
			scores = append(scores, *sub.AdjustedGrade)
		}
	}

	attended := 0
	for _, att := range in.Attendance {
		if att.Status.Counted() {
			attended++
		}
	}

	return models.StudentProgress{
		StudentID:                 in.Enrollment.StudentID,
		CourseID:                  in.Enrollment.CourseID,
		ModulesCompleted:          modulesCompleted,
		TotalModules:              in.TotalModules,
		TotalTimeSpentMinutes:     timeSpent,
		AssignmentsCompleted:      assignmentsCompleted,
		TotalAssignments:          in.TotalAssignments,
		AverageAssignmentScore:    Average(scores),
		AttendancePercentage:      PercentOf(float64(attended), float64(len(in.Attendance))),
		CompletionStatus:          completionStatus(in.Enrollment),
		OverallProgressPercentage: Round2(in.Enrollment.ProgressPercent),
	}
}

// completionStatus classifies the enrollment. The 0/100 percent checks run
// before the dropped check: a dropped record at 100 percent reports
// completed. This ordering is a deliberate tie-break and must not change.
func completionStatus(enrollment models.EnrollmentRecord) models.CompletionStatus {
	switch {
	case enrollment.ProgressPercent == 0:
		return models.CompletionStatusNotStarted
	case enrollment.ProgressPercent >= 100:
		return models.CompletionStatusCompleted
	case enrollment.Status == models.EnrollmentStatusDropped:
		return models.CompletionStatusDropped
	default:
		return models.CompletionStatusInProgress
	}
}
