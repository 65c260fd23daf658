package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func baseEnrollment() models.EnrollmentRecord {
	return models.EnrollmentRecord{
		StudentID:       "stu-1",
		CourseID:        "course-1",
		Status:          models.EnrollmentStatusActive,
		ProgressPercent: 45.678,
		EnrolledAt:      "2026-08-01T09:00:00Z",
		LastAccessedAt:  "2026-08-20T10:00:00Z",
	}
}

func TestBuildStudentProgress(t *testing.T) {
	in := StudentProgressInput{
		Enrollment: baseEnrollment(),
		ModuleProgress: []models.ModuleProgressRecord{
			{ModuleID: "mod-1", CompletedAt: strPtr("2026-08-05T10:00:00Z"), TimeSpentMinutes: 90},
			{ModuleID: "mod-2", CompletedAt: strPtr("2026-08-10T10:00:00Z"), TimeSpentMinutes: 45},
			{ModuleID: "mod-3", TimeSpentMinutes: 15},
		},
		Submissions: []models.SubmissionRecord{
			{AssignmentID: "asg-1", Status: models.SubmissionStatusGraded, Grade: floatPtr(90), AdjustedGrade: floatPtr(90)},
			{AssignmentID: "asg-2", Status: models.SubmissionStatusReturned, Grade: floatPtr(80), AdjustedGrade: floatPtr(72), IsLate: true, DaysLate: intPtr(1)},
			{AssignmentID: "asg-3", Status: models.SubmissionStatusSubmitted},
		},
		Attendance: []models.AttendanceRecord{
			{Status: models.AttendanceStatusPresent},
			{Status: models.AttendanceStatusLate},
			{Status: models.AttendanceStatusAbsent},
			{Status: models.AttendanceStatusExcused},
		},
		TotalModules:     5,
		TotalAssignments: 4,
	}

	progress := BuildStudentProgress(in)

	assert.Equal(t, 2, progress.ModulesCompleted)
	assert.Equal(t, 5, progress.TotalModules)
	assert.Equal(t, 150, progress.TotalTimeSpentMinutes)
	assert.Equal(t, 2, progress.AssignmentsCompleted)
	assert.Equal(t, 81.0, progress.AverageAssignmentScore)
	assert.Equal(t, 75.0, progress.AttendancePercentage)
	assert.Equal(t, models.CompletionStatusInProgress, progress.CompletionStatus)
	assert.Equal(t, 45.68, progress.OverallProgressPercentage)
}

func TestBuildStudentProgressEmptyInput(t *testing.T) {
	enrollment := baseEnrollment()
	enrollment.ProgressPercent = 10
	progress := BuildStudentProgress(StudentProgressInput{Enrollment: enrollment})

	assert.Equal(t, 0, progress.ModulesCompleted)
	assert.Equal(t, 0.0, progress.AverageAssignmentScore)
	assert.Equal(t, 0.0, progress.AttendancePercentage)
	assert.Equal(t, models.CompletionStatusInProgress, progress.CompletionStatus)
}

func TestBuildStudentProgressGradedWithoutAdjustedExcluded(t *testing.T) {
	in := StudentProgressInput{
		Enrollment: baseEnrollment(),
		Submissions: []models.SubmissionRecord{
			{AssignmentID: "asg-1", Status: models.SubmissionStatusGraded, Grade: floatPtr(100), AdjustedGrade: floatPtr(100)},
			{AssignmentID: "asg-2", Status: models.SubmissionStatusGraded},
		},
	}
	progress := BuildStudentProgress(in)

	// The adjusted-grade-less submission counts as completed but is excluded
	// from the average instead of dragging it down as a zero.
	assert.Equal(t, 2, progress.AssignmentsCompleted)
	assert.Equal(t, 100.0, progress.AverageAssignmentScore)
}

func TestCompletionStatusNotStartedWinsOverDropped(t *testing.T) {
	enrollment := baseEnrollment()
	enrollment.ProgressPercent = 0
	enrollment.Status = models.EnrollmentStatusDropped

	progress := BuildStudentProgress(StudentProgressInput{Enrollment: enrollment})
	assert.Equal(t, models.CompletionStatusNotStarted, progress.CompletionStatus)
}

func TestCompletionStatusCompletedWinsOverDropped(t *testing.T) {
	enrollment := baseEnrollment()
	enrollment.ProgressPercent = 100
	enrollment.Status = models.EnrollmentStatusDropped

	progress := BuildStudentProgress(StudentProgressInput{Enrollment: enrollment})
	assert.Equal(t, models.CompletionStatusCompleted, progress.CompletionStatus)
}

func TestCompletionStatusDropped(t *testing.T) {
	enrollment := baseEnrollment()
	enrollment.ProgressPercent = 55
	enrollment.Status = models.EnrollmentStatusDropped

	progress := BuildStudentProgress(StudentProgressInput{Enrollment: enrollment})
	assert.Equal(t, models.CompletionStatusDropped, progress.CompletionStatus)
}

func TestValidateSubmissionInvariants(t *testing.T) {
	valid := models.SubmissionRecord{
		AssignmentID:  "asg-1",
		Status:        models.SubmissionStatusGraded,
		Grade:         floatPtr(80),
		AdjustedGrade: floatPtr(72),
		IsLate:        true,
		DaysLate:      intPtr(1),
	}
	require.NoError(t, ValidateSubmission(valid))

	adjustedWithoutGrade := valid
	adjustedWithoutGrade.Grade = nil
	assert.Error(t, ValidateSubmission(adjustedWithoutGrade))

	adjustedOnPending := valid
	adjustedOnPending.Status = models.SubmissionStatusSubmitted
	assert.Error(t, ValidateSubmission(adjustedOnPending))

	adjustedAboveRaw := valid
	adjustedAboveRaw.AdjustedGrade = floatPtr(90)
	assert.Error(t, ValidateSubmission(adjustedAboveRaw))
}
