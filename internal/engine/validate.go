package engine

import (
	"fmt"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
)

// ValidateEnrollment checks the enrollment record invariants. Violations are
// caller bugs surfaced as validation errors; the engine never repairs input.
func ValidateEnrollment(enrollment models.EnrollmentRecord) error {
	if !enrollment.Status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("enrollment %s/%s: unknown status %q", enrollment.StudentID, enrollment.CourseID, enrollment.Status))
	}
	if enrollment.ProgressPercent < 0 || enrollment.ProgressPercent > 100 {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("enrollment %s/%s: progress_percent out of range", enrollment.StudentID, enrollment.CourseID))
	}
	return nil
}

// ValidateSubmission checks the submission invariants: adjusted_grade is
// defined exactly for graded and returned submissions, always alongside a raw
// grade, and never exceeds the raw grade on a late submission.
func ValidateSubmission(sub models.SubmissionRecord) error {
	if !sub.Status.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: unknown status %q", sub.AssignmentID, sub.Status))
	}
	if sub.AdjustedGrade != nil && !sub.Status.Gradable() {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: adjusted_grade set on %s submission", sub.AssignmentID, sub.Status))
	}
	if sub.AdjustedGrade != nil && sub.Grade == nil {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: adjusted_grade set without grade", sub.AssignmentID))
	}
	if sub.Grade != nil && *sub.Grade < 0 {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: negative grade", sub.AssignmentID))
	}
	if sub.DaysLate != nil && *sub.DaysLate < 0 {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: negative days_late", sub.AssignmentID))
	}
	if sub.IsLate && sub.AdjustedGrade != nil && sub.Grade != nil && *sub.AdjustedGrade > *sub.Grade {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("submission %s: adjusted_grade exceeds grade on late submission", sub.AssignmentID))
	}
	return nil
}

// ValidateSubmissions validates a submission slice, reporting the first
// violation.
func ValidateSubmissions(subs []models.SubmissionRecord) error {
	for _, sub := range subs {
		if err := ValidateSubmission(sub); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAttendance checks attendance record statuses.
func ValidateAttendance(records []models.AttendanceRecord) error {
	for _, rec := range records {
		if !rec.Status.Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("attendance %s/%s: unknown status %q", rec.StudentID, rec.ModuleID, rec.Status))
		}
	}
	return nil
}
