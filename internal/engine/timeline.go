package engine

import (
	"sort"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// TimelineInput is the snapshot for one student's performance timeline.
type TimelineInput struct {
	StudentID   string
	CourseID    string
	Assignments []models.AssignmentMeta
	Submissions []models.SubmissionRecord
	Attendance  []models.AttendanceRecord
}

// BuildPerformanceTimeline emits one entry per catalog assignment ordered by
// creation time, carrying the matching submission's grade and lateness or a
// not_submitted placeholder, plus the student's attendance events ordered by
// mark time. ISO-8601 timestamps sort lexicographically, so ordering never
// parses them.
func BuildPerformanceTimeline(in TimelineInput) models.PerformanceTimeline {
	assignments := make([]models.AssignmentMeta, len(in.Assignments))
	copy(assignments, in.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt < assignments[j].CreatedAt
	})

	byAssignment := make(map[string]models.SubmissionRecord, len(in.Submissions))
	for _, sub := range in.Submissions {
		byAssignment[sub.AssignmentID] = sub
	}

	entries := make([]models.TimelineAssignmentEntry, 0, len(assignments))
	for _, assignment := range assignments {
		entry := models.TimelineAssignmentEntry{
			AssignmentID: assignment.ID,
			Title:        assignment.Title,
			DueDate:      assignment.DueDate,
			Status:       models.SubmissionStatusNotSubmitted,
		}
		if sub, ok := byAssignment[assignment.ID]; ok {
			entry.Status = sub.Status
			entry.Grade = sub.Grade
			entry.IsLate = sub.IsLate
			if sub.SubmittedAt != "" {
				submittedAt := sub.SubmittedAt
				entry.SubmittedAt = &submittedAt
			}
			if sub.AdjustedGrade != nil {
				entry.Percentage = PercentOf(*sub.AdjustedGrade, assignment.Points)
			}
		}
		entries = append(entries, entry)
	}

	attendance := make([]models.AttendanceRecord, len(in.Attendance))
	copy(attendance, in.Attendance)
	sort.SliceStable(attendance, func(i, j int) bool {
		return attendance[i].MarkedAt < attendance[j].MarkedAt
	})
	events := make([]models.TimelineAttendanceEvent, 0, len(attendance))
	for _, rec := range attendance {
		events = append(events, models.TimelineAttendanceEvent{
			Date:     rec.MarkedAt,
			Status:   rec.Status,
			ModuleID: rec.ModuleID,
		})
	}

	return models.PerformanceTimeline{
		StudentID:   in.StudentID,
		CourseID:    in.CourseID,
		Assignments: entries,
		Attendance:  events,
	}
}
