package engine

import (
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// SummarizeStudentAttendance produces attendance statistics for one
// student/course pair. Attended counts strictly present marks while the
// percentage counts present, late and excused; both conventions belong in
// the output and are intentionally distinct per field.
func SummarizeStudentAttendance(studentID, courseID string, records []models.AttendanceRecord) models.AttendanceStats {
	stats := models.AttendanceStats{
		StudentID:     studentID,
		CourseID:      courseID,
		TotalSessions: len(records),
	}
	counted := 0
	for _, rec := range records {
		switch rec.Status {
		case models.AttendanceStatusPresent:
			stats.Attended++
		case models.AttendanceStatusAbsent:
			stats.Absent++
		case models.AttendanceStatusLate:
			stats.Late++
		case models.AttendanceStatusExcused:
			stats.Excused++
		}
		if rec.Status.Counted() {
			counted++
		}
	}
	stats.AttendancePercentage = PercentOf(float64(counted), float64(len(records)))
	return stats
}

// SummarizeCourseAttendance produces one attendance line per student from a
// course's attendance records. Lines appear in first-appearance order of the
// student IDs within the record slice.
func SummarizeCourseAttendance(courseID string, records []models.AttendanceRecord) models.CourseAttendanceSummary {
	byStudent := make(map[string]*models.StudentAttendanceLine)
	order := make([]string, 0)
	counted := make(map[string]int)

	for _, rec := range records {
		line, ok := byStudent[rec.StudentID]
		if !ok {
			line = &models.StudentAttendanceLine{StudentID: rec.StudentID}
			byStudent[rec.StudentID] = line
			order = append(order, rec.StudentID)
		}
		line.TotalSessions++
		switch rec.Status {
		case models.AttendanceStatusPresent:
			line.Present++
		case models.AttendanceStatusAbsent:
			line.Absent++
		case models.AttendanceStatusLate:
			line.Late++
		case models.AttendanceStatusExcused:
			line.Excused++
		}
		if rec.Status.Counted() {
			counted[rec.StudentID]++
		}
	}

	summary := models.CourseAttendanceSummary{
		CourseID: courseID,
		Students: make([]models.StudentAttendanceLine, 0, len(order)),
	}
	for _, studentID := range order {
		line := byStudent[studentID]
		line.AttendancePercentage = PercentOf(float64(counted[studentID]), float64(line.TotalSessions))
		summary.Students = append(summary.Students, *line)
	}
	return summary
}
