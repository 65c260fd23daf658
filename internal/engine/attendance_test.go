package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

func TestSummarizeStudentAttendance(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "stu-1", Status: models.AttendanceStatusPresent},
		{StudentID: "stu-1", Status: models.AttendanceStatusLate},
		{StudentID: "stu-1", Status: models.AttendanceStatusAbsent},
		{StudentID: "stu-1", Status: models.AttendanceStatusExcused},
	}

	stats := SummarizeStudentAttendance("stu-1", "course-1", records)

	assert.Equal(t, 4, stats.TotalSessions)
	// attended is strictly present-only while the percentage counts
	// present, late and excused: 3 of 4.
	assert.Equal(t, 1, stats.Attended)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Excused)
	assert.Equal(t, 75.0, stats.AttendancePercentage)
}

func TestSummarizeStudentAttendanceEmpty(t *testing.T) {
	stats := SummarizeStudentAttendance("stu-1", "course-1", nil)

	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0.0, stats.AttendancePercentage)
}

func TestSummarizeCourseAttendanceInsertionOrder(t *testing.T) {
	records := []models.AttendanceRecord{
		{StudentID: "stu-b", Status: models.AttendanceStatusPresent},
		{StudentID: "stu-a", Status: models.AttendanceStatusAbsent},
		{StudentID: "stu-b", Status: models.AttendanceStatusAbsent},
		{StudentID: "stu-c", Status: models.AttendanceStatusExcused},
		{StudentID: "stu-a", Status: models.AttendanceStatusLate},
	}

	summary := SummarizeCourseAttendance("course-1", records)

	require.Len(t, summary.Students, 3)
	assert.Equal(t, "stu-b", summary.Students[0].StudentID)
	assert.Equal(t, "stu-a", summary.Students[1].StudentID)
	assert.Equal(t, "stu-c", summary.Students[2].StudentID)

	b := summary.Students[0]
	assert.Equal(t, 1, b.Present)
	assert.Equal(t, 1, b.Absent)
	assert.Equal(t, 2, b.TotalSessions)
	assert.Equal(t, 50.0, b.AttendancePercentage)

	a := summary.Students[1]
	assert.Equal(t, 1, a.Late)
	assert.Equal(t, 50.0, a.AttendancePercentage)

	c := summary.Students[2]
	assert.Equal(t, 1, c.Excused)
	assert.Equal(t, 100.0, c.AttendancePercentage)
}

func TestSummarizeCourseAttendanceEmpty(t *testing.T) {
	summary := SummarizeCourseAttendance("course-1", nil)
	assert.Empty(t, summary.Students)
}
