package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

func TestAttendanceServiceStudentStats(t *testing.T) {
	attendance := &fakeAttendanceRepo{
		byStudent: map[string][]models.AttendanceRecord{
			"stu-1": {
				{StudentID: "stu-1", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusPresent, MarkedAt: "2026-08-04T08:00:00Z"},
				{StudentID: "stu-1", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusLate, MarkedAt: "2026-08-11T08:00:00Z"},
				{StudentID: "stu-1", CourseID: "course-1", ModuleID: "mod-2", Status: models.AttendanceStatusAbsent, MarkedAt: "2026-08-18T08:00:00Z"},
				{StudentID: "stu-1", CourseID: "course-1", ModuleID: "mod-2", Status: models.AttendanceStatusExcused, MarkedAt: "2026-08-25T08:00:00Z"},
			},
		},
	}
	svc := NewAttendanceService(attendance, newTestCache(), nil, zap.NewNop(), time.Minute)

	stats, cacheHit, err := svc.StudentStats(context.Background(), "stu-1", "course-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, 1, stats.Attended)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Excused)
	assert.Equal(t, 75.0, stats.AttendancePercentage)
}

func TestAttendanceServiceStudentWithoutRecords(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepo{}, newTestCache(), nil, zap.NewNop(), time.Minute)

	stats, _, err := svc.StudentStats(context.Background(), "stu-none", "course-1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0.0, stats.AttendancePercentage)
}

func TestAttendanceServiceCourseSummaryOrder(t *testing.T) {
	attendance := &fakeAttendanceRepo{
		all: []models.AttendanceRecord{
			{StudentID: "stu-b", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusPresent, MarkedAt: "2026-08-04T08:00:00Z"},
			{StudentID: "stu-a", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusAbsent, MarkedAt: "2026-08-04T08:05:00Z"},
			{StudentID: "stu-b", CourseID: "course-1", ModuleID: "mod-2", Status: models.AttendanceStatusLate, MarkedAt: "2026-08-11T08:00:00Z"},
		},
	}
	svc := NewAttendanceService(attendance, newTestCache(), nil, zap.NewNop(), time.Minute)

	summary, _, err := svc.CourseSummary(context.Background(), "course-1")
	require.NoError(t, err)
	require.Len(t, summary.Students, 2)
	assert.Equal(t, "stu-b", summary.Students[0].StudentID)
	assert.Equal(t, "stu-a", summary.Students[1].StudentID)
	assert.Equal(t, 100.0, summary.Students[0].AttendancePercentage)
	assert.Equal(t, 0.0, summary.Students[1].AttendancePercentage)
}
