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

func newAnalyticsFixture() (*fakeEnrollmentRepo, *fakeModuleProgressRepo, *fakeSubmissionRepo, *fakeAttendanceRepo, *fakeCatalogRepo) {
	enrollments := &fakeEnrollmentRepo{
		byCourse: []models.EnrollmentRecord{
			{StudentID: "stu-1", CourseID: "course-1", Status: models.EnrollmentStatusActive, ProgressPercent: 80, EnrolledAt: "2026-08-29T08:00:00Z", LastAccessedAt: "2026-08-30T08:00:00Z"},
			{StudentID: "stu-2", CourseID: "course-1", Status: models.EnrollmentStatusDropped, ProgressPercent: 20, EnrolledAt: "2026-08-29T19:30:00Z", LastAccessedAt: "2026-08-29T19:30:00Z"},
		},
	}
	moduleProgress := &fakeModuleProgressRepo{
		all: []models.ModuleProgressRecord{
			{StudentID: "stu-1", ModuleID: "mod-1", CourseID: "course-1", ProgressPercent: 100, TimeSpentMinutes: 100},
			{StudentID: "stu-2", ModuleID: "mod-2", CourseID: "course-1", ProgressPercent: 20, TimeSpentMinutes: 40},
		},
	}
	submissions := &fakeSubmissionRepo{
		all: []models.SubmissionRecord{
			{StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1", Status: models.SubmissionStatusGraded, Grade: testFloat(95), AdjustedGrade: testFloat(95), SubmittedAt: "2026-08-05T09:00:00Z"},
			{StudentID: "stu-2", CourseID: "course-1", AssignmentID: "asg-1", Status: models.SubmissionStatusGraded, Grade: testFloat(70), AdjustedGrade: testFloat(63), IsLate: true, DaysLate: testInt(1), SubmittedAt: "2026-08-06T09:00:00Z"},
		},
	}
	attendance := &fakeAttendanceRepo{
		all: []models.AttendanceRecord{
			{StudentID: "stu-1", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusPresent, MarkedAt: "2026-08-04T08:00:00Z"},
			{StudentID: "stu-2", CourseID: "course-1", ModuleID: "mod-1", Status: models.AttendanceStatusAbsent, MarkedAt: "2026-08-04T08:00:00Z"},
		},
	}
	catalog := &fakeCatalogRepo{
		modules: []models.CourseModule{
			{ID: "mod-1", CourseID: "course-1", Title: "Basics", Position: 1, CreatedAt: "2026-07-01T00:00:00Z"},
			{ID: "mod-2", CourseID: "course-1", Title: "Advanced", Position: 2, CreatedAt: "2026-07-02T00:00:00Z"},
		},
	}
	return enrollments, moduleProgress, submissions, attendance, catalog
}

func testInt(v int) *int { return &v }

func TestAnalyticsServiceCourseAnalytics(t *testing.T) {
	enrollments, moduleProgress, submissions, attendance, catalog := newAnalyticsFixture()
	fixedNow := func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	svc := NewAnalyticsService(enrollments, moduleProgress, submissions, attendance, catalog, newTestCache(), nil, zap.NewNop(), time.Minute, fixedNow)

	analytics, cacheHit, err := svc.CourseAnalytics(context.Background(), "course-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 2, analytics.TotalEnrolled)
	assert.Equal(t, 1, analytics.ActiveStudents)
	assert.Equal(t, 50.0, analytics.AverageCompletionRate)
	assert.Equal(t, 79.0, analytics.AverageAssignmentScore)
	assert.Equal(t, 50.0, analytics.AverageAttendanceRate)
	assert.Equal(t, models.GradeDistribution{A: 1, D: 1}, analytics.GradeDistribution)
	require.NotNil(t, analytics.MostActiveModuleID)
	assert.Equal(t, "mod-1", *analytics.MostActiveModuleID)
	require.NotNil(t, analytics.LeastActiveModuleID)
	assert.Equal(t, "mod-2", *analytics.LeastActiveModuleID)

	require.Len(t, analytics.EnrollmentTrend, 30)
	assert.Equal(t, "2026-08-02", analytics.EnrollmentTrend[0].Date)
	assert.Equal(t, "2026-08-31", analytics.EnrollmentTrend[29].Date)
	// Both enrollments fall on 2026-08-29 regardless of time of day.
	assert.Equal(t, 2, analytics.EnrollmentTrend[27].Count)
}

func TestAnalyticsServiceCaching(t *testing.T) {
	enrollments, moduleProgress, submissions, attendance, catalog := newAnalyticsFixture()
	fixedNow := func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	svc := NewAnalyticsService(enrollments, moduleProgress, submissions, attendance, catalog, newTestCache(), nil, zap.NewNop(), time.Minute, fixedNow)
	ctx := context.Background()

	first, cacheHit, err := svc.CourseAnalytics(ctx, "course-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, 1, enrollments.listCalls)

	second, cacheHit, err := svc.CourseAnalytics(ctx, "course-1")
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, 1, enrollments.listCalls)
	assert.Equal(t, *first, *second)
}

func TestAnalyticsServiceEmptyCourse(t *testing.T) {
	fixedNow := func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	svc := NewAnalyticsService(&fakeEnrollmentRepo{}, &fakeModuleProgressRepo{}, &fakeSubmissionRepo{}, &fakeAttendanceRepo{}, &fakeCatalogRepo{}, newTestCache(), nil, zap.NewNop(), time.Minute, fixedNow)

	analytics, _, err := svc.CourseAnalytics(context.Background(), "course-empty")
	require.NoError(t, err)
	assert.Equal(t, 0, analytics.TotalEnrolled)
	assert.Equal(t, 0.0, analytics.AverageCompletionRate)
	assert.Equal(t, 0.0, analytics.AverageAttendanceRate)
	assert.Nil(t, analytics.MostActiveModuleID)
	assert.Nil(t, analytics.LeastActiveModuleID)
	require.Len(t, analytics.EnrollmentTrend, 30)
}
