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

func TestTimelineServicePerformanceTimeline(t *testing.T) {
	enrollments, _, submissions, attendance, catalog := newProgressFixture()
	svc := NewTimelineService(enrollments, submissions, attendance, catalog, newTestCache(), nil, zap.NewNop(), time.Minute)

	timeline, cacheHit, err := svc.PerformanceTimeline(context.Background(), "stu-1", "course-1")
	require.NoError(t, err)
	assert.False(t, cacheHit)
	require.Len(t, timeline.Assignments, 2)
	// Ordered by catalog creation time, not submission time.
	assert.Equal(t, "asg-1", timeline.Assignments[0].AssignmentID)
	assert.Equal(t, "asg-2", timeline.Assignments[1].AssignmentID)
	assert.Equal(t, models.SubmissionStatusGraded, timeline.Assignments[0].Status)
	assert.Equal(t, 92.0, timeline.Assignments[0].Percentage)
	assert.Equal(t, models.SubmissionStatusSubmitted, timeline.Assignments[1].Status)
	assert.Equal(t, 0.0, timeline.Assignments[1].Percentage)

	require.Len(t, timeline.Attendance, 2)
	assert.Equal(t, "2026-08-04T08:00:00Z", timeline.Attendance[0].Date)
	assert.Equal(t, "2026-08-11T08:00:00Z", timeline.Attendance[1].Date)
}

func TestTimelineServiceIncludesUnsubmittedAssignments(t *testing.T) {
	_, _, _, attendance, catalog := newProgressFixture()
	svc := NewTimelineService(&fakeEnrollmentRepo{}, &fakeSubmissionRepo{}, attendance, catalog, newTestCache(), nil, zap.NewNop(), time.Minute)

	timeline, _, err := svc.PerformanceTimeline(context.Background(), "stu-silent", "course-1")
	require.NoError(t, err)
	require.Len(t, timeline.Assignments, 2)
	for _, entry := range timeline.Assignments {
		assert.Equal(t, models.SubmissionStatusNotSubmitted, entry.Status)
		assert.Nil(t, entry.Grade)
		assert.Equal(t, 0.0, entry.Percentage)
	}
}
