package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/dto"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
)

type fakeGradeRepo struct {
	submission *models.SubmissionRecord

	updatedGrade    float64
	updatedAdjusted float64
	updatedStatus   models.SubmissionStatus
	updatedAt       string
	updateCalls     int
}

func (f *fakeGradeRepo) FindByStudentAndAssignment(_ context.Context, _, _ string) (*models.SubmissionRecord, error) {
	if f.submission == nil {
		return nil, sql.ErrNoRows
	}
	return f.submission, nil
}

func (f *fakeGradeRepo) UpdateGrade(_ context.Context, _, _ string, grade, adjustedGrade float64, status models.SubmissionStatus, gradedAt string) error {
	f.updateCalls++
	f.updatedGrade = grade
	f.updatedAdjusted = adjustedGrade
	f.updatedStatus = status
	f.updatedAt = gradedAt
	return nil
}

type spyInvalidator struct {
	courses []string
}

func (s *spyInvalidator) InvalidateCourse(_ context.Context, courseID string) error {
	s.courses = append(s.courses, courseID)
	return nil
}

func gradingFixture(sub *models.SubmissionRecord) (*fakeGradeRepo, *fakeCatalogRepo, *spyInvalidator, *GradingService) {
	repo := &fakeGradeRepo{submission: sub}
	catalog := &fakeCatalogRepo{
		assignments: []models.AssignmentMeta{
			{ID: "asg-1", CourseID: "course-1", Title: "Essay", Points: 100, DueDate: "2026-08-05T23:59:59Z", LatePenaltyPerDay: 10, CreatedAt: "2026-07-03T00:00:00Z"},
		},
	}
	spy := &spyInvalidator{}
	fixedNow := func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	svc := NewGradingService(repo, catalog, []CourseInvalidator{spy}, nil, nil, zap.NewNop(), fixedNow)
	return repo, catalog, spy, svc
}

func TestGradingServiceOnTimeSubmission(t *testing.T) {
	repo, _, spy, svc := gradingFixture(&models.SubmissionRecord{
		StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1",
		Status: models.SubmissionStatusSubmitted, SubmittedAt: "2026-08-05T09:00:00Z",
	})

	resp, err := svc.Grade(context.Background(), "course-1", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-1", Grade: 88})
	require.NoError(t, err)
	assert.Equal(t, 88.0, resp.Grade)
	assert.Equal(t, 88.0, resp.AdjustedGrade)
	assert.Equal(t, "2026-08-31T12:00:00Z", resp.GradedAt)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, models.SubmissionStatusGraded, repo.updatedStatus)
	assert.Equal(t, []string{"course-1"}, spy.courses)
}

func TestGradingServiceLatePenaltyApplied(t *testing.T) {
	repo, _, _, svc := gradingFixture(&models.SubmissionRecord{
		StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1",
		Status: models.SubmissionStatusLate, IsLate: true, DaysLate: testInt(2), SubmittedAt: "2026-08-07T09:00:00Z",
	})

	resp, err := svc.Grade(context.Background(), "course-1", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-1", Grade: 100})
	require.NoError(t, err)
	// 10% per day for 2 days deducts 20 points.
	assert.Equal(t, 80.0, resp.AdjustedGrade)
	assert.Equal(t, 80.0, repo.updatedAdjusted)
	assert.Equal(t, 100.0, repo.updatedGrade)
}

func TestGradingServicePenaltyClampedAtZero(t *testing.T) {
	_, _, _, svc := gradingFixture(&models.SubmissionRecord{
		StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1",
		Status: models.SubmissionStatusLate, IsLate: true, DaysLate: testInt(50), SubmittedAt: "2026-09-30T09:00:00Z",
	})

	resp, err := svc.Grade(context.Background(), "course-1", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-1", Grade: 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.AdjustedGrade)
}

func TestGradingServiceUnsubmittedConflict(t *testing.T) {
	_, _, _, svc := gradingFixture(&models.SubmissionRecord{
		StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1",
		Status: models.SubmissionStatusNotSubmitted,
	})

	_, err := svc.Grade(context.Background(), "course-1", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-1", Grade: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestGradingServiceWrongCourse(t *testing.T) {
	_, _, _, svc := gradingFixture(&models.SubmissionRecord{
		StudentID: "stu-1", CourseID: "course-1", AssignmentID: "asg-1",
		Status: models.SubmissionStatusSubmitted,
	})

	_, err := svc.Grade(context.Background(), "course-other", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-1", Grade: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGradingServiceMissingSubmission(t *testing.T) {
	_, _, _, svc := gradingFixture(nil)

	_, err := svc.Grade(context.Background(), "course-1", "asg-1", dto.GradeSubmissionRequest{StudentID: "stu-9", Grade: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
