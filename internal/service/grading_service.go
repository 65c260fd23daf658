package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/dto"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/engine"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
)

// SubmissionGradeRepository describes the submission reads and writes used by
// grading.
type SubmissionGradeRepository interface {
	FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*models.SubmissionRecord, error)
	UpdateGrade(ctx context.Context, studentID, assignmentID string, grade, adjustedGrade float64, status models.SubmissionStatus, gradedAt string) error
}

// CourseInvalidator drops cached snapshots derived from a course's records.
type CourseInvalidator interface {
	InvalidateCourse(ctx context.Context, courseID string) error
}

// GradingService applies instructor grades to submissions. The late-penalty
// adjustment happens here, exactly once per grading, and the adjusted grade
// is stored. Later penalty configuration changes never rewrite stored grades.
type GradingService struct {
	submissions  SubmissionGradeRepository
	catalog      CatalogRepository
	invalidators []CourseInvalidator
	validator    *validator.Validate
	metrics      *MetricsService
	logger       *zap.Logger
	now          func() time.Time
}

// NewGradingService constructs a grading service.
func NewGradingService(submissions SubmissionGradeRepository, catalog CatalogRepository, invalidators []CourseInvalidator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, now func() time.Time) *GradingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &GradingService{
		submissions:  submissions,
		catalog:      catalog,
		invalidators: invalidators,
		validator:    validate,
		metrics:      metrics,
		logger:       logger,
		now:          now,
	}
}

// Grade stores the raw grade and its late-adjusted value for a submission.
func (s *GradingService) Grade(ctx context.Context, courseID, assignmentID string, req dto.GradeSubmissionRequest) (*dto.GradeSubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}

	assignment, err := s.catalog.FindAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("assignment %s not found", assignmentID))
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	if assignment.CourseID != courseID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("assignment %s not found in course %s", assignmentID, courseID))
	}

	submission, err := s.submissions.FindByStudentAndAssignment(ctx, req.StudentID, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("submission not found for student %s on assignment %s", req.StudentID, assignmentID))
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	if submission.Status == models.SubmissionStatusNotSubmitted {
		return nil, appErrors.Clone(appErrors.ErrConflict, "submission has not been handed in yet")
	}

	daysLate := 0
	if submission.DaysLate != nil {
		daysLate = *submission.DaysLate
	}
	adjusted := engine.AdjustGrade(req.Grade, submission.IsLate, daysLate, assignment.LatePenaltyPerDay)

	gradedAt := s.now().UTC().Format(time.RFC3339)
	if err := s.submissions.UpdateGrade(ctx, req.StudentID, assignmentID, req.Grade, adjusted, models.SubmissionStatusGraded, gradedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("submission not found for student %s on assignment %s", req.StudentID, assignmentID))
		}
		return nil, fmt.Errorf("update grade: %w", err)
	}
	s.metrics.RecordAggregation("grading")

	for _, invalidator := range s.invalidators {
		if err := invalidator.InvalidateCourse(ctx, courseID); err != nil {
			s.logger.Warn("invalidate course caches", zap.String("course_id", courseID), zap.Error(err))
		}
	}

	return &dto.GradeSubmissionResponse{
		StudentID:     req.StudentID,
		AssignmentID:  assignmentID,
		Grade:         req.Grade,
		AdjustedGrade: adjusted,
		Status:        string(models.SubmissionStatusGraded),
		GradedAt:      gradedAt,
	}, nil
}
