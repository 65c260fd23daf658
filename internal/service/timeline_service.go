package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/engine"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// TimelineService builds chronological performance views for one student in
// one course.
type TimelineService struct {
	enrollments EnrollmentRepository
	submissions SubmissionReadRepository
	attendance  AttendanceRepository
	catalog     CatalogRepository
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewTimelineService constructs a timeline service.
func NewTimelineService(
	enrollments EnrollmentRepository,
	submissions SubmissionReadRepository,
	attendance AttendanceRepository,
	catalog CatalogRepository,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *TimelineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimelineService{
		enrollments: enrollments,
		submissions: submissions,
		attendance:  attendance,
		catalog:     catalog,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// PerformanceTimeline returns the student's per-assignment and attendance
// history within a course. Every catalog assignment appears, whether or not
// the student submitted.
func (s *TimelineService) PerformanceTimeline(ctx context.Context, studentID, courseID string) (*models.PerformanceTimeline, bool, error) {
	cacheKey := makeCacheKey("timeline", courseID, studentID)
	var cached models.PerformanceTimeline
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	assignments, err := s.catalog.ListAssignments(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list assignments: %w", err)
	}
	submissions, err := s.submissions.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list submissions: %w", err)
	}
	attendance, err := s.attendance.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list attendance: %w", err)
	}
	s.metrics.ObserveDBQuery("timeline_snapshot", time.Since(start))

	if err := engine.ValidateSubmissions(submissions); err != nil {
		return nil, false, err
	}
	if err := engine.ValidateAttendance(attendance); err != nil {
		return nil, false, err
	}

	timeline := engine.BuildPerformanceTimeline(engine.TimelineInput{
		StudentID:   studentID,
		CourseID:    courseID,
		Assignments: assignments,
		Submissions: submissions,
		Attendance:  attendance,
	})
	s.metrics.RecordAggregation("timeline")

	if err := s.cache.Set(ctx, cacheKey, timeline, s.cacheTTL); err != nil {
		s.logger.Warn("cache performance timeline", zap.Error(err))
	}
	return &timeline, false, nil
}

// InvalidateCourse drops cached timelines for a course.
func (s *TimelineService) InvalidateCourse(ctx context.Context, courseID string) error {
	return s.cache.Invalidate(ctx, makeCacheKey("timeline", courseID)+"*")
}
