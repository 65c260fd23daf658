package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/engine"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// AttendanceService summarises attendance records per student and per course.
type AttendanceService struct {
	attendance AttendanceRepository
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewAttendanceService constructs an attendance service.
func NewAttendanceService(attendance AttendanceRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cacheTTL time.Duration) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, cache: cache, metrics: metrics, logger: logger, cacheTTL: cacheTTL}
}

// StudentStats returns attendance statistics for one student within a course.
// A student with no records yields a zero-valued summary, not an error.
func (s *AttendanceService) StudentStats(ctx context.Context, studentID, courseID string) (*models.AttendanceStats, bool, error) {
	cacheKey := makeCacheKey("attendance", courseID, studentID)
	var cached models.AttendanceStats
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	records, err := s.attendance.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list attendance: %w", err)
	}
	s.metrics.ObserveDBQuery("attendance_by_student", time.Since(start))

	if err := engine.ValidateAttendance(records); err != nil {
		return nil, false, err
	}

	stats := engine.SummarizeStudentAttendance(studentID, courseID, records)
	s.metrics.RecordAggregation("attendance")

	if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
		s.logger.Warn("cache attendance stats", zap.Error(err))
	}
	return &stats, false, nil
}

// CourseSummary returns one attendance line per student of a course, in
// first-appearance order of the course's records.
func (s *AttendanceService) CourseSummary(ctx context.Context, courseID string) (*models.CourseAttendanceSummary, bool, error) {
	cacheKey := makeCacheKey("attendance", courseID, "summary")
	var cached models.CourseAttendanceSummary
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	records, err := s.attendance.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list attendance: %w", err)
	}
	s.metrics.ObserveDBQuery("attendance_by_course", time.Since(start))

	if err := engine.ValidateAttendance(records); err != nil {
		return nil, false, err
	}

	summary := engine.SummarizeCourseAttendance(courseID, records)
	s.metrics.RecordAggregation("attendance")

	if err := s.cache.Set(ctx, cacheKey, summary, s.cacheTTL); err != nil {
		s.logger.Warn("cache attendance summary", zap.Error(err))
	}
	return &summary, false, nil
}

// InvalidateCourse drops cached attendance summaries for a course.
func (s *AttendanceService) InvalidateCourse(ctx context.Context, courseID string) error {
	return s.cache.Invalidate(ctx, makeCacheKey("attendance", courseID)+"*")
}
