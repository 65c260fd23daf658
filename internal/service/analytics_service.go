package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/engine"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// AnalyticsService computes course-wide metrics from full record snapshots
// with cache integration.
type AnalyticsService struct {
	enrollments    EnrollmentRepository
	moduleProgress ModuleProgressRepository
	submissions    SubmissionReadRepository
	attendance     AttendanceRepository
	catalog        CatalogRepository
	cache          *CacheService
	metrics        *MetricsService
	logger         *zap.Logger
	cacheTTL       time.Duration
	now            func() time.Time
}

// NewAnalyticsService constructs an analytics service. The clock is injected
// so the enrollment trend window is deterministic under test.
func NewAnalyticsService(
	enrollments EnrollmentRepository,
	moduleProgress ModuleProgressRepository,
	submissions SubmissionReadRepository,
	attendance AttendanceRepository,
	catalog CatalogRepository,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
	cacheTTL time.Duration,
	now func() time.Time,
) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		enrollments:    enrollments,
		moduleProgress: moduleProgress,
		submissions:    submissions,
		attendance:     attendance,
		catalog:        catalog,
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		cacheTTL:       cacheTTL,
		now:            now,
	}
}

// CourseAnalytics aggregates every record stream of a course into course-wide
// metrics. The boolean indicates whether data originated from cache.
func (s *AnalyticsService) CourseAnalytics(ctx context.Context, courseID string) (*models.CourseAnalytics, bool, error) {
	cacheKey := makeCacheKey("analytics", courseID)
	var cached models.CourseAnalytics
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	enrollments, err := s.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list enrollments: %w", err)
	}
	moduleProgress, err := s.moduleProgress.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list module progress: %w", err)
	}
	submissions, err := s.submissions.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list submissions: %w", err)
	}
	attendance, err := s.attendance.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list attendance: %w", err)
	}
	modules, err := s.catalog.ListModules(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list modules: %w", err)
	}
	s.metrics.ObserveDBQuery("course_snapshot", time.Since(start))

	if err := engine.ValidateSubmissions(submissions); err != nil {
		return nil, false, err
	}
	if err := engine.ValidateAttendance(attendance); err != nil {
		return nil, false, err
	}

	analytics := engine.BuildCourseAnalytics(engine.CourseAnalyticsInput{
		CourseID:       courseID,
		Enrollments:    enrollments,
		ModuleProgress: moduleProgress,
		Submissions:    submissions,
		Attendance:     attendance,
		Modules:        modules,
	}, s.now())
	s.metrics.RecordAggregation("course_analytics")

	if err := s.cache.Set(ctx, cacheKey, analytics, s.cacheTTL); err != nil {
		s.logger.Warn("cache course analytics", zap.Error(err))
	}
	return &analytics, false, nil
}

// InvalidateCourse drops the cached analytics for a course.
func (s *AnalyticsService) InvalidateCourse(ctx context.Context, courseID string) error {
	return s.cache.Invalidate(ctx, makeCacheKey("analytics", courseID)+"*")
}

// SystemMetrics returns the instrumentation snapshot.
func (s *AnalyticsService) SystemMetrics() models.SystemMetrics {
	if s.metrics == nil {
		return models.SystemMetrics{}
	}
	return s.metrics.Snapshot()
}

func makeCacheKey(parts ...string) string {
	var builder strings.Builder
	builder.Grow(len(parts) * 16)
	builder.WriteString("metrics")
	for _, part := range parts {
		if part == "" {
			continue
		}
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}
