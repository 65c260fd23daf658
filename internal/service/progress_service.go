package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/engine"
	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
	appErrors "github.com/futuraise-gif/FuturaAIse-Academy-sub001/pkg/errors"
)

// EnrollmentRepository describes enrollment reads required by the services.
type EnrollmentRepository interface {
	FindByStudentAndCourse(ctx context.Context, studentID, courseID string) (*models.EnrollmentRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.EnrollmentRecord, error)
}

// ModuleProgressRepository describes module progress reads.
type ModuleProgressRepository interface {
	ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.ModuleProgressRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.ModuleProgressRecord, error)
}

// SubmissionReadRepository describes submission reads.
type SubmissionReadRepository interface {
	ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.SubmissionRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.SubmissionRecord, error)
}

// AttendanceRepository describes attendance reads.
type AttendanceRepository interface {
	ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.AttendanceRecord, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.AttendanceRecord, error)
}

// CatalogRepository describes course structure reads.
type CatalogRepository interface {
	ListModules(ctx context.Context, courseID string) ([]models.CourseModule, error)
	CountModules(ctx context.Context, courseID string) (int, error)
	ListAssignments(ctx context.Context, courseID string) ([]models.AssignmentMeta, error)
	FindAssignment(ctx context.Context, assignmentID string) (*models.AssignmentMeta, error)
	CountAssignments(ctx context.Context, courseID string) (int, error)
}

// ProgressService computes per-student and course-wide progress snapshots
// with cache integration.
type ProgressService struct {
	enrollments    EnrollmentRepository
	moduleProgress ModuleProgressRepository
	submissions    SubmissionReadRepository
	attendance     AttendanceRepository
	catalog        CatalogRepository
	cache          *CacheService
	metrics        *MetricsService
	logger         *zap.Logger
	cacheTTL       time.Duration
	workers        int
}

// NewProgressService constructs a progress service. workers bounds the
// per-student fan-out of course-wide computations.
func NewProgressService(
	enrollments EnrollmentRepository,
	moduleProgress ModuleProgressRepository,
	submissions SubmissionReadRepository,
	attendance AttendanceRepository,
	catalog CatalogRepository,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
	cacheTTL time.Duration,
	workers int,
) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = 8
	}
	return &ProgressService{
		enrollments:    enrollments,
		moduleProgress: moduleProgress,
		submissions:    submissions,
		attendance:     attendance,
		catalog:        catalog,
		cache:          cache,
		metrics:        metrics,
		logger:         logger,
		cacheTTL:       cacheTTL,
		workers:        workers,
	}
}

// StudentProgress aggregates one student's records within a course. The
// boolean indicates whether the snapshot originated from cache.
func (s *ProgressService) StudentProgress(ctx context.Context, studentID, courseID string) (*models.StudentProgress, bool, error) {
	cacheKey := makeCacheKey("progress", courseID, studentID)
	var cached models.StudentProgress
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	enrollment, err := s.findEnrollment(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}

	progress, err := s.buildStudentProgress(ctx, *enrollment)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Set(ctx, cacheKey, progress, s.cacheTTL); err != nil {
		s.logger.Warn("cache student progress", zap.Error(err))
	}
	return progress, false, nil
}

// CourseProgress aggregates progress for every enrolled student of a course,
// in enrollment order. Per-student computation fans out across a bounded
// worker pool.
func (s *ProgressService) CourseProgress(ctx context.Context, courseID string) ([]models.StudentProgress, bool, error) {
	cacheKey := makeCacheKey("progress", courseID, "all")
	var cached []models.StudentProgress
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	start := time.Now()
	enrollments, err := s.enrollments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, fmt.Errorf("list enrollments: %w", err)
	}
	s.metrics.ObserveDBQuery("enrollments_by_course", time.Since(start))

	results := make([]models.StudentProgress, len(enrollments))
	indexes := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	workers := s.workers
	if workers > len(enrollments) {
		workers = len(enrollments)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				progress, buildErr := s.buildStudentProgress(ctx, enrollments[idx])
				if buildErr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = buildErr
					}
					mu.Unlock()
					continue
				}
				results[idx] = *progress
			}
		}()
	}
	for idx := range enrollments {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, false, firstErr
	}

	if err := s.cache.Set(ctx, cacheKey, results, s.cacheTTL); err != nil {
		s.logger.Warn("cache course progress", zap.Error(err))
	}
	return results, false, nil
}

// InvalidateCourse drops every cached snapshot derived from the course's
// records. Grading and record mutations call this.
func (s *ProgressService) InvalidateCourse(ctx context.Context, courseID string) error {
	return s.cache.Invalidate(ctx, makeCacheKey("progress", courseID)+"*")
}

func (s *ProgressService) findEnrollment(ctx context.Context, studentID, courseID string) (*models.EnrollmentRecord, error) {
	start := time.Now()
	enrollment, err := s.enrollments.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("enrollment not found for student %s in course %s", studentID, courseID))
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	s.metrics.ObserveDBQuery("enrollment_by_student", time.Since(start))
	return enrollment, nil
}

func (s *ProgressService) buildStudentProgress(ctx context.Context, enrollment models.EnrollmentRecord) (*models.StudentProgress, error) {
	if err := engine.ValidateEnrollment(enrollment); err != nil {
		return nil, err
	}

	studentID, courseID := enrollment.StudentID, enrollment.CourseID

	moduleProgress, err := s.moduleProgress.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list module progress: %w", err)
	}
	submissions, err := s.submissions.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if err := engine.ValidateSubmissions(submissions); err != nil {
		return nil, err
	}
	attendance, err := s.attendance.ListByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if err := engine.ValidateAttendance(attendance); err != nil {
		return nil, err
	}
	totalModules, err := s.catalog.CountModules(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count modules: %w", err)
	}
	totalAssignments, err := s.catalog.CountAssignments(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}

	progress := engine.BuildStudentProgress(engine.StudentProgressInput{
		Enrollment:       enrollment,
		ModuleProgress:   moduleProgress,
		Submissions:      submissions,
		Attendance:       attendance,
		TotalModules:     totalModules,
		TotalAssignments: totalAssignments,
	})
	s.metrics.RecordAggregation("student_progress")
	return &progress, nil
}
