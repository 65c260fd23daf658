package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// EnrollmentRepository reads enrollment records for the aggregation engine.
// Timestamp columns are stored as ISO-8601 text and surfaced unmodified.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = `student_id, course_id, status, progress_percent, enrolled_at, last_accessed_at, completed_at`

// FindByStudentAndCourse returns the single enrollment for a (student, course) pair.
func (r *EnrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID string) (*models.EnrollmentRecord, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE student_id = $1 AND course_id = $2`
	var record models.EnrollmentRecord
	if err := r.db.GetContext(ctx, &record, query, studentID, courseID); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByCourse returns every enrollment for a course.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.EnrollmentRecord, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE course_id = $1 ORDER BY enrolled_at ASC`
	records := []models.EnrollmentRecord{}
	if err := r.db.SelectContext(ctx, &records, query, courseID); err != nil {
		return nil, err
	}
	return records, nil
}
