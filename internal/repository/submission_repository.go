package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// SubmissionRepository reads and grades assignment submissions.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `student_id, course_id, assignment_id, status, grade, adjusted_grade, is_late, days_late, submitted_at, graded_at`

// FindByStudentAndAssignment returns the submission for a (student, assignment) pair.
func (r *SubmissionRepository) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*models.SubmissionRecord, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE student_id = $1 AND assignment_id = $2`
	var record models.SubmissionRecord
	if err := r.db.GetContext(ctx, &record, query, studentID, assignmentID); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByStudentAndCourse returns a student's submissions within a course.
func (r *SubmissionRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.SubmissionRecord, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE student_id = $1 AND course_id = $2`
	records := []models.SubmissionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, studentID, courseID); err != nil {
		return nil, err
	}
	return records, nil
}

// ListByCourse returns every submission for a course.
func (r *SubmissionRepository) ListByCourse(ctx context.Context, courseID string) ([]models.SubmissionRecord, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE course_id = $1`
	records := []models.SubmissionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, courseID); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateGrade persists the outcome of grading a submission: the raw grade,
// the stored adjusted grade, the new status and the grading timestamp.
func (r *SubmissionRepository) UpdateGrade(ctx context.Context, studentID, assignmentID string, grade, adjustedGrade float64, status models.SubmissionStatus, gradedAt string) error {
	query := `UPDATE submissions
		SET grade = $1, adjusted_grade = $2, status = $3, graded_at = $4
		WHERE student_id = $5 AND assignment_id = $6`
	result, err := r.db.ExecContext(ctx, query, grade, adjustedGrade, status, gradedAt, studentID, assignmentID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
