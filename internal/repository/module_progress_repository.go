package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// ModuleProgressRepository reads per-module progress records.
type ModuleProgressRepository struct {
	db *sqlx.DB
}

// NewModuleProgressRepository constructs the repository.
func NewModuleProgressRepository(db *sqlx.DB) *ModuleProgressRepository {
	return &ModuleProgressRepository{db: db}
}

const moduleProgressColumns = `student_id, module_id, course_id, progress_percent, completed_at, time_spent_minutes`

// ListByStudentAndCourse returns a student's progress records within a course.
func (r *ModuleProgressRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.ModuleProgressRecord, error) {
	query := `SELECT ` + moduleProgressColumns + ` FROM module_progress WHERE student_id = $1 AND course_id = $2`
	records := []models.ModuleProgressRecord{}
	if err := r.db.SelectContext(ctx, &records, query, studentID, courseID); err != nil {
		return nil, err
	}
	return records, nil
}

// ListByCourse returns every progress record for a course.
func (r *ModuleProgressRepository) ListByCourse(ctx context.Context, courseID string) ([]models.ModuleProgressRecord, error) {
	query := `SELECT ` + moduleProgressColumns + ` FROM module_progress WHERE course_id = $1`
	records := []models.ModuleProgressRecord{}
	if err := r.db.SelectContext(ctx, &records, query, courseID); err != nil {
		return nil, err
	}
	return records, nil
}
