package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// CatalogRepository reads course structure: modules and assignment metadata.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs the repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListModules returns the modules of a course in catalog position order.
func (r *CatalogRepository) ListModules(ctx context.Context, courseID string) ([]models.CourseModule, error) {
	query := `SELECT id, course_id, title, position, created_at FROM course_modules WHERE course_id = $1 ORDER BY position ASC`
	modules := []models.CourseModule{}
	if err := r.db.SelectContext(ctx, &modules, query, courseID); err != nil {
		return nil, err
	}
	return modules, nil
}

// CountModules returns the number of modules in a course.
func (r *CatalogRepository) CountModules(ctx context.Context, courseID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM course_modules WHERE course_id = $1`, courseID); err != nil {
		return 0, err
	}
	return count, nil
}

const assignmentColumns = `id, course_id, title, points, due_date, late_penalty_per_day, created_at`

// ListAssignments returns a course's assignment metadata.
func (r *CatalogRepository) ListAssignments(ctx context.Context, courseID string) ([]models.AssignmentMeta, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE course_id = $1 ORDER BY created_at ASC`
	assignments := []models.AssignmentMeta{}
	if err := r.db.SelectContext(ctx, &assignments, query, courseID); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindAssignment returns one assignment's metadata by id.
func (r *CatalogRepository) FindAssignment(ctx context.Context, assignmentID string) (*models.AssignmentMeta, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	var assignment models.AssignmentMeta
	if err := r.db.GetContext(ctx, &assignment, query, assignmentID); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CountAssignments returns the number of assignments in a course.
func (r *CatalogRepository) CountAssignments(ctx context.Context, courseID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM assignments WHERE course_id = $1`, courseID); err != nil {
		return 0, err
	}
	return count, nil
}
