package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

// AttendanceRepository reads session attendance marks.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `student_id, course_id, module_id, status, marked_at`

// ListByStudentAndCourse returns a student's attendance marks within a course.
func (r *AttendanceRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID string) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE student_id = $1 AND course_id = $2 ORDER BY marked_at ASC`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, studentID, courseID); err != nil {
		return nil, err
	}
	return records, nil
}

// ListByCourse returns every attendance mark for a course. Order follows the
// insertion sequence so per-student summaries keep first-appearance ordering.
func (r *AttendanceRepository) ListByCourse(ctx context.Context, courseID string) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE course_id = $1 ORDER BY id ASC`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, courseID); err != nil {
		return nil, err
	}
	return records, nil
}
