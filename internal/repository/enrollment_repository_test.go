package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEnrollmentRepositoryFindByStudentAndCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "course_id", "status", "progress_percent", "enrolled_at", "last_accessed_at", "completed_at"}).
		AddRow("stu-1", "course-1", models.EnrollmentStatusActive, 42.5, "2026-08-01T08:00:00Z", "2026-08-20T10:15:00Z", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_id, course_id, status, progress_percent, enrolled_at, last_accessed_at, completed_at FROM enrollments WHERE student_id = $1 AND course_id = $2")).
		WithArgs("stu-1", "course-1").
		WillReturnRows(rows)

	record, err := repo.FindByStudentAndCourse(context.Background(), "stu-1", "course-1")
	require.NoError(t, err)
	require.Equal(t, "stu-1", record.StudentID)
	require.Equal(t, "2026-08-01T08:00:00Z", record.EnrolledAt)
	require.Nil(t, record.CompletedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListByCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "course_id", "status", "progress_percent", "enrolled_at", "last_accessed_at", "completed_at"}).
		AddRow("stu-1", "course-1", models.EnrollmentStatusActive, 10.0, "2026-08-01T08:00:00Z", "2026-08-02T08:00:00Z", nil).
		AddRow("stu-2", "course-1", models.EnrollmentStatusCompleted, 100.0, "2026-08-03T08:00:00Z", "2026-08-10T08:00:00Z", "2026-08-10T08:00:00Z")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_id, course_id, status, progress_percent, enrolled_at, last_accessed_at, completed_at FROM enrollments WHERE course_id = $1 ORDER BY enrolled_at ASC")).
		WithArgs("course-1").
		WillReturnRows(rows)

	records, err := repo.ListByCourse(context.Background(), "course-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, models.EnrollmentStatusCompleted, records[1].Status)
	require.NotNil(t, records[1].CompletedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
