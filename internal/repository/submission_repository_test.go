package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/futuraise-gif/FuturaAIse-Academy-sub001/internal/models"
)

func TestSubmissionRepositoryListByStudentAndCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "course_id", "assignment_id", "status", "grade", "adjusted_grade", "is_late", "days_late", "submitted_at", "graded_at"}).
		AddRow("stu-1", "course-1", "asg-1", models.SubmissionStatusGraded, 90.0, 81.0, true, 1, "2026-08-05T09:00:00Z", "2026-08-06T12:00:00Z").
		AddRow("stu-1", "course-1", "asg-2", models.SubmissionStatusSubmitted, nil, nil, false, nil, "2026-08-07T09:00:00Z", nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_id, course_id, assignment_id, status, grade, adjusted_grade, is_late, days_late, submitted_at, graded_at FROM submissions WHERE student_id = $1 AND course_id = $2")).
		WithArgs("stu-1", "course-1").
		WillReturnRows(rows)

	records, err := repo.ListByStudentAndCourse(context.Background(), "stu-1", "course-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].AdjustedGrade)
	require.Equal(t, 81.0, *records[0].AdjustedGrade)
	require.Nil(t, records[1].Grade)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryUpdateGrade(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE submissions")).
		WithArgs(90.0, 81.0, models.SubmissionStatusGraded, "2026-08-06T12:00:00Z", "stu-1", "asg-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateGrade(context.Background(), "stu-1", "asg-1", 90.0, 81.0, models.SubmissionStatusGraded, "2026-08-06T12:00:00Z")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryUpdateGradeMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE submissions")).
		WithArgs(50.0, 50.0, models.SubmissionStatusGraded, "2026-08-06T12:00:00Z", "stu-9", "asg-9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateGrade(context.Background(), "stu-9", "asg-9", 50.0, 50.0, models.SubmissionStatusGraded, "2026-08-06T12:00:00Z")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
