package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/kidanta/kidanta-center/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func studentRows(students ...models.Student) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "full_name", "age", "gender", "notes", "created_by", "created_at", "updated_at"})
	for _, s := range students {
		rows.AddRow(s.ID, s.FullName, s.Age, s.Gender, s.Notes, s.CreatedBy, time.Now(), time.Now())
	}
	return rows
}

func TestStudentRepositoryListNoFilter(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, age, gender, notes, created_by, created_at, updated_at FROM students ORDER BY full_name ASC")).
		WillReturnRows(studentRows(models.Student{ID: "s1", FullName: "เด็กหนึ่ง", Age: 7}))

	students, err := repo.List(context.Background(), models.StudentFilter{})
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "เด็กหนึ่ง", students[0].FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListSearchLowercasesTerm(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(full_name) LIKE $1 ORDER BY full_name ASC")).
		WithArgs("%ann%").
		WillReturnRows(studentRows())

	_, err := repo.List(context.Background(), models.StudentFilter{Search: "Ann"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO students")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	student := &models.Student{FullName: "น้องดี", Age: 8}
	require.NoError(t, repo.Create(context.Background(), student))
	require.NotEmpty(t, student.ID)
	require.False(t, student.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteExistingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "s1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewStudentRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.NoError(t, mock.ExpectationsWereMet())
}
