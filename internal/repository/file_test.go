package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/filedrop/filedrop/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var fileColumns = []string{"id", "owner_id", "original_name", "stored_key", "content_type", "size", "uploaded_at"}

func TestFileCreateAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	uploadedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO files`)).
		WithArgs(int64(1), "a.txt", "1/100_a.txt", "text/plain", int64(2), uploadedAt).
		WillReturnResult(sqlmock.NewResult(7, 1))

	file := &model.File{
		OwnerID:      1,
		OriginalName: "a.txt",
		StoredKey:    "1/100_a.txt",
		ContentType:  "text/plain",
		Size:         2,
		UploadedAt:   uploadedAt,
	}
	require.NoError(t, repo.Create(file))
	assert.Equal(t, int64(7), file.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileByIDAndOwnerScopesByBoth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM files WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(7, 1, "a.txt", "1/100_a.txt", "text/plain", 2, time.Now()))

	file, err := repo.ByIDAndOwner(7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), file.ID)
	assert.Equal(t, "1/100_a.txt", file.StoredKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileByIDAndOwnerNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM files WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(7), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ByIDAndOwner(7, 2)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileByOwnerOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM files WHERE owner_id = $1 ORDER BY uploaded_at DESC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(2, 1, "new.txt", "1/200_new.txt", "", 1, time.Now()).
			AddRow(1, 1, "old.txt", "1/100_old.txt", "", 1, time.Now().Add(-time.Hour)))

	files, err := repo.ByOwner(1, "")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "new.txt", files[0].OriginalName)
}

func TestFileByOwnerSearchLowercasesPattern(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM files WHERE owner_id = $1 AND LOWER(original_name) LIKE $2 ORDER BY uploaded_at DESC`)).
		WithArgs(int64(1), "%march%").
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(1, 1, "Invoice_March.pdf", "1/100_Invoice_March.pdf", "application/pdf", 3, time.Now()))

	files, err := repo.ByOwner(1, "MARCH")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	since := time.Now().Add(-7 * 24 * time.Hour)
	mock.ExpectQuery("COUNT").
		WithArgs(int64(1), since).
		WillReturnRows(sqlmock.NewRows([]string{"total_files", "total_storage", "recent_files"}).
			AddRow(3, 60, 3))

	stats, err := repo.Stats(1, since)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalFiles)
	assert.Equal(t, int64(60), stats.TotalStorage)
	assert.Equal(t, int64(3), stats.RecentFiles)
}

func TestFileUpdateNameReportsNotFoundOnZeroRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE files SET original_name = $1 WHERE id = $2 AND owner_id = $3`)).
		WithArgs("b.txt", int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateName(7, 2, "b.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileUpdateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE files SET original_name = $1 WHERE id = $2 AND owner_id = $3`)).
		WithArgs("b.txt", int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateName(7, 1, "b.txt"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileDeleteReportsNotFoundOnZeroRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM files WHERE id = $1 AND owner_id = $2`)).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(7, 2)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileDeletePropagatesStorageFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM files`)).
		WithArgs(int64(7), int64(1)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Delete(7, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileNotFound)
}
