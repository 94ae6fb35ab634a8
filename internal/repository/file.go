package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/filedrop/filedrop/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrFileNotFound = errors.New("file not found")

// FileRepository is the metadata store for uploaded files. Every lookup that
// takes a file id also takes the owner id; an id alone never authorizes access,
// and an ownership mismatch is indistinguishable from nonexistence.
type FileRepository interface {
	Create(file *model.File) error
	ByIDAndOwner(id, ownerID int64) (*model.File, error)
	ByOwner(ownerID int64, search string) ([]model.File, error)
	Stats(ownerID int64, recentSince time.Time) (*model.FileStats, error)
	UpdateName(id, ownerID int64, name string) error
	Delete(id, ownerID int64) error
}

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *model.File) error {
	query := `INSERT INTO files (owner_id, original_name, stored_key, content_type, size, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	result, err := r.db.Exec(query,
		file.OwnerID,
		file.OriginalName,
		file.StoredKey,
		file.ContentType,
		file.Size,
		file.UploadedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err == nil {
		file.ID = id
	}

	return nil
}

func (r *fileRepository) ByIDAndOwner(id, ownerID int64) (*model.File, error) {
	file := &model.File{}
	query := `SELECT * FROM files WHERE id = $1 AND owner_id = $2`

	err := r.db.Get(file, query, id, ownerID)
	if err == sql.ErrNoRows {
		return nil, ErrFileNotFound
	}

	return file, err
}

func (r *fileRepository) ByOwner(ownerID int64, search string) ([]model.File, error) {
	files := []model.File{}

	if search == "" {
		query := `SELECT * FROM files WHERE owner_id = $1 ORDER BY uploaded_at DESC`
		err := r.db.Select(&files, query, ownerID)
		return files, err
	}

	query := `SELECT * FROM files WHERE owner_id = $1 AND LOWER(original_name) LIKE $2 ORDER BY uploaded_at DESC`
	pattern := "%" + strings.ToLower(search) + "%"

	err := r.db.Select(&files, query, ownerID, pattern)
	return files, err
}

func (r *fileRepository) Stats(ownerID int64, recentSince time.Time) (*model.FileStats, error) {
	stats := &model.FileStats{}
	query := `SELECT
	            COUNT(*) AS total_files,
	            COALESCE(SUM(size), 0) AS total_storage,
	            COALESCE(SUM(CASE WHEN uploaded_at >= $2 THEN 1 ELSE 0 END), 0) AS recent_files
	          FROM files WHERE owner_id = $1`

	err := r.db.Get(stats, query, ownerID, recentSince)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *fileRepository) UpdateName(id, ownerID int64, name string) error {
	query := `UPDATE files SET original_name = $1 WHERE id = $2 AND owner_id = $3`

	result, err := r.db.Exec(query, name, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFileNotFound
	}

	return nil
}

func (r *fileRepository) Delete(id, ownerID int64) error {
	query := `DELETE FROM files WHERE id = $1 AND owner_id = $2`

	result, err := r.db.Exec(query, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFileNotFound
	}

	return nil
}
