package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/filedrop/filedrop/internal/model"
	"github.com/filedrop/filedrop/internal/repository"
	"github.com/filedrop/filedrop/internal/storage"
	"github.com/filedrop/filedrop/internal/validation"
)

var (
	// ErrFileNotFound covers both a nonexistent file and an ownership
	// mismatch, so callers cannot probe for other owners' files.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileName rejects empty rename targets.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrBlobMissing means the metadata row exists but the blob fetch failed:
	// a dangling reference, distinct from ErrFileNotFound.
	ErrBlobMissing = errors.New("stored blob missing")
)

const defaultContentType = "application/octet-stream"

// recentWindow is the lookback for the "recent uploads" stat.
const recentWindow = 7 * 24 * time.Hour

// FileService mediates between an owner identity, a display name, a storage
// key, and the two backing stores. Metadata rows are authoritative: a row is
// valid only while a blob exists at its stored key, and the two-step writes in
// Upload and Delete are not transactional.
type FileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// List returns the owner's files, newest first. A non-empty search term
// filters to names containing it case-insensitively. Stats cover the
// unfiltered set and are computed only when no search is active; the two
// views are mutually exclusive.
func (s *FileService) List(ctx context.Context, ownerID int64, search string) ([]model.File, *model.FileStats, error) {
	files, err := s.fileRepo.ByOwner(ownerID, search)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list files: %w", err)
	}

	if search != "" {
		return files, nil, nil
	}

	stats, err := s.fileRepo.Stats(ownerID, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute file stats: %w", err)
	}

	return files, stats, nil
}

// Upload writes the blob first, then the metadata row. A blob failure aborts
// with no row written. A row failure after a successful blob write leaves an
// orphaned blob behind; the orphan is logged and accepted, it is invisible to
// users and the row is the record of ownership.
func (s *FileService) Upload(ctx context.Context, ownerID int64, displayName, contentType string, body []byte) (*model.File, error) {
	if err := validation.ValidateFileName(displayName); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFileName, err)
	}
	displayName = strings.TrimSpace(displayName)

	now := time.Now()
	key := storageKey(ownerID, now, displayName)

	err := s.storage.Save(ctx, key, bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store blob: %w", err)
	}

	file := &model.File{
		OwnerID:      ownerID,
		OriginalName: displayName,
		StoredKey:    key,
		ContentType:  contentType,
		Size:         int64(len(body)),
		UploadedAt:   now,
	}

	err = s.fileRepo.Create(file)
	if err != nil {
		slog.Warn("file row insert failed after blob write, blob orphaned",
			"owner_id", ownerID, "stored_key", key, "error", err)
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return file, nil
}

// Rename changes the display name only; the stored key is immutable for the
// lifetime of the record.
func (s *FileService) Rename(ctx context.Context, ownerID, fileID int64, newName string) error {
	if err := validation.ValidateFileName(newName); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, err)
	}
	newName = strings.TrimSpace(newName)

	err := s.fileRepo.UpdateName(fileID, ownerID, newName)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Delete removes the blob best-effort, then the row unconditionally. Row
// deletion is the operation of record; a blob that is already gone, or a
// storage fault during cleanup, must not block it.
func (s *FileService) Delete(ctx context.Context, ownerID, fileID int64) error {
	file, err := s.fileRepo.ByIDAndOwner(fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to get file: %w", err)
	}

	err = s.storage.Delete(ctx, file.StoredKey)
	if err != nil {
		slog.Error("failed to delete blob from storage, continuing with row deletion",
			"owner_id", ownerID, "file_id", fileID, "stored_key", file.StoredKey, "error", err)
	}

	err = s.fileRepo.Delete(fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			// Lost a race with a concurrent delete of the same file.
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

// Download resolves the file by ownership-scoped lookup, then fetches the
// blob. A row without a fetchable blob is a data-integrity fault and surfaces
// as ErrBlobMissing, never as ErrFileNotFound.
func (s *FileService) Download(ctx context.Context, ownerID, fileID int64) (*model.File, []byte, string, error) {
	file, err := s.fileRepo.ByIDAndOwner(fileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil, nil, "", ErrFileNotFound
		}
		return nil, nil, "", fmt.Errorf("failed to get file: %w", err)
	}

	obj, err := s.storage.Get(ctx, file.StoredKey)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: %s", ErrBlobMissing, err)
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	return file, obj.Body, contentType, nil
}

// storageKey derives the blob key from the owner, the upload second, and the
// display name. Two uploads of the same name by the same owner within one
// second collide and the second blob overwrites the first. A random token
// would close that hole, but the derivation is kept for compatibility with
// the keys already in the bucket.
func storageKey(ownerID int64, at time.Time, displayName string) string {
	return fmt.Sprintf("%d/%d_%s", ownerID, at.Unix(), displayName)
}
