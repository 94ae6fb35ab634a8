package model

import (
	"time"
)

// File is the metadata row for one uploaded blob. The bytes live in object
// storage under StoredKey; StoredKey never changes after the row is created,
// renames touch OriginalName only.
type File struct {
	ID           int64     `db:"id"`
	OwnerID      int64     `db:"owner_id"`
	OriginalName string    `db:"original_name"`
	StoredKey    string    `db:"stored_key"`
	ContentType  string    `db:"content_type"`
	Size         int64     `db:"size"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

// FileStats aggregates an owner's unfiltered file set.
type FileStats struct {
	TotalFiles   int64 `db:"total_files"`
	TotalStorage int64 `db:"total_storage"`
	RecentFiles  int64 `db:"recent_files"`
}
