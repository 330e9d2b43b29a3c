package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadStatus is the lifecycle state of a tracked upload.
type UploadStatus string

const (
	StatusUploading  UploadStatus = "uploading"
	StatusProcessing UploadStatus = "processing"
	StatusCompleted  UploadStatus = "completed"
	StatusError      UploadStatus = "error"
)

// IsTerminal reports whether no further automatic transition occurs.
func (s UploadStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// CanTransition reports whether the status machine permits moving from s to
// next. The path is one-directional (uploading → processing → completed) and
// any non-terminal state may fail into error. There is no recovery transition;
// retrying means creating a new upload.
func (s UploadStatus) CanTransition(next UploadStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case StatusError:
		return true
	case StatusProcessing:
		return s == StatusUploading
	case StatusCompleted:
		return s == StatusProcessing
	default:
		return false
	}
}

// Upload tracks one file through its whole upload lifecycle. One upload is
// one entity: it is created the instant the user picks the file, mutated in
// place as the transfer advances, and removed only by explicit user action.
type Upload struct {
	ID          string
	Filename    string
	Path        string
	Size        int64
	ContentType string
	Status      UploadStatus
	Progress    int // 0..100, visual; monotonically non-decreasing
	Error       string
	DocumentID  string // server-assigned once persisted
	Duplicate   bool
	CreatedAt   time.Time
}

// NewUpload creates a pending upload with a fresh client-generated id.
// Ids are UUIDs and never reused within a session.
func NewUpload(filename, path, contentType string, size int64) *Upload {
	return &Upload{
		ID:          uuid.NewString(),
		Filename:    filename,
		Path:        path,
		Size:        size,
		ContentType: contentType,
		Status:      StatusUploading,
		Progress:    0,
		CreatedAt:   time.Now(),
	}
}
