// Package jamaah holds the submission domain: the records travel-agency
// staff review in the back office, their document scans, and the intake
// write path.
package jamaah

import (
	"context"
	"time"
)

// Collection is the document-store collection holding submissions.
const Collection = "jamaah_submissions"

// DownloadURLDuration bounds how long a resolved document URL stays valid.
const DownloadURLDuration = 10 * time.Minute

// SubmissionStore is the slice of the document gateway this service needs.
type SubmissionStore interface {
	ListSubmissions(ctx context.Context) ([]Submission, error)
	GetSubmission(ctx context.Context, id string) (Submission, error)
	CreateSubmission(ctx context.Context, subm Submission) (string, error)
}

// FileStore is the slice of the object store this service needs.
type FileStore interface {
	PresignedURL(ctx context.Context, key string, duration time.Duration) (string, error)
	Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error)
}

// EventNotifier announces accepted submissions to interested staff
// channels. Best-effort: failures are logged, never surfaced.
type EventNotifier interface {
	NewSubmission(ctx context.Context, id string, subm Submission) error
}

type Service struct {
	store    SubmissionStore
	files    FileStore
	notifier EventNotifier // nil disables events
}

func NewService(store SubmissionStore, files FileStore, notifier EventNotifier) *Service {
	return &Service{
		store:    store,
		files:    files,
		notifier: notifier,
	}
}
