package jamaah

import (
	"context"
	"errors"
	"sync"

	"github.com/samira-travel/backoffice/docstore"
	"github.com/samira-travel/backoffice/logger"
)

// Get fetches one submission and resolves its document URLs. The record
// fetch is all-or-nothing; document resolution is per-field best-effort.
func (s *Service) Get(ctx context.Context, id string) (*SubmissionDetail, error) {
	subm, err := s.store.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, newErrJamaahNotFound()
		}
		return nil, newErrGateway(err)
	}

	return &SubmissionDetail{
		Submission: subm,
		Documents:  s.resolveDocuments(ctx, subm),
	}, nil
}

// resolveDocuments exchanges each stored document path for a download
// URL. The seven resolutions run concurrently and settle independently;
// a failed field is logged and omitted, never blocking its siblings.
func (s *Service) resolveDocuments(ctx context.Context, subm Submission) map[string]string {
	urls := make(map[string]string, len(DocumentFields))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, field := range DocumentFields {
		path := subm.DocumentPath(field)
		if path == "" {
			continue
		}
		wg.Add(1)
		go func(field, path string) {
			defer wg.Done()
			url, err := s.files.PresignedURL(ctx, path, DownloadURLDuration)
			if err != nil {
				logger.FromContext(ctx).Warn("failed to resolve document URL",
					"submission_id", subm.ID, "field", field, "error", err)
				return
			}
			mu.Lock()
			urls[field] = url
			mu.Unlock()
		}(field, path)
	}
	wg.Wait()

	return urls
}
