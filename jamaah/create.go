package jamaah

import (
	"context"

	"github.com/samira-travel/backoffice/logger"
)

// Create inserts a new submission and returns its generated identifier.
// No back-office screen calls this yet; it exists for the intake side.
// The new-submission event is best-effort: a queue failure is logged and
// the create still succeeds. Not idempotent — a retried call duplicates.
func (s *Service) Create(ctx context.Context, subm Submission) (string, error) {
	subm.ID = "" // assigned by the store
	id, err := s.store.CreateSubmission(ctx, subm)
	if err != nil {
		return "", newErrGateway(err)
	}

	if s.notifier != nil {
		if err := s.notifier.NewSubmission(ctx, id, subm); err != nil {
			logger.FromContext(ctx).Warn("failed to announce new submission",
				"submission_id", id, "error", err)
		}
	}

	return id, nil
}
