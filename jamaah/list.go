package jamaah

import (
	"context"
	"strings"
)

// List returns every submission in the collection. One round-trip, whole
// result or error; filtering happens afterwards as a pure derivation.
func (s *Service) List(ctx context.Context) ([]Submission, error) {
	subs, err := s.store.ListSubmissions(ctx)
	if err != nil {
		return nil, newErrGateway(err)
	}
	return subs, nil
}

// Filter keeps the submissions whose name or email contains search as a
// case-insensitive substring, preserving order. An empty search keeps
// everything. Pure function: recompute it whenever either input changes.
func Filter(subs []Submission, search string) []Submission {
	if search == "" {
		return subs
	}
	needle := strings.ToLower(search)
	filtered := make([]Submission, 0, len(subs))
	for _, sub := range subs {
		if strings.Contains(strings.ToLower(sub.Nama), needle) ||
			strings.Contains(strings.ToLower(sub.Email), needle) {
			filtered = append(filtered, sub)
		}
	}
	return filtered
}
