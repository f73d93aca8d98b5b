package jamaah

import (
	"context"

	"github.com/samira-travel/backoffice/docstore"
)

// DdbSubmissionStore backs SubmissionStore with the document gateway.
type DdbSubmissionStore struct {
	store      *docstore.Store
	collection string
}

func NewDdbSubmissionStore(store *docstore.Store, collection string) *DdbSubmissionStore {
	return &DdbSubmissionStore{
		store:      store,
		collection: collection,
	}
}

func (d *DdbSubmissionStore) ListSubmissions(ctx context.Context) ([]Submission, error) {
	var subs []Submission
	if err := d.store.FetchAll(ctx, d.collection, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (d *DdbSubmissionStore) GetSubmission(ctx context.Context, id string) (Submission, error) {
	var subm Submission
	if err := d.store.FetchOne(ctx, d.collection, id, &subm); err != nil {
		return Submission{}, err
	}
	return subm, nil
}

func (d *DdbSubmissionStore) CreateSubmission(ctx context.Context, subm Submission) (string, error) {
	return d.store.Create(ctx, d.collection, subm)
}
