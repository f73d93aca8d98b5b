// Package docstore is the only place that talks to the document database.
// Collections map one-to-one onto DynamoDB tables; records are structs
// tagged with `dynamo:"..."` attributes and an `id` hash key.
//
// Every operation is a network round-trip. A record either arrives whole
// or the call fails; there is no partial-field error model. Absence is
// reported as ErrNotFound, everything else is a transport/query failure
// wrapped with context.
package docstore

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// ErrNotFound means the requested record does not exist in the collection.
var ErrNotFound = errors.New("record not found")

type Store struct {
	ddbClient *dynamodb.Client
	db        *dynamo.DB
}

// New wraps an explicitly constructed DynamoDB client. The client is
// created once at process start and injected; nothing in this package
// reaches for globals.
func New(ddbClient *dynamodb.Client) *Store {
	return &Store{
		ddbClient: ddbClient,
		db:        dynamo.NewFromIface(ddbClient),
	}
}

func (s *Store) table(collection string) dynamo.Table {
	return s.db.Table(collection)
}

// FetchAll scans every record in the collection into out, which must be a
// pointer to a slice of row structs.
func (s *Store) FetchAll(ctx context.Context, collection string, out any) error {
	if err := s.table(collection).Scan().All(ctx, out); err != nil {
		return gatewayErr("scan", collection, err)
	}
	return nil
}

// FetchOne retrieves the single record with the given id into out.
func (s *Store) FetchOne(ctx context.Context, collection string, id string, out any) error {
	err := s.table(collection).Get("id", id).One(ctx, out)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return ErrNotFound
		}
		return gatewayErr("get", collection, err)
	}
	return nil
}
