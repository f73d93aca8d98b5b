// Package user holds the staff accounts that may enter the back office.
// Accounts are provisioned out of band; there is no self-registration.
package user

import (
	"context"
)

type User struct {
	UUID  string
	Email string
	Nama  string
}

// UserStore is the persistence seam; DynamoDbUserTable backs it in
// production, tests use an in-memory stand-in.
type UserStore interface {
	List(ctx context.Context) ([]*UserRow, error)
	Save(ctx context.Context, row *UserRow) error
}

type UserSrvc struct {
	store UserStore
}

func NewUserSrvc(store UserStore) *UserSrvc {
	return &UserSrvc{store: store}
}
