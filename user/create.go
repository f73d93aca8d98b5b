package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser provisions a staff account. Called from ops tooling and
// test setup; there is no registration endpoint.
func (s *UserSrvc) CreateUser(ctx context.Context, email string, nama string, password string) (*User, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	for _, row := range rows {
		if strings.EqualFold(row.Email, email) {
			return nil, newErrEmailExists()
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		errMsg := fmt.Errorf("error hashing password: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	row := &UserRow{
		Uuid:      uuid.New().String(),
		Email:     email,
		Nama:      nama,
		BcryptPwd: hash,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return &User{
		UUID:  row.Uuid,
		Email: row.Email,
		Nama:  row.Nama,
	}, nil
}
