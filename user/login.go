package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Login checks the credentials against the staff table. On any mismatch
// the same error comes back, never revealing whether the email exists.
func (s *UserSrvc) Login(ctx context.Context, email string, password string) (*User, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, row := range rows {
		if strings.EqualFold(row.Email, email) {
			err = bcrypt.CompareHashAndPassword(row.BcryptPwd, []byte(password))
			if err == nil {
				return &User{
					UUID:  row.Uuid,
					Email: row.Email,
					Nama:  row.Nama,
				}, nil
			}
		}
	}

	return nil, newErrEmailOrPasswordIncorrect()
}
