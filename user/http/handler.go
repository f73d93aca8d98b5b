package http

import (
	"github.com/samira-travel/backoffice/user"
)

// UserHttpHandler serves the auth routes. Registration happens in the
// router itself: login and logout are public, whoami sits behind the
// session gate, so the handlers cannot self-register as one block.
type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte

	// SecureCookies is off only in local dev and tests.
	SecureCookies bool
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc:      userSrvc,
		JwtKey:        jwtKey,
		SecureCookies: true,
	}
}

// StaffUser is the identity shape returned to clients.
type StaffUser struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
}
