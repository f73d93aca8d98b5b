package user

import (
	"net/http"

	"github.com/samira-travel/backoffice/srvcerror"
)

// The credential error deliberately does not say which field was wrong.
const ErrCodeEmailOrPasswordIncorrect = "email_or_password_incorrect"

func newErrEmailOrPasswordIncorrect() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailOrPasswordIncorrect,
		"Invalid email or password",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeEmailExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailExists,
		"an account with this email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
