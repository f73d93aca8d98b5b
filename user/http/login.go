package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/srvcerror"
	"github.com/samira-travel/backoffice/user"
	"github.com/samira-travel/backoffice/user/auth"
)

const ErrCodeValidationFailed = "validation_failed"
const ErrCodeAlreadyAuthenticated = "already_authenticated"

// Login validates the form, checks credentials and persists the session
// cookie. Validation failures are reported per field before any store
// call happens. A failed credential check marks both fields with the
// same message, never revealing which one was wrong.
func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	if auth.ClaimsFromContext(r.Context()) != nil {
		httpjson.WriteErrorJson(w, "already logged in",
			http.StatusConflict, ErrCodeAlreadyAuthenticated)
		return
	}

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	fields := map[string]string{}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		fields["email"] = "Please enter a valid email address"
	}
	if request.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		httpjson.WriteFieldErrorsJson(w, http.StatusBadRequest, ErrCodeValidationFailed, fields)
		return
	}

	staff, err := h.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) && srvcErr.ErrorCode() == user.ErrCodeEmailOrPasswordIncorrect {
			httpjson.WriteFieldErrorsJson(w, srvcErr.HttpStatusCode(), srvcErr.ErrorCode(), map[string]string{
				"email":    srvcErr.Error(),
				"password": srvcErr.Error(),
			})
			return
		}
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(staff.Email, staff.Nama, staff.UUID, h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	http.SetCookie(w, auth.NewTokenCookie(token, h.SecureCookies))

	httpjson.WriteSuccessJson(w, struct {
		Token string    `json:"token"`
		User  StaffUser `json:"user"`
	}{
		Token: token,
		User: StaffUser{
			UUID:  staff.UUID,
			Email: staff.Email,
			Nama:  staff.Nama,
		},
	})
}
