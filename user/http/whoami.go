package http

import (
	"net/http"

	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/user/auth"
)

const ErrCodeUnauthenticated = "unauthenticated"

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w, "not authenticated",
			http.StatusUnauthorized, ErrCodeUnauthenticated)
		return
	}

	httpjson.WriteSuccessJson(w, StaffUser{
		UUID:  claims.UUID,
		Email: claims.Email,
		Nama:  claims.Nama,
	})
}
