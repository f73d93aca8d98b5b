package http

import (
	"net/http"

	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/user/auth"
)

const ErrCodeUnauthenticated = "unauthenticated"

// RequireAuth is the guarded side of the session gate: the wrapped
// routes render only for an authenticated caller, everyone else gets a
// 401 and the client redirects itself to the login entry point.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.ClaimsFromContext(r.Context()) == nil {
			httpjson.WriteErrorJson(w, "not authenticated",
				http.StatusUnauthorized, ErrCodeUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}
