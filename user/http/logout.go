package http

import (
	"net/http"

	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/user/auth"
)

// Logout clears the authToken cookie. Best-effort by design: there is
// nothing here that can fail, so the caller can never get stuck logged
// in. The confirmation step lives client-side.
func (h *UserHttpHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearTokenCookie(h.SecureCookies))

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Logout successful"})
}
