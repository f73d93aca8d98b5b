package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/logger"
)

// GetSubmission returns one submission with its resolved document URLs.
// A field whose URL could not be resolved is simply absent from the
// documents map; only a missing record or a store failure is an error.
func (h *JamaahHttpHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.jamaahSrvc.Get(r.Context(), id)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, detail)
}
