package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/samira-travel/backoffice/jamaah"
)

type JamaahHttpHandler struct {
	jamaahSrvc *jamaah.Service
}

func NewJamaahHttpHandler(jamaahSrvc *jamaah.Service) *JamaahHttpHandler {
	return &JamaahHttpHandler{jamaahSrvc: jamaahSrvc}
}

// RegisterRoutes attaches the submission screens. Both are guarded; the
// router wraps them in the session gate.
func (h *JamaahHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/jamaah", h.ListSubmissions)
	r.Get("/jamaah/{id}", h.GetSubmission)
}
