package http

import (
	"net/http"

	"github.com/samira-travel/backoffice/httpjson"
	"github.com/samira-travel/backoffice/jamaah"
	"github.com/samira-travel/backoffice/logger"
)

// submissionListRow carries the columns the list table shows.
type submissionListRow struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Email        string `json:"email"`
	Kota         string `json:"kota"`
	JenisKelamin string `json:"jenisKelamin"`
	PaketUmroh   string `json:"paketUmroh"`
}

// ListSubmissions fetches the whole collection once and applies the
// search filter as a pure derivation over it.
func (h *JamaahHttpHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.jamaahSrvc.List(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	search := r.URL.Query().Get("search")
	filtered := jamaah.Filter(subs, search)

	rows := make([]submissionListRow, 0, len(filtered))
	for _, sub := range filtered {
		rows = append(rows, submissionListRow{
			ID:           sub.ID,
			Nama:         sub.Nama,
			Email:        sub.Email,
			Kota:         sub.Kota,
			JenisKelamin: sub.JenisKelamin,
			PaketUmroh:   sub.PaketUmroh,
		})
	}

	httpjson.WriteSuccessJson(w, rows)
}
