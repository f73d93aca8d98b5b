package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/samira-travel/backoffice/srvcerror"
)

type JsonResponse struct {
	Status  string            `json:"status"` // "success" or "error"
	Data    any               `json:"data,omitempty"`
	ErrCode string            `json:"code,omitempty"`
	ErrMsg  string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"` // per-field form errors
}

func WriteSuccessJson(w http.ResponseWriter, data any) {
	resp := JsonResponse{
		Status: "success",
		Data:   data,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, errCode string) {
	resp := JsonResponse{
		Status:  "error",
		ErrMsg:  errMsg,
		ErrCode: errCode,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// WriteFieldErrorsJson reports a validation failure where specific form
// fields are at fault. The overall message repeats the message of the
// alphabetically first field so simple clients can show something stable
// without walking the map.
func WriteFieldErrorsJson(w http.ResponseWriter, statusCode int, errCode string, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msg := ""
	if len(names) > 0 {
		msg = fields[names[0]]
	}
	resp := JsonResponse{
		Status:  "error",
		ErrCode: errCode,
		ErrMsg:  msg,
		Fields:  fields,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		srvcerror.ErrCodeInternalServerError)
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
			logger.Error("internal server error", "error", err, "debug", srvcErr.DebugInfo())
		} else if srvcErr.DebugInfo() != nil {
			logger.Warn("service error", "error", err, "debug", srvcErr.DebugInfo())
		}
		WriteErrorJson(w, srvcErr.Error(), srvcErr.HttpStatusCode(), srvcErr.ErrorCode())
		return
	}
	logger.Error("internal server error", "error", err)
	writeInternalErrorJson(w)
}
