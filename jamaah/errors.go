package jamaah

import (
	"net/http"

	"github.com/samira-travel/backoffice/srvcerror"
)

const ErrCodeJamaahNotFound = "jamaah_not_found"

func newErrJamaahNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJamaahNotFound,
		"Jamaah not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeGatewayError = "gateway_error"

func newErrGateway(err error) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGatewayError,
		"failed to reach the submission store",
	).SetHttpStatusCode(http.StatusInternalServerError).SetDebug(err)
}

const ErrCodeUnknownDocumentField = "unknown_document_field"

func newErrUnknownDocumentField(field string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownDocumentField,
		"unknown document field: "+field,
	).SetHttpStatusCode(http.StatusBadRequest)
}
