package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/app"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidInput:         http.StatusBadRequest,
	service.ErrUnsupportedImageType: http.StatusUnsupportedMediaType,

	ErrNoImageProvided: http.StatusBadRequest,
	ErrImageTooLarge:   http.StatusRequestEntityTooLarge,

	store.ErrContactNotFound:      http.StatusNotFound,
	store.ErrContactAlreadyExists: http.StatusConflict,
	store.ErrImageNotFound:        http.StatusNotFound,
	store.ErrInvalidImageName:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrUnsupportedImageType: app.MsgUnsupportedImageType,

	ErrNoImageProvided: app.MsgNoImageProvided,
	ErrImageTooLarge:   app.MsgImageTooLarge,

	store.ErrContactNotFound:      app.MsgContactNotFound,
	store.ErrContactAlreadyExists: app.MsgContactAlreadyExists,
	store.ErrImageNotFound:        app.MsgImageNotFound,
	store.ErrInvalidImageName:     app.MsgImageNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text put into the failure envelope.
// Validation failures carry the validator's own message so the client can
// show which field is wrong.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrInvalidInput) {
		return err.Error()
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
