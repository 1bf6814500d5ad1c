package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidData:      http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	utils.ErrInvalidJSON:           http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoIdentity:              http.StatusUnauthorized,

	service.ErrForbidden: http.StatusForbidden,

	ErrInvalidID:            http.StatusNotFound,
	service.ErrUserNotFound: http.StatusNotFound,
	service.ErrPostNotFound: http.StatusNotFound,
	store.ErrNotFound:       http.StatusNotFound,
}

// errorMessageMap holds the user-facing text of errors that have one.
// Entries must not overlap: no error here wraps another one.
var errorMessageMap = map[error]string{
	validators.ErrEmptyUsername:      app.MsgUsernameRequired,
	validators.ErrEmptyPassword:      app.MsgPasswordRequired,
	validators.ErrMissingCredentials: app.MsgMandatoryFields,
	validators.ErrUsernameTooLong:    app.MsgNameTooLong,
	validators.ErrNameTooLong:        app.MsgNameTooLong,
	validators.ErrEmptyTitle:         app.MsgTitleRequired,
	validators.ErrTitleTooLong:       app.MsgTitleTooLong,

	service.ErrUserAlreadyExists: app.MsgUserAlreadyExist,
	service.ErrUsernameTaken:     app.MsgUseDifferentUsername,
	service.ErrPasswordTooLong:   app.MsgPasswordTooLong,
	service.ErrWrongCredentials:  app.MsgIncorrectCredentials,
	service.ErrForbidden:         app.MsgAccessDenied,
	utils.ErrInvalidJSON:         app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if statusFromError(err) == http.StatusBadRequest {
		return app.MsgInvalidDataProvided
	}
	return ""
}

// isFormError reports whether err should be shown as a message on the
// submitted form instead of as an error page.
func isFormError(err error) bool {
	return errors.Is(err, validators.ErrInvalidData) ||
		errors.Is(err, service.ErrInvalidDataProvided) ||
		errors.Is(err, service.ErrWrongCredentials)
}
