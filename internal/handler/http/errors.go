// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// ErrInvalidID is returned when a path id is not a positive integer.
// Such paths do not name any resource and are answered with 404.
var ErrInvalidID = errors.New("invalid id in path")

// pathID parses the "{id}" URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// wantsJSON reports whether the client should get JSON instead of an HTML page.
func wantsJSON(r *http.Request) bool {
	return r.URL.Path == "/api" ||
		strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

// writeError answers with the status and message derived from err. Server
// errors are logged and never expose their cause.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := messageFromError(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("internal server error")
		message = app.MsgInternalServerError
	}

	h.writeStatus(w, r, status, message)
}

// writeResourceError is writeError with the not-found message naming the
// requested id.
func (h *Handler) writeResourceError(w http.ResponseWriter, r *http.Request, err error, id int64) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		h.writeStatus(w, r, http.StatusNotFound, fmt.Sprintf(app.MsgPostNotFound, id))
	case errors.Is(err, service.ErrUserNotFound):
		h.writeStatus(w, r, http.StatusNotFound, fmt.Sprintf(app.MsgUserNotFound, id))
	default:
		h.writeError(w, r, err)
	}
}

// writeStatus renders the error page or the JSON error body.
func (h *Handler) writeStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	if wantsJSON(r) {
		if _, err := utils.WriteJSON(w, models.ErrorResponse{
			Error:   http.StatusText(status),
			Message: message,
		}, status); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing error response")
		}
		return
	}

	h.render(w, r, h.pages.errors, status, pageData{Status: status, Message: message})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w, r, http.StatusNotFound, app.MsgPageNotFound)
}
