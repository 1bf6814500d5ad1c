// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/models"
)

const defaultSessionCookie = "session"

// setSession replaces any previous session with token.
func (h *Handler) setSession(w http.ResponseWriter, token models.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    token.String(),
		Path:     "/",
		Expires:  token.Expiration(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
