package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// apiGetToken hands out the API token of the user authenticated by basicAuth.
func (h *Handler) apiGetToken(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNoIdentity)
		return
	}

	token, err := h.services.TokenService.GetAPIToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, token, http.StatusOK)
}

func (h *Handler) apiRevokeToken(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrNoIdentity)
		return
	}

	if err := h.services.TokenService.RevokeAPIToken(r.Context(), user); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
