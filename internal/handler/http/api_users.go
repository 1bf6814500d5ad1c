package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) apiListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewUsersResponse(users), http.StatusOK)
}

func (h *Handler) apiGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

// apiCreateUser is the only user endpoint open to anonymous clients.
func (h *Handler) apiCreateUser(w http.ResponseWriter, r *http.Request) {
	var request models.UserRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.UserID))
	h.writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) apiUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.UserRequest
	if err = utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, request)
	if err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) apiListUserPosts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPostsByAuthor(r.Context(), id)
	if err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, models.NewPostsResponse(posts), http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
