package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) apiListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewPostsResponse(posts), http.StatusOK)
}

// apiGetPost only shows a post to its author.
func (h *Handler) apiGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id, true)
	if err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) apiCreatePost(w http.ResponseWriter, r *http.Request) {
	var request models.PostRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/posts/%d", post.PostID))
	h.writeJSON(w, r, post, http.StatusCreated)
}

func (h *Handler) apiUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.PostRequest
	if err = utils.DecodeJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), id, request)
	if err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	h.writeJSON(w, r, post, http.StatusOK)
}

func (h *Handler) apiDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
