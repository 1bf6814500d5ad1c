package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// index lists every post, newest first.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.render(w, r, h.pages.index, http.StatusOK, pageData{Posts: posts})
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.pages.create, http.StatusOK, pageData{})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	_, err := h.services.PostService.CreatePost(r.Context(), form.Request())
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusFound)
	case isFormError(err):
		h.render(w, r, h.pages.create, http.StatusOK, pageData{
			Flashes:  []string{messageFromError(err)},
			PostForm: form,
		})
	default:
		h.writeError(w, r, err)
	}
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
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

	h.render(w, r, h.pages.update, http.StatusOK, pageData{
		Post:     post,
		PostForm: models.PostForm{Title: post.Title, Body: post.Body},
	})
}

// updatePost checks existence and ownership before the submitted fields,
// so a foreign post is refused even when the form is invalid.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	form, ok := h.parsePostForm(w, r)
	if !ok {
		return
	}

	_, err = h.services.PostService.UpdatePost(r.Context(), id, form.Request())
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusFound)
	case isFormError(err):
		h.render(w, r, h.pages.update, http.StatusOK, pageData{
			Flashes:  []string{messageFromError(err)},
			Post:     models.Post{PostID: id, Title: form.Title, Body: form.Body},
			PostForm: form,
		})
	default:
		h.writeResourceError(w, r, err, id)
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		h.writeResourceError(w, r, err, id)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) parsePostForm(w http.ResponseWriter, r *http.Request) (models.PostForm, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form was passed")
		h.writeStatus(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return models.PostForm{}, false
	}

	return models.PostForm{
		Title: r.PostFormValue("title"),
		Body:  r.PostFormValue("body"),
	}, true
}
