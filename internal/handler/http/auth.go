package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.pages.register, http.StatusOK, pageData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.writeStatus(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	form := models.RegisterForm{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
	}

	_, err := h.services.AuthService.RegisterUser(r.Context(), form)
	switch {
	case err == nil:
		http.Redirect(w, r, "/auth/login", http.StatusFound)
	case errors.Is(err, service.ErrUserAlreadyRegistered):
		h.render(w, r, h.pages.register, http.StatusOK, pageData{
			Flashes:  []string{fmt.Sprintf(app.MsgUserAlreadyRegistered, form.Username)},
			AuthForm: form,
		})
	case isFormError(err):
		h.render(w, r, h.pages.register, http.StatusOK, pageData{
			Flashes:  []string{messageFromError(err)},
			AuthForm: form,
		})
	default:
		h.writeError(w, r, err)
	}
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.pages.login, http.StatusOK, pageData{})
}

// login starts a new session. The previous session cookie, if any, is
// overwritten, so no state of an earlier login survives.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.writeStatus(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	username := r.PostFormValue("username")
	user, err := h.services.AuthService.Login(ctx, username, r.PostFormValue("password"))
	if errors.Is(err, service.ErrWrongCredentials) {
		h.render(w, r, h.pages.login, http.StatusOK, pageData{
			Flashes:  []string{app.MsgIncorrectCredentials},
			AuthForm: models.RegisterForm{Username: username},
		})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setSession(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
