package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// authRealm is announced in the WWW-Authenticate header of API 401 responses.
const authRealm = "Authentication Required"

// loadLoggedInUser resolves the session cookie into the identity stored in
// the request context. A missing, invalid or expired session, or a session
// of a deleted user, leaves the request anonymous; it is never an error.
func (h *Handler) loadLoggedInUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(h.sessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseSessionToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("ignoring invalid session")
			next.ServeHTTP(w, r)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Debug().Err(err).Msg("ignoring session without user id")
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.IdentifyUser(ctx, userID)
		if err != nil {
			log.Debug().Err(err).Int64("user_id", userID).Msg("ignoring session of unknown user")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

// loginRequired redirects anonymous visitors to the login page.
func (h *Handler) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.CurrentUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// basicAuth authenticates an API request with HTTP Basic credentials.
// A failed check yields a bare 401 that does not tell which part was wrong.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok {
			log.Debug().Msg("no basic credentials")
			h.unauthorized(w, r, "Basic")
			return
		}

		user, err := h.services.AuthService.VerifyPassword(r.Context(), username, password)
		if errors.Is(err, service.ErrWrongCredentials) {
			log.Debug().Str("username", username).Msg("basic authentication failed")
			h.unauthorized(w, r, "Basic")
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(r.Context(), user)))
	})
}

// tokenAuth authenticates an API request with a bearer API token.
func (h *Handler) tokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			h.unauthorized(w, r, "Bearer")
			return
		}

		user, err := h.services.TokenService.CheckAPIToken(r.Context(), token)
		if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
			log.Debug().Msg("rejected api token")
			h.unauthorized(w, r, "Bearer")
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(r.Context(), user)))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request, scheme string) {
	w.Header().Set("WWW-Authenticate", scheme+` realm="`+authRealm+`"`)
	h.writeStatus(w, r, http.StatusUnauthorized, "")
}
