package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// set before mounting so that sub-routers inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed(router))

	// browser pages with session authentication
	router.Group(func(r chi.Router) {
		r.Use(h.loadLoggedInUser)

		r.Get("/", h.index)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/register", h.registerPage)
			r.Post("/register", h.register)
			r.Get("/login", h.loginPage)
			r.Post("/login", h.login)
			r.Get("/logout", h.logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.loginRequired)

			r.Get("/create", h.createPage)
			r.Post("/create", h.createPost)
			r.Get("/{id}/update", h.updatePage)
			r.Post("/{id}/update", h.updatePost)
			r.Post("/{id}/delete", h.deletePost)
		})
	})

	// REST API
	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/users", h.apiCreateUser)

		r.With(h.basicAuth).Post("/tokens", h.apiGetToken)

		r.Group(func(r chi.Router) {
			r.Use(h.tokenAuth)

			r.Delete("/tokens", h.apiRevokeToken)

			r.Get("/users", h.apiListUsers)
			r.Get("/users/{id}", h.apiGetUser)
			r.Put("/users/{id}", h.apiUpdateUser)
			r.Get("/users/{id}/posts", h.apiListUserPosts)

			r.Get("/posts", h.apiListPosts)
			r.Post("/posts", h.apiCreatePost)
			r.Get("/posts/{id}", h.apiGetPost)
			r.Put("/posts/{id}", h.apiUpdatePost)
			r.Delete("/posts/{id}", h.apiDeletePost)
		})
	})

	return router
}
