package http

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
)

type Handler struct {
	services *service.Services
	pages    *pages

	// sessionCookie is the name of the cookie holding the session token.
	sessionCookie string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	cookie := cfg.SessionCookie
	if cookie == "" {
		cookie = defaultSessionCookie
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		pages:         blogPages,
		sessionCookie: cookie,
		logger:        logger,
	}
}
