package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewBlogValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.Transactor, validator, cfg.App, logger),
		TokenService:   NewTokenService(storages.UserRepository, storages.Transactor, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, storages.Transactor, validator, cfg.App, logger),
		PostService:    NewPostService(storages.PostRepository, storages.UserRepository, storages.Transactor, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
