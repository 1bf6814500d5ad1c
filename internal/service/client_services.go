package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type ClientServices struct {
	AuthService    ClientAuthService
	PostService    ClientPostService
	AppInfoService ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*ClientServices, error) {
	validator := validators.NewBlogValidator()
	authSvc := NewClientAuthService(serverAdapter, validator, logger)

	return &ClientServices{
		AuthService:    authSvc,
		PostService:    NewClientPostService(serverAdapter, authSvc, validator, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}, nil
}
