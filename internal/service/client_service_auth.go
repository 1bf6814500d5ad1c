package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator

	mu       sync.RWMutex
	username string
	password string

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (c *clientAuthService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := c.logger

	if err := c.validator.Validate(ctx, form, validators.FieldUsername, validators.FieldPassword, validators.FieldNames); err != nil {
		return models.User{}, err
	}

	request := models.UserRequest{
		Username: &form.Username,
		Password: &form.Password,
	}
	if form.FirstName != "" {
		request.FirstName = &form.FirstName
	}
	if form.LastName != "" {
		request.LastName = &form.LastName
	}

	user, err := c.adapter.CreateUser(ctx, request)
	if err != nil {
		log.Err(err).Str("func", "clientAuthService.Register").Msg("create user request failed")
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}

func (c *clientAuthService) Login(ctx context.Context, username, password string) error {
	log := c.logger

	if err := c.validator.Validate(ctx, models.RegisterForm{Username: username, Password: password},
		validators.FieldUsername, validators.FieldPassword); err != nil {
		return err
	}

	if _, err := c.adapter.RequestToken(ctx, username, password); err != nil {
		log.Err(err).Str("func", "clientAuthService.Login").Msg("token request failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return ErrWrongCredentials
		}
		return mapAdapterError(err)
	}

	c.mu.Lock()
	c.username = username
	c.password = password
	c.mu.Unlock()

	return nil
}

func (c *clientAuthService) RefreshToken(ctx context.Context) error {
	c.mu.RLock()
	username, password := c.username, c.password
	c.mu.RUnlock()

	if username == "" {
		return ErrNotLoggedIn
	}

	if _, err := c.adapter.RequestToken(ctx, username, password); err != nil {
		return fmt.Errorf("refresh token: %w", mapAdapterError(err))
	}

	return nil
}

func (c *clientAuthService) Logout(ctx context.Context) error {
	c.mu.Lock()
	c.username = ""
	c.password = ""
	c.mu.Unlock()

	if err := c.adapter.RevokeToken(ctx); err != nil {
		return fmt.Errorf("revoke token: %w", mapAdapterError(err))
	}

	return nil
}

func (c *clientAuthService) Token() string {
	return c.adapter.Token()
}

func (c *clientAuthService) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}
