package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type clientPostService struct {
	adapter   adapter.ServerAdapter
	auth      ClientAuthService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientPostService(serverAdapter adapter.ServerAdapter, auth ClientAuthService, validator validators.Validator, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		adapter:   serverAdapter,
		auth:      auth,
		validator: validator,
		logger:    logger,
	}
}

func (c *clientPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.withTokenRetry(ctx, "clientPostService.ListPosts", func() error {
		var err error
		posts, err = c.adapter.ListPosts(ctx)
		return err
	})
	return posts, err
}

func (c *clientPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post
	err := c.withTokenRetry(ctx, "clientPostService.GetPost", func() error {
		var err error
		post, err = c.adapter.GetPost(ctx, postID)
		return err
	})
	return post, err
}

func (c *clientPostService) CreatePost(ctx context.Context, form models.PostForm) (models.Post, error) {
	request := form.Request()
	if err := c.validator.Validate(ctx, request, validators.FieldTitle); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	err := c.withTokenRetry(ctx, "clientPostService.CreatePost", func() error {
		var err error
		post, err = c.adapter.CreatePost(ctx, request)
		return err
	})
	return post, err
}

// withTokenRetry runs call and, when the server rejects the token, refreshes
// it once and runs call again.
func (c *clientPostService) withTokenRetry(ctx context.Context, funcName string, call func() error) error {
	log := c.logger

	err := mapAdapterError(call())
	if !errors.Is(err, ErrTokenIsExpiredOrInvalid) {
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("request failed")
		}
		return err
	}

	log.Debug().Str("func", funcName).Msg("token rejected, refreshing")
	if refreshErr := c.auth.RefreshToken(ctx); refreshErr != nil {
		log.Err(refreshErr).Str("func", funcName).Msg("token refresh failed")
		return err
	}

	if err = mapAdapterError(call()); err != nil {
		log.Err(err).Str("func", funcName).Msg("request failed after token refresh")
	}
	return err
}
