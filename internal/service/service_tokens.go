package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// tokenReuseMargin is how long an existing API token must still be valid to
// be handed out again instead of a new one.
const tokenReuseMargin = 60 * time.Second

// defaultAPITokenDuration applies when the configuration leaves the lifetime unset.
const defaultAPITokenDuration = time.Hour

type tokenService struct {
	userRepository store.UserRepository
	transactor     store.Transactor

	tokenDuration time.Duration

	// now and generate are replaced in tests.
	now      func() time.Time
	generate func() (string, error)

	logger *logger.Logger
}

func NewTokenService(userRepository store.UserRepository, transactor store.Transactor, cfg config.App, logger *logger.Logger) TokenService {
	duration := cfg.APITokenDuration
	if duration <= 0 {
		duration = defaultAPITokenDuration
	}

	return &tokenService{
		userRepository: userRepository,
		transactor:     transactor,
		tokenDuration:  duration,
		now:            time.Now,
		generate:       utils.GenerateAPIToken,
		logger:         logger,
	}
}

// GetAPIToken reads the stored token state inside a transaction so that two
// concurrent requests of one user cannot both replace the token.
func (s *tokenService) GetAPIToken(ctx context.Context, user models.User) (models.APIToken, error) {
	log := logger.FromContext(ctx)

	var token models.APIToken
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.userRepository.FindUserByID(ctx, user.UserID)
		if err != nil {
			return err
		}

		now := s.now()
		if current.HasAPITokenValidAfter(now.Add(tokenReuseMargin)) {
			token = models.APIToken{Token: current.APIToken, Expiration: current.APITokenExpiration}
			return nil
		}

		value, err := s.generate()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}

		token = models.APIToken{Token: value, Expiration: now.Add(s.tokenDuration)}
		return s.userRepository.SaveAPIToken(ctx, user.UserID, token.Token, token.Expiration)
	})
	if errors.Is(err, store.ErrUserNotFound) {
		return models.APIToken{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error issuing api token")
		return models.APIToken{}, fmt.Errorf("error issuing api token: %w", err)
	}

	return token, nil
}

func (s *tokenService) CheckAPIToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := s.userRepository.FindUserByAPIToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error looking up api token")
		return models.User{}, fmt.Errorf("error looking up api token: %w", err)
	}

	if !user.HasAPITokenValidAfter(s.now()) {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}

// RevokeAPIToken keeps the token value but moves its expiration into the past.
func (s *tokenService) RevokeAPIToken(ctx context.Context, user models.User) error {
	if user.APIToken == "" {
		return nil
	}

	err := s.userRepository.SaveAPIToken(ctx, user.UserID, user.APIToken, s.now().Add(-time.Second))
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("error revoking api token")
		return fmt.Errorf("error revoking api token: %w", err)
	}

	return nil
}
