package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	userRepository store.UserRepository
	transactor     store.Transactor
	validator      validators.Validator

	hashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, transactor store.Transactor, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		transactor:     transactor,
		validator:      validator,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error getting user")
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// CreateUser registers a user through the REST API. Username and password
// are mandatory, the names default to empty strings.
func (s *userService) CreateUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:  *request.Username,
		FirstName: deref(request.FirstName),
		LastName:  deref(request.LastName),
	}

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.userRepository.FindUserByUsername(ctx, user.Username)
		switch {
		case err == nil:
			return ErrUserAlreadyExists
		case !errors.Is(err, store.ErrUserNotFound):
			return err
		}

		if user.PasswordHash, err = hashPassword(*request.Password, s.hashCost); err != nil {
			return err
		}

		user, err = s.userRepository.CreateUser(ctx, user)
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return err
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error creating user")
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// UpdateUser checks, in this order: the acting identity, the existence of the
// user and a collision of the new username with another account.
func (s *userService) UpdateUser(ctx context.Context, userID int64, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	identityID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, ErrNoIdentity
	}
	if identityID != userID {
		log.Warn().Int64("identity", identityID).Int64("user_id", userID).Msg("attempt to update another user")
		return models.User{}, ErrForbidden
	}

	var user models.User
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepository.FindUserByID(ctx, userID)
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		if err = s.validator.Validate(ctx, request, validators.FieldOptionalUsername, validators.FieldNames); err != nil {
			return err
		}

		if request.Username != nil && *request.Username != user.Username {
			_, err = s.userRepository.FindUserByUsername(ctx, *request.Username)
			switch {
			case err == nil:
				return ErrUsernameTaken
			case !errors.Is(err, store.ErrUserNotFound):
				return err
			}
			user.Username = *request.Username
		}
		if request.FirstName != nil {
			user.FirstName = *request.FirstName
		}
		if request.LastName != nil {
			user.LastName = *request.LastName
		}
		if request.Password != nil && *request.Password != "" {
			if user.PasswordHash, err = hashPassword(*request.Password, s.hashCost); err != nil {
				return err
			}
		}

		err = s.userRepository.UpdateUser(ctx, user)
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return ErrUsernameTaken
		}
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
