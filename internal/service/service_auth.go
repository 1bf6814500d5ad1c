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
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the session
// token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	transactor store.Transactor
	validator  validators.Validator

	// hashCost is the bcrypt cost applied to new passwords.
	hashCost int

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, transactor store.Transactor, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		transactor:      transactor,
		validator:       validator,
		hashCost:        cfg.PasswordHashCost,
		sessionSignKey:  cfg.SecretKey,
		sessionIssuer:   cfg.SessionIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// RegisterUser creates a new user account from the registration form.
//
// The username lookup and the insert share one transaction. A username that
// is already present yields ErrUserAlreadyRegistered, also when the race is
// only detected by the unique constraint.
func (a *authService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("username", form.Username).Msg("invalid registration form")
		return models.User{}, err
	}

	var registeredUser models.User
	err := a.transactor.WithinTx(ctx, func(ctx context.Context) error {
		_, err := a.userRepository.FindUserByUsername(ctx, form.Username)
		switch {
		case err == nil:
			return ErrUserAlreadyRegistered
		case !errors.Is(err, store.ErrUserNotFound):
			return err
		}

		passwordHash, err := hashPassword(form.Password, a.hashCost)
		if err != nil {
			return err
		}

		registeredUser, err = a.userRepository.CreateUser(ctx, models.User{
			Username:     form.Username,
			FirstName:    form.FirstName,
			LastName:     form.LastName,
			PasswordHash: passwordHash,
		})
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return ErrUserAlreadyRegistered
		}
		return err
	})
	if err != nil {
		log.Err(err).Str("username", form.Username).Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user for a browser session.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.VerifyPassword(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.UserID).Msg("user logged in")
	return user, nil
}

// VerifyPassword looks up the account by exact username and compares the
// bcrypt hash. Storage failures other than a missing user are returned
// wrapped so that they surface as server errors.
func (a *authService) VerifyPassword(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrWrongCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("unknown username")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// CreateSessionToken issues a signed session token for the given user.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(a.sessionIssuer, user.UserID, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSessionToken validates and parses a raw session token. Any validation
// failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseSessionToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return models.SessionToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) IdentifyUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// hashPassword hashes password with bcrypt. Passwords over bcrypt's 72 byte
// limit yield [ErrPasswordTooLong].
func hashPassword(password string, cost int) (string, error) {
	hash, err := utils.HashPassword(password, cost)
	if utils.IsPasswordTooLong(err) {
		return "", ErrPasswordTooLong
	}
	return hash, err
}
