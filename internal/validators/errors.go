package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidData is wrapped by every input rule violation below.
	ErrInvalidData = errors.New("invalid data")

	ErrEmptyUsername      = fmt.Errorf("%w: username is required", ErrInvalidData)
	ErrEmptyPassword      = fmt.Errorf("%w: password is required", ErrInvalidData)
	ErrMissingCredentials = fmt.Errorf("%w: username and password are required", ErrInvalidData)
	ErrUsernameTooLong    = fmt.Errorf("%w: username is too long", ErrInvalidData)
	ErrNameTooLong        = fmt.Errorf("%w: name is too long", ErrInvalidData)
	ErrEmptyTitle         = fmt.Errorf("%w: title is required", ErrInvalidData)
	ErrTitleTooLong       = fmt.Errorf("%w: title is too long", ErrInvalidData)
)
