package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldUsername requires a non-empty username.
	FieldUsername = "username"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldCredentials requires both username and password at once and
	// reports a single error when either is missing.
	FieldCredentials = "credentials"

	// FieldOptionalUsername checks a username only when it is present.
	FieldOptionalUsername = "optional username"

	// FieldNames checks the length of first and last names.
	FieldNames = "names"

	// FieldTitle requires a non-empty title.
	FieldTitle = "title"

	// FieldOptionalTitle checks a title only when it is present.
	FieldOptionalTitle = "optional title"
)

// MaxNameLength bounds usernames, first and last names, and post titles.
const MaxNameLength = 80

// BlogValidator implements [Validator] for the blog input models:
// RegisterForm, UserRequest, PostRequest and Post.
type BlogValidator struct{}

func NewBlogValidator() *BlogValidator {
	return &BlogValidator{}
}

// Validate implements [Validator]. Without fields every model gets its
// default rule set: RegisterForm (username, password, names),
// UserRequest (credentials, names), PostRequest and Post (title).
func (v *BlogValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(*value, fields...)

	case models.UserRequest:
		return v.validateUserRequest(value, fields...)
	case *models.UserRequest:
		return v.validateUserRequest(*value, fields...)

	case models.PostRequest:
		return v.validatePostRequest(value, fields...)
	case *models.PostRequest:
		return v.validatePostRequest(*value, fields...)

	case models.Post:
		return v.validatePostRequest(models.PostRequest{Title: &value.Title, Body: &value.Body}, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateRegisterForm(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldNames}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if form.Username == "" {
				return ErrEmptyUsername
			}
			if tooLong(form.Username) {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNames:
			if tooLong(form.FirstName) || tooLong(form.LastName) {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validateUserRequest(request models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials, FieldNames}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if isBlank(request.Username) || isBlank(request.Password) {
				return ErrMissingCredentials
			}
			if tooLong(*request.Username) {
				return ErrUsernameTooLong
			}
		case FieldOptionalUsername:
			if request.Username == nil {
				continue
			}
			if *request.Username == "" {
				return ErrEmptyUsername
			}
			if tooLong(*request.Username) {
				return ErrUsernameTooLong
			}
		case FieldNames:
			if (request.FirstName != nil && tooLong(*request.FirstName)) ||
				(request.LastName != nil && tooLong(*request.LastName)) {
				return ErrNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlogValidator) validatePostRequest(request models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(request.Title) {
				return ErrEmptyTitle
			}
			if tooLong(*request.Title) {
				return ErrTitleTooLong
			}
		case FieldOptionalTitle:
			if request.Title == nil {
				continue
			}
			if *request.Title == "" {
				return ErrEmptyTitle
			}
			if tooLong(*request.Title) {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > MaxNameLength
}
