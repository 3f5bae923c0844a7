package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSecurityCheckFailed indicates a missing or invalid CSRF nonce.
var ErrSecurityCheckFailed = errors.New("security check failed")

// ErrCaptchaMissing indicates that no CAPTCHA response token was supplied.
var ErrCaptchaMissing = errors.New("reCAPTCHA response is missing")

// ErrCaptchaFailed indicates that the CAPTCHA backend rejected the token (or could not be reached).
var ErrCaptchaFailed = errors.New("reCAPTCHA verification failed")

// ErrMissingFields indicates that required review fields were empty after sanitization.
var ErrMissingFields = errors.New("all fields are required")

// ErrStoreFailure indicates that the review store could not complete the operation.
var ErrStoreFailure = errors.New("review store failure")

// ErrInvalidTransition indicates a moderation state change that is not allowed.
var ErrInvalidTransition = errors.New("invalid moderation transition")

// MissingFieldsError names every field that failed the required check.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields.Error(), strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingFields
}

// AppError carries an HTTP-ish status code alongside an underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
