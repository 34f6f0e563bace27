// Package businessflow contains the core business logic and use cases for the content management workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminInactive      = errors.New("admin account is inactive")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrPasswordTooShort   = errors.New("password is shorter than the configured minimum")
	ErrForbidden          = errors.New("insufficient role")
	ErrInvalidCaptcha     = errors.New("invalid captcha")

	// Content errors
	ErrContentNotFound      = errors.New("content not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrInvalidEnumValue     = errors.New("value is not in the accepted set")
	ErrNothingToUpdate      = errors.New("at least one field must be provided for update")
	ErrNoIDsProvided        = errors.New("at least one id must be provided")
	ErrFeaturedNotSupported = errors.New("resource has no featured flag")

	// Filter errors
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")

	// Import errors
	ErrSpreadsheetEmpty   = errors.New("spreadsheet contains no data rows")
	ErrSpreadsheetInvalid = errors.New("spreadsheet could not be read")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAdminInactive(err error) bool {
	return errors.Is(err, ErrAdminInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsPasswordTooShort(err error) bool {
	return errors.Is(err, ErrPasswordTooShort)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsInvalidCaptcha(err error) bool {
	return errors.Is(err, ErrInvalidCaptcha)
}

func IsContentNotFound(err error) bool {
	return errors.Is(err, ErrContentNotFound)
}

func IsInvalidEnumValue(err error) bool {
	return errors.Is(err, ErrInvalidEnumValue)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}
