package httperr

import (
	"errors"
	"fmt"
)

// Error codes shared by domain, usecases and the HTTP layer.
const (
	CodeValidation         = "validation_error"
	CodeConflict           = "conflict_error"
	CodeUnauthenticated    = "unauthenticated"
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeSelfDeletion       = "self_deletion_error"
	CodeRateLimited        = "rate_limited"
	CodeUnavailable        = "service_unavailable"
	CodeInternal           = "internal_error"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it carries one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// --------- Constructors ---------

func ErrValidation(format string, args ...any) error {
	return BusinessError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func ErrConflict(message string) error {
	return BusinessError{Code: CodeConflict, Message: message}
}

func ErrNotFound(message string) error {
	return BusinessError{Code: CodeNotFound, Message: message}
}

func ErrForbidden(message string) error {
	return BusinessError{Code: CodeForbidden, Message: message}
}

func ErrUnauthenticated(message string) error {
	return BusinessError{Code: CodeUnauthenticated, Message: message}
}

func ErrInvalidCredentials() error {
	return BusinessError{Code: CodeInvalidCredentials, Message: "Invalid credentials"}
}

func ErrSelfDeletion() error {
	return BusinessError{Code: CodeSelfDeletion, Message: "You cannot delete your own account"}
}

func ErrUnavailable(message string) error {
	return BusinessError{Code: CodeUnavailable, Message: message}
}

func ErrRateLimited() error {
	return BusinessError{Code: CodeRateLimited, Message: "Too many attempts, please try again later"}
}
