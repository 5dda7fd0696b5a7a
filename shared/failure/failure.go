package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var (
	InvalidPageParam  = New(http.StatusBadRequest, "invalid page parameter")
	InvalidLimitParam = New(http.StatusBadRequest, "invalid limit parameter")
	ForbiddenError    = New(http.StatusForbidden, "You don't have the required permissions")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// wrap keeps err reachable through errors.Is/As. A nil err stays nil so callers can
// pass results straight through.
func wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: code, Message: err.Error(), cause: err}
}

func BadRequest(err error) error {
	return wrap(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// Validation rejects a single field value, prefixing the message with the field name.
func Validation(field, msg string) error {
	return New(http.StatusBadRequest, field+": "+msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

func InternalError(err error) error {
	return wrap(http.StatusInternalServerError, err)
}

// GetCode finds the first Failure in err's chain. Anything else is a 500.
func GetCode(err error) int {
	if fail := (*Failure)(nil); errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
