package apierrors

import (
	"fmt"
	"net/http"
)

// Kind classifies an API error into one of the handled families.
type Kind int

const (
	KindValidation Kind = iota
	KindDuplicateKey
	KindAuth
	KindForbidden
	KindNotFound
)

// Error is a request-scoped failure carrying the HTTP status and the
// human-readable message returned to the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// Body returns the JSON body for the error. Auth-family errors use the
// "msg" key, everything else uses "error".
func (e *Error) Body() map[string]string {
	if e.Kind == KindAuth || e.Kind == KindForbidden {
		return map[string]string{"msg": e.Message}
	}
	return map[string]string{"error": e.Message}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func DuplicateKey(message string) *Error {
	return &Error{Kind: KindDuplicateKey, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}
