// Package errs defines the error shape returned to API clients.
//
// Handlers return *HTTPError values and the Fiber error handler renders them, so every
// failing response has the same JSON body: { "code": ..., "error": ... }.
package errs

import (
	"net/http"
	"strings"
)

// HTTPError is an error that knows its HTTP status and machine-friendly code.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func newError(status int, message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		formattedCode = *code
	}
	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400. code overrides the default "BAD_REQUEST" when set.
func NewBadRequestError(message string, code *string) *HTTPError {
	return newError(http.StatusBadRequest, message, code)
}

// NewNotFoundError creates a 404.
func NewNotFoundError(message string, code *string) *HTTPError {
	return newError(http.StatusNotFound, message, code)
}

// NewConflictError creates a 409.
func NewConflictError(message string, code *string) *HTTPError {
	return newError(http.StatusConflict, message, code)
}

// NewInternalServerError creates a 500 carrying only the generic status text; the real
// cause belongs in the logs, not in the response.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
}

// Code returns a pointer to code, for the constructors' optional code argument.
func Code(code string) *string {
	return &code
}
