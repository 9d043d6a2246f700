package errs

import (
	"net/http"
)

func statusCode(status int, code *string) string {
	if code != nil {
		return *code
	}
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400. code defaults to "BAD_REQUEST".
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusBadRequest, code),
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404. code defaults to "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusNotFound, code),
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewServiceUnavailableError creates a 503 telling the client to retry.
func NewServiceUnavailableError(message string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusServiceUnavailable, nil),
		Message:  message,
		Status:   http.StatusServiceUnavailable,
		Override: true,
		Action: &Action{
			Type:    ActionTypeRetry,
			Message: "The service is temporarily unavailable, try again later",
		},
	}
}

// NewInternalServerError creates a 500 with the generic status text. The
// underlying cause is logged, never returned.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError, nil),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
