// Package errs defines the error shapes returned to API clients.
//
// Every failure that reaches the HTTP boundary is rendered as an
// HTTPError, so clients always receive the same JSON structure:
//
//	{
//	  "code": "USER_NOT_FOUND",
//	  "message": "User not found",
//	  "status": 404,
//	  "override": true,
//	  "errors": null,
//	  "action": null
//	}
package errs

import "strings"

// FieldError is a validation failure on one input field.
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType tells the client what to do next.
type ActionType string

// ActionTypeRetry asks the client to repeat the request later.
const ActionTypeRetry ActionType = "retry"

// Action is an optional follow-up instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type rendered by the global error handler.
//
// Override marks messages that are safe to show verbatim. When false the
// handler may substitute a generic message outside development.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds per-field validation errors.
	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns status text into a code:
// "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
