package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	c := newContext(http.MethodPost, "/api/users", `{"name":"Ada","email":"ada@example.com","password":"pw"}`)

	var payload model.NewUser
	require.NoError(t, BindAndValidate(c, &payload))
	assert.Equal(t, "ada@example.com", payload.Email)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/api/users", `{"name":"Ada","email":"nope"}`)

	var payload model.NewUser
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "email", Error: "must be a valid email address"},
		{Field: "password", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidate_QueryParams(t *testing.T) {
	c := newContext(http.MethodGet, "/api/properties?city=Austin&minimum_rating=9", "")

	var payload model.SearchPropertiesPayload
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "minimum_rating", Error: "must not exceed 5"}, httpErr.Errors[0])
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/api/users", `{"name":`)

	var payload model.NewUser
	httpErr := asHTTPError(t, BindAndValidate(c, &payload))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Nil(t, httpErr.Errors)
	assert.NotEmpty(t, httpErr.Message)
}

type customPayload struct{}

func (customPayload) Validate() error {
	return CustomValidationErrors{{Field: "end_date", Message: "must be after start_date"}}
}

func TestExtractValidationError_Custom(t *testing.T) {
	msg, fieldErrors := validateStruct(customPayload{})
	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "end_date", Error: "must be after start_date"}}, fieldErrors)
}

type opaquePayload struct{}

func (opaquePayload) Validate() error { return errors.New("opaque") }

func TestExtractValidationError_UnknownErrorDoesNotPanic(t *testing.T) {
	msg, fieldErrors := validateStruct(opaquePayload{})
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "opaque", fieldErrors[0].Error)
}
