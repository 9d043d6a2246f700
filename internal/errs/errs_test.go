package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	bad := NewBadRequestError("bad input", true, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", bad.Code)
	assert.Equal(t, http.StatusBadRequest, bad.Status)

	code := "USER_NOT_FOUND"
	notFound := NewNotFoundError("User not found", true, &code)
	assert.Equal(t, code, notFound.Code)
	assert.Equal(t, http.StatusNotFound, notFound.Status)

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, "Internal Server Error", internal.Message)
	assert.False(t, internal.Override)

	unavailable := NewServiceUnavailableError("database unavailable")
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.Status)
	require.NotNil(t, unavailable.Action)
	assert.Equal(t, ActionTypeRetry, unavailable.Action.Type)
}

func TestHTTPError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotFoundError("x", false, nil))
	assert.True(t, errors.Is(err, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestHTTPError_JSON(t *testing.T) {
	data, err := json.Marshal(NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "email", Error: "is required"}}, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "BAD_REQUEST",
		"message": "Validation failed",
		"status": 400,
		"override": true,
		"errors": [{"field": "email", "error": "is required"}],
		"action": null
	}`, string(data))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
}
