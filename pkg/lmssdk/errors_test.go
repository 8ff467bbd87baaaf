package lmssdk

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(status int, body string) error {
	resp := &http.Response{StatusCode: status}
	return parseErrorResponse(resp, []byte(body))
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("flat error object", func(t *testing.T) {
		t.Parallel()

		err := errorResponse(http.StatusConflict, `{"error": "Username already taken"}`)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
		assert.Equal(t, "Username already taken", apiErr.Message)
		assert.Empty(t, apiErr.Fields)
	})

	t.Run("validation problem details", func(t *testing.T) {
		t.Parallel()

		body := `{
			"type": "https://tools.ietf.org/html/rfc9110#section-15.5.1",
			"title": "One or more validation errors occurred.",
			"status": 400,
			"errors": {"Email": ["The Email field is not a valid e-mail address."]},
			"traceId": "00-abc-def-00"
		}`
		err := errorResponse(http.StatusBadRequest, body)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "One or more validation errors occurred.", apiErr.Message)
		assert.Contains(t, apiErr.Fields, "Email")
	})

	t.Run("non-json body", func(t *testing.T) {
		t.Parallel()

		err := errorResponse(http.StatusBadGateway, "upstream timed out")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "upstream timed out")
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		err := errorResponse(http.StatusServiceUnavailable, "")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Message, http.StatusText(http.StatusServiceUnavailable))
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &APIError{StatusCode: http.StatusNotFound, Message: "Student not found"}
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", notFound)))
	assert.False(t, IsNotFound(&APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsNotFound(ErrAuthExpired))

	assert.True(t, IsAuthExpired(ErrAuthExpired))
	assert.True(t, IsAuthExpired(fmt.Errorf("%w: GET /teachers", ErrAuthExpired)))
	assert.True(t, IsAuthExpired(ErrRefreshFailed))
	assert.False(t, IsAuthExpired(notFound))
}

func TestAPIErrorString(t *testing.T) {
	t.Parallel()

	plain := &APIError{StatusCode: 401, Message: "token expired"}
	assert.Equal(t, "token expired (status 401)", plain.Error())

	coded := &APIError{StatusCode: 400, Code: "validation", Message: "bad input"}
	assert.Equal(t, "validation: bad input (status 400)", coded.Error())
}
