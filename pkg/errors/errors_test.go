package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("recipe", nil).StatusCode())
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad input", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(fmt.Errorf("boom")).StatusCode())
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := BadRequest("invalid query", cause)

	assert.Equal(t, "invalid query: connection refused", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("visit", nil)))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NotFound("visit", nil))))
	assert.False(t, IsNotFound(BadRequest("nope", nil)))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
}

func TestNotFoundNamesResource(t *testing.T) {
	err := NotFound("daily mission", nil)
	require.Equal(t, "daily mission not found", err.Message)
}
