package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrUnknownTab, "unknown tab \"archived\"")

	assert.True(t, errors.Is(err, ErrUnknownTab))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "unknown tab", ErrUnknownTab.Message)
}

func TestFromErrorWrapsPlainErrors(t *testing.T) {
	plain := fmt.Errorf("boom")
	appErr := FromError(plain)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, plain)
	assert.Nil(t, FromError(nil))
}

func TestFromErrorUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("page: %w", Clone(ErrNotFound, "event not found"))
	appErr := FromError(wrapped)

	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "event not found", appErr.Message)
}
