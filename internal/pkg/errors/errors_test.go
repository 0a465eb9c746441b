package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails_DoesNotMutateShared(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]interface{}{"field": "name"})

	assert.Nil(t, ErrValidationFailed.Details)
	assert.Equal(t, "name", detailed.Details["field"])
	assert.True(t, stderrors.Is(detailed, ErrValidationFailed))
}

func TestAs_UnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("load restaurant: %w", ErrRestaurantNotFound)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, ok = As(stderrors.New("boom"))
	assert.False(t, ok)
}

func TestWithMessage(t *testing.T) {
	err := ErrInvalidCuisine.WithMessage("Invalid cuisine type. Must be one of: pizza")

	assert.Equal(t, "INVALID_CUISINE: Invalid cuisine type. Must be one of: pizza", err.Error())
	assert.Equal(t, "Invalid cuisine type", ErrInvalidCuisine.Message)
}
