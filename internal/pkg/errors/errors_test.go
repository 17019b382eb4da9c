package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation_ReturnsFreshInstance(t *testing.T) {
	a := Validation(MsgRadiusNotPositive)
	b := Validation(MsgNoSearchMode)

	assert.Equal(t, http.StatusBadRequest, a.StatusCode)
	assert.Equal(t, MsgRadiusNotPositive, a.Message)
	assert.Equal(t, MsgNoSearchMode, b.Message)
	assert.NotSame(t, a, b)
}

func TestAs_UnwrapsChain(t *testing.T) {
	wrapped := fmt.Errorf("get tree: %w", ErrTreeNotFound)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(Validationf("%s must be at most %d", "limit", 100)))
	assert.False(t, IsValidation(ErrStoreUnavailable))
	assert.False(t, IsValidation(nil))
}
