// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name           string
		err            *RegistryError
		expectedCode   ErrorCode
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "activity not found",
			err:            NewActivityNotFoundError("Nonexistent Club"),
			expectedCode:   ErrCodeActivityNotFound,
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Activity not found",
		},
		{
			name:           "already signed up",
			err:            NewAlreadySignedUpError("michael@mergington.edu", "Chess Club"),
			expectedCode:   ErrCodeAlreadySignedUp,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "michael@mergington.edu is already signed up",
		},
		{
			name:           "not registered",
			err:            NewNotRegisteredError("ghost@mergington.edu", "Chess Club"),
			expectedCode:   ErrCodeNotRegistered,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "ghost@mergington.edu is not registered for this activity",
		},
		{
			name:           "seed invalid",
			err:            NewSeedInvalidError("duplicate activity name"),
			expectedCode:   ErrCodeSeedInvalid,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "duplicate activity name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedStatus, tt.err.Status)
			assert.Equal(t, tt.expectedDetail, tt.err.Detail)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.expectedCode))
		})
	}
}

func TestAsRegistryError(t *testing.T) {
	regErr := NewActivityNotFoundError("Chess Club")

	t.Run("direct", func(t *testing.T) {
		got, ok := AsRegistryError(regErr)
		assert.True(t, ok)
		assert.Equal(t, regErr, got)
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("signup failed: %w", regErr)
		got, ok := AsRegistryError(wrapped)
		assert.True(t, ok)
		assert.Equal(t, ErrCodeActivityNotFound, got.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := AsRegistryError(fmt.Errorf("boom"))
		assert.False(t, ok)
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewActivityNotFoundError("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewAlreadySignedUpError("a@x.edu", "x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewNotRegisteredError("a@x.edu", "x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
