// Package errors provides standardized error handling for registry operations.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeActivityNotFound ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeAlreadySignedUp  ErrorCode = "ALREADY_SIGNED_UP"
	ErrCodeNotRegistered    ErrorCode = "NOT_REGISTERED"

	ErrCodeSeedInvalid ErrorCode = "SEED_INVALID"
)

// RegistryError represents a structured application error. Detail carries the
// exact user-visible message written to the response body.
type RegistryError struct {
	Code      ErrorCode              `json:"code"`
	Detail    string                 `json:"detail"`
	Status    int                    `json:"status"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("RegistryError[%s]: %s", e.Code, e.Detail)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError reports a lookup against an unknown activity name.
func NewActivityNotFoundError(activityName string) *RegistryError {
	return &RegistryError{
		Code:   ErrCodeActivityNotFound,
		Detail: "Activity not found",
		Status: http.StatusNotFound,
		Metadata: map[string]interface{}{
			"activity": activityName,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadySignedUpError reports an enroll attempt for an email that is
// already on the activity's roster.
func NewAlreadySignedUpError(email, activityName string) *RegistryError {
	return &RegistryError{
		Code:   ErrCodeAlreadySignedUp,
		Detail: fmt.Sprintf("%s is already signed up", email),
		Status: http.StatusBadRequest,
		Metadata: map[string]interface{}{
			"activity": activityName,
			"email":    email,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError reports a withdraw attempt for an email that is not on
// the activity's roster.
func NewNotRegisteredError(email, activityName string) *RegistryError {
	return &RegistryError{
		Code:   ErrCodeNotRegistered,
		Detail: fmt.Sprintf("%s is not registered for this activity", email),
		Status: http.StatusBadRequest,
		Metadata: map[string]interface{}{
			"activity": activityName,
			"email":    email,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewSeedInvalidError reports an unusable seed catalog at startup.
func NewSeedInvalidError(details string) *RegistryError {
	return &RegistryError{
		Code:      ErrCodeSeedInvalid,
		Detail:    details,
		Status:    http.StatusInternalServerError,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Transport Mapping
// ==========================

// AsRegistryError extracts a RegistryError from err, if it is one.
func AsRegistryError(err error) (*RegistryError, bool) {
	var regErr *RegistryError
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}

// HTTPStatus returns the response status for err. Anything that is not a
// RegistryError is an internal error.
func HTTPStatus(err error) int {
	if regErr, ok := AsRegistryError(err); ok {
		return regErr.Status
	}
	return http.StatusInternalServerError
}
