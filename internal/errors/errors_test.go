package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "congregation-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := apperrors.ErrPublisherNotFound
	assert.Equal(t, "publisher not found", err.Error())
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsAlreadyExists(err))
}

func TestNotFoundErrorIsComparesEntity(t *testing.T) {
	assert.True(t, errors.Is(apperrors.ErrPublisherNotFound, &apperrors.NotFoundError{Entity: "publisher"}))
	assert.False(t, errors.Is(apperrors.ErrPublisherNotFound, apperrors.ErrDepartmentNotFound))
}

func TestAlreadyExistsErrorMessage(t *testing.T) {
	assert.Equal(t,
		"congregation already exists - only one congregation is allowed",
		apperrors.ErrCongregationExists.Error())
	assert.Equal(t, "thing already exists",
		apperrors.NewAlreadyExistsError("thing", "").Error())
}

func TestWrappedErrorsAreDetected(t *testing.T) {
	wrapped := fmt.Errorf("assign: %w", apperrors.ErrAssignmentExists)
	assert.True(t, apperrors.IsAlreadyExists(wrapped))

	wrappedNF := fmt.Errorf("lookup: %w", apperrors.ErrMeetingScheduleNotFound)
	assert.True(t, apperrors.IsNotFound(wrappedNF))
}

func TestValidationError(t *testing.T) {
	err := apperrors.NewValidationError("month", "Month must be between 1 and 12")
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "month")
}

func TestNotAllowed(t *testing.T) {
	assert.True(t, apperrors.IsNotAllowed(apperrors.ErrCongregationDeleteNotAllowed))
	assert.False(t, apperrors.IsNotAllowed(apperrors.ErrNoCongregation))
}
