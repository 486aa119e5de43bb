package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this meeting"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return e.Message
}

// NotAllowedError represents an operation rejected by business policy
type NotAllowedError struct {
	Message string
}

func (e *NotAllowedError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCongregationNotFound     = &NotFoundError{Entity: "congregation"}
	ErrDepartmentNotFound       = &NotFoundError{Entity: "department"}
	ErrPublisherNotFound        = &NotFoundError{Entity: "publisher"}
	ErrResponsibilityNotFound   = &NotFoundError{Entity: "responsibility"}
	ErrMeetingScheduleNotFound  = &NotFoundError{Entity: "meeting schedule"}
	ErrAssignmentNotFound       = &NotFoundError{Entity: "responsibility assignment"}
	ErrQualificationNotFound    = &NotFoundError{Entity: "publisher qualification"}
	ErrAssignmentConfigNotFound = &NotFoundError{Entity: "responsibility assignment config"}
)

// Already Exists Errors
var (
	ErrCongregationExists     = &AlreadyExistsError{Entity: "congregation", Context: "- only one congregation is allowed"}
	ErrCongregationNameExists = &AlreadyExistsError{Entity: "congregation", Context: "with this name"}
	ErrAssignmentExists       = &AlreadyExistsError{Entity: "responsibility assignment", Context: "for this meeting, responsibility and publisher"}
	ErrQualificationExists    = &AlreadyExistsError{Entity: "publisher qualification", Context: "for this publisher and responsibility"}
	ErrAssignmentConfigExists = &AlreadyExistsError{Entity: "responsibility assignment config", Context: "for this responsibility and meeting type"}
	ErrMeetingScheduleExists  = &AlreadyExistsError{Entity: "meeting schedule", Context: "for this week, year and meeting type"}
)

// Business Logic Errors
var (
	ErrCongregationDeleteNotAllowed = &NotAllowedError{Message: "deleting the congregation is not allowed"}
	ErrScheduleHasAssignments       = errors.New("meeting schedule still has responsibility assignments")
	ErrInvalidMeetingType           = errors.New("invalid meeting type")
	ErrInvalidWeekday               = errors.New("invalid weekday")
	ErrNoCongregation               = errors.New("no congregation is configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNotAllowed checks if an error is a NotAllowedError
func IsNotAllowed(err error) bool {
	var notAllowedErr *NotAllowedError
	return errors.As(err, &notAllowedErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
