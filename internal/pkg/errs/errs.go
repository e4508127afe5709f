package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the root of every error produced by this package.
// Callers classify errors with errors.Is against these values.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrVersionIsInvalid  = errors.New("version is invalid")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// ValueIsRequiredError indicates that a mandatory value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
// Lookups never panic on unknown identifiers; they return this error instead.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// VersionIsInvalidError indicates that an optimistic concurrency check failed:
// the object changed between read and write.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
