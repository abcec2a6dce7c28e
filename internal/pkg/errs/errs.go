package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error type
// below unwraps to exactly one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
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

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
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

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
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

// IllegalTransitionError indicates that a requested status move does not match
// the current state's allowed successors. The original state is left unchanged.
type IllegalTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewIllegalTransitionError creates an IllegalTransitionError for the named status axis.
func NewIllegalTransitionError(paramName, from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{ParamName: paramName, From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping an underlying cause.
func NewIllegalTransitionErrorWithCause(paramName, from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{ParamName: paramName, From: from, To: to, Cause: cause}
}

func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s (cause: %s)",
			ErrIllegalTransition, e.ParamName, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrIllegalTransition, e.ParamName, e.From, e.To))
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// UnauthorizedError indicates that the acting party is not allowed to perform
// the requested operation on the target object.
type UnauthorizedError struct {
	Operation string
	ActorID   any
	Cause     error
}

// NewUnauthorizedError creates an UnauthorizedError for the given actor and operation.
func NewUnauthorizedError(operation string, actorID any) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, ActorID: actorID}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(operation string, actorID any, cause error) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, ActorID: actorID, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: actor %s may not %s (cause: %s)",
			ErrUnauthorized, e.ActorID, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: actor %s may not %s", ErrUnauthorized, e.ActorID, e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictError indicates that a concurrent writer won a race for the same
// resource between this caller's read and write. The caller should re-fetch
// and act on a different resource rather than retrying the same one.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the named resource and identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.ParamName, e.ID))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
