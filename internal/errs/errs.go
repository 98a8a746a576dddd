package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports bad input shape: empty content, too many tags,
// a tag over the length limit, a duplicate tag. Nothing is mutated before
// one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a missing referenced entity (post, parent comment).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// TransportError wraps a network or backing-store failure. Optimistic
// mutations roll back when they see one; reads surface an empty result
// plus an error indicator.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func Transport(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// ModerationRejection means the external moderation gate flagged an upload.
type ModerationRejection struct {
	Reason string
}

func (e *ModerationRejection) Error() string {
	return fmt.Sprintf("moderation rejected: %s", e.Reason)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

func IsModerationRejection(err error) bool {
	var m *ModerationRejection
	return errors.As(err, &m)
}
