package help

import (
	"errors"
	"fmt"

	"github.com/kisan-sahay/kisan-api/schema"
)

// ValidationError reports malformed or missing input. Nothing was written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthorizationError reports a caller lacking the role or ownership for an action.
type AuthorizationError struct {
	Action string
	Role   schema.Role
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s is not allowed to %s", e.Role, e.Action)
}

// StateError reports an operation that is illegal for the current status of a
// request. The caller's view is stale and should be refreshed.
type StateError struct {
	Status schema.HelpStatus
	Reason string
}

func (e *StateError) Error() string {
	if e.Status == "" {
		return e.Reason
	}
	return fmt.Sprintf("request is %s: %s", e.Status, e.Reason)
}

// NotFoundError reports a request that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// TransportError wraps a failure of the underlying store. Retrying is up to the caller.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "store unavailable: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsAuthorization(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

func IsState(err error) bool {
	var e *StateError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsTransport(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}
