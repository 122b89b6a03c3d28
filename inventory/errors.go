package inventory

import (
	"errors"
	"fmt"
)

// Error kinds returned by inventory operations
var (
	ErrHostAlreadyExists  = errors.New("host already exists")
	ErrHostDoesNotExist   = errors.New("host does not exist")
	ErrGroupAlreadyExists = errors.New("group already exists")
	ErrGroupDoesNotExist  = errors.New("group does not exist")
	ErrReservedGroupName  = errors.New("group name is reserved")
)

// Error carries the name of the host or group an operation failed on.
// Use errors.Is against the Err* kinds to tell failures apart
type Error struct {
	Kind error
	Name string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Name)
}

// Unwrap exposes the error kind for errors.Is
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, name string) error {
	return &Error{Kind: kind, Name: name}
}
