package specs

import (
	"errors"
	"fmt"
)

// NewOpError creates a new OpError with the specified operation and formatted error message.
func NewOpError(op OpName, format string, a ...any) error {
	return &OpError{
		Op:  op,
		Err: fmt.Errorf(format, a...),
	}
}

// WrapOpError attaches op to err, nil stays nil.
func WrapOpError(op OpName, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// OpName represents an operation in the reqkit.
type OpName string

// OpError represents an error that occurred during a reqkit operation.
type OpError struct {
	Op  OpName
	Err error
}

// String formats the OpError as a string, including the operation if it exists.
func (e *OpError) String() string {
	if e.Op != "" {
		return fmt.Sprintf("reqkit/%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("reqkit: %s", e.Err)
}

// Error implements the error interface for OpError.
func (e *OpError) Error() string {
	return e.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Match checks if the OpError matches another error based on operation and underlying error.
func (e *OpError) Match(err error) bool {
	var oerr *OpError
	if errors.As(err, &oerr) {
		return e != nil && oerr != nil && e.Op == oerr.Op &&
			(errors.Is(e.Err, oerr.Err) || e.Err.Error() == oerr.Err.Error())
	}
	return errors.Is(e, err)
}
