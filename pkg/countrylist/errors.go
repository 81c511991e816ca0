package countrylist

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled indicates the user backed out of a screen. It is flow
	// control, not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrQuit indicates the window was closed or the quit button pressed.
	ErrQuit = errors.New("application quit requested")
)

// InfrastructureError is a failure of the front end itself (SDL would not
// start, no font, renderer lost) rather than of the data it shows.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("countrylist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("countrylist: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsQuit checks if an error asks the application to exit.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
