package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation failures.
var (
	// ErrInvalidScreen indicates a presentation was rejected: the screen
	// was nil, its back action was nil, or the screen is already on the
	// stack.
	ErrInvalidScreen = errors.New("screen is not valid for presentation")

	// ErrBackActionFailed indicates a back action returned an error or
	// panicked. By the time callers observe it the controller has already
	// recovered to the root screen.
	ErrBackActionFailed = errors.New("back action failed")

	// ErrStackUnderflow indicates an attempt to remove or replace the
	// root entry. Correct callers never trigger it; seeing one means a
	// depth check was bypassed.
	ErrStackUnderflow = errors.New("navigation stack underflow")
)

// Error wraps a navigation failure with the operation and the screen
// that produced it.
type Error struct {
	Op     string // operation that failed (e.g. "present", "go_back")
	Screen string // ID of the screen involved, if known
	Err    error  // underlying error
}

func (e *Error) Error() string {
	if e.Screen != "" {
		return fmt.Sprintf("nav: %s: screen %q: %v", e.Op, e.Screen, e.Err)
	}
	return fmt.Sprintf("nav: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a navigation error for the given operation.
func NewError(op, screen string, err error) *Error {
	return &Error{Op: op, Screen: screen, Err: err}
}

// IsInvalidScreen checks whether err was caused by presenting an
// unusable screen.
func IsInvalidScreen(err error) bool {
	return errors.Is(err, ErrInvalidScreen)
}

// IsBackActionFailure checks whether err came from a failed back action.
func IsBackActionFailure(err error) bool {
	return errors.Is(err, ErrBackActionFailed)
}
