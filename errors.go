package gizmo

import "errors"

var (
	// ErrInvalidNumber is returned when a numeric field cannot be evaluated to a finite number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDragInProgress is returned by operations that must not interleave with a drag.
	ErrDragInProgress = errors.New("drag in progress")
	ErrNoTarget       = errors.New("no target")
	ErrUnknownMode    = errors.New("unknown mode")
)
