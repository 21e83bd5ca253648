package maze

import (
	"errors"
	"fmt"

	"mazeglow/internal/core"
)

var (
	// ErrGridTooSmall is returned when the odd interior cannot hold a seed
	// cell inside a solid wall ring.
	ErrGridTooSmall = errors.New("maze: grid too small to carve")

	// ErrBeyondOutOfBounds reports that the cell past a carved wall fell
	// outside the carvable interior.
	ErrBeyondOutOfBounds = errors.New("maze: corridor leaves the interior")

	// ErrFrontierOutOfBounds reports a frontier wall outside the interior
	// margin.
	ErrFrontierOutOfBounds = errors.New("maze: frontier wall outside the interior")
)

// CarveError pins a fatal carve failure to the cell that broke the bounds.
type CarveError struct {
	Err   error
	Point core.Point
}

func (e *CarveError) Error() string {
	return fmt.Sprintf("%v at (%d,%d)", e.Err, e.Point.X, e.Point.Y)
}

func (e *CarveError) Unwrap() error { return e.Err }
