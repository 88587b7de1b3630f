package sim

import (
	"errors"
	"fmt"
)

// Errors reported by the simulation package.
var (
	// ErrInvalidHeading is returned when a heading is outside [0, 360] degrees.
	ErrInvalidHeading = errors.New("sim: invalid heading")

	// ErrInvalidSpeed is returned for negative or non-finite speeds.
	ErrInvalidSpeed = errors.New("sim: invalid speed")

	// ErrInvalidConfig is returned when a Config cannot be read or fails validation.
	ErrInvalidConfig = errors.New("sim: invalid config")
)

// HeadingError carries the rejected heading.
type HeadingError struct {
	Degrees float64
}

func (e *HeadingError) Error() string {
	return fmt.Sprintf("%v: %g degrees is outside [0, 360]", ErrInvalidHeading, e.Degrees)
}

func (e *HeadingError) Unwrap() error {
	return ErrInvalidHeading
}

// SpeedError carries the rejected speed.
type SpeedError struct {
	Speed float64
}

func (e *SpeedError) Error() string {
	return fmt.Sprintf("%v: %g", ErrInvalidSpeed, e.Speed)
}

func (e *SpeedError) Unwrap() error {
	return ErrInvalidSpeed
}
