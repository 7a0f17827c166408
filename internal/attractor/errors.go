package attractor

import (
	"errors"
	"fmt"

	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Domain errors for simulation runs.
var (
	// ErrNotFinite indicates the iterate function produced NaN or Inf.
	ErrNotFinite = errors.New("attractor: iterate produced non-finite point")

	// ErrLyapunovOverflow indicates a non-finite Lyapunov accumulator.
	ErrLyapunovOverflow = errors.New("attractor: lyapunov accumulator non-finite")

	// ErrIteratePanic indicates a user-supplied iterate function panicked.
	ErrIteratePanic = errors.New("attractor: iterate function panicked")

	// ErrNoEstimate indicates the run finished before any Lyapunov sample.
	ErrNoEstimate = errors.New("attractor: no lyapunov samples accumulated")

	// ErrIndexRange indicates a system or parameter-set index out of range.
	ErrIndexRange = errors.New("attractor: index out of range")

	// ErrNotCustom indicates an attempt to replace a non-replaceable slot.
	ErrNotCustom = errors.New("attractor: slot is not replaceable")
)

// IterationFault wraps an error with the iteration it occurred at.
type IterationFault struct {
	Index int
	Point plane.Point
	Err   error
}

func (f *IterationFault) Error() string {
	return fmt.Sprintf("iteration %d at (%g, %g): %v", f.Index, f.Point.X, f.Point.Y, f.Err)
}

func (f *IterationFault) Unwrap() error { return f.Err }
