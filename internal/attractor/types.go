package attractor

import "github.com/supermattydomain/AttractorCanvas/internal/plane"

// Parameters is a named set of map coefficients. Names and arity are
// system-specific; the engine passes the whole set through without
// interpreting individual fields.
type Parameters map[string]float64

func (p Parameters) Clone() Parameters {
	c := make(Parameters, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// IterateFunc advances a discrete-time 2D map by one step.
type IterateFunc func(p plane.Point, params Parameters) plane.Point

// ParameterSet is a named Parameters value in a system's ordered list.
type ParameterSet struct {
	Name   string
	Values Parameters
}

// System is one entry in the catalog: a map plus its default initial
// point, default zoom, and the ordered built-in parameter sets.
type System struct {
	Name        string
	Iterate     IterateFunc
	Initial     plane.Point
	InitialZoom float64
	ParamSets   []ParameterSet
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeNone means the run has not finished.
	OutcomeNone Outcome = iota
	// OutcomeCompleted means the iteration budget was exhausted.
	OutcomeCompleted
	// OutcomeStopped means the run was cancelled or superseded.
	OutcomeStopped
	// OutcomeEscaped means the trajectory left the escape bound.
	OutcomeEscaped
	// OutcomeConverged means the trajectory settled onto a fixed point.
	OutcomeConverged
	// OutcomeFaulted means the iterate function produced an invalid
	// point, panicked, or the Lyapunov accumulator went non-finite.
	OutcomeFaulted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCompleted:
		return "completed"
	case OutcomeStopped:
		return "stopped"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeConverged:
		return "converged"
	case OutcomeFaulted:
		return "faulted"
	}
	return "unknown"
}

// Terminal reports whether o is a finished-run outcome.
func (o Outcome) Terminal() bool { return o != OutcomeNone }
