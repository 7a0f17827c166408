package engine

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Observer receives one-way run lifecycle events. The engine never
// blocks waiting on an observer; callbacks run on the pumping
// goroutine and should return quickly.
type Observer interface {
	OnRunStart(system string, generation uint64)
	OnRunProgress(fraction float64)
	OnRunStop(outcome attractor.Outcome)
	OnIterationFault(last plane.Point, err error)
}

// FuncObserver adapts plain functions to Observer; nil fields are
// skipped.
type FuncObserver struct {
	Start    func(system string, generation uint64)
	Progress func(fraction float64)
	Stop     func(outcome attractor.Outcome)
	Fault    func(last plane.Point, err error)
}

func (f FuncObserver) OnRunStart(system string, generation uint64) {
	if f.Start != nil {
		f.Start(system, generation)
	}
}

func (f FuncObserver) OnRunProgress(fraction float64) {
	if f.Progress != nil {
		f.Progress(fraction)
	}
}

func (f FuncObserver) OnRunStop(outcome attractor.Outcome) {
	if f.Stop != nil {
		f.Stop(outcome)
	}
}

func (f FuncObserver) OnIterationFault(last plane.Point, err error) {
	if f.Fault != nil {
		f.Fault(last, err)
	}
}
