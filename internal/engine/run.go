package engine

import (
	"fmt"
	"math"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// initialSeparation is the fixed shadow distance d0 = η·√2, the
// magnitude of the (η, η) perturbation.
var initialSeparation = Eta * math.Sqrt2

// run is the immutable-snapshot state of one generation. It captures
// the iterate function, parameters and viewport at start time, so
// catalog edits mid-run never affect it.
type run struct {
	gen     uint64
	name    string
	iterate attractor.IterateFunc
	params  attractor.Parameters
	view    plane.Viewport
	budget  int
	mapper  colormap.Mapper

	p      plane.Point // primary trajectory
	shadow plane.Point // perturbed trajectory for the Lyapunov estimate
	prevX  float64     // x of the previous primary point, for colouring
	index  int

	lyapSum   float64
	lyapCount int
	history   []float64 // estimate sampled once per slice

	running  bool
	done     bool
	reported bool
	outcome  attractor.Outcome

	faultPoint plane.Point
	faultErr   error
}

// StartRun begins a new generation. Any run still in progress is
// finished as Stopped first (its terminal event fires here, exactly
// once); its in-flight slice, if any, will observe the generation
// mismatch and exit silently.
func (e *Engine) StartRun() error {
	if e.cur != nil && !e.cur.done {
		e.finish(e.cur, attractor.OutcomeStopped)
		e.emitTerminal(e.cur)
	}

	iterate, err := e.cat.Iterate(e.sysIdx)
	if err != nil {
		return err
	}
	params, err := e.cat.Params(e.sysIdx, e.setIdx)
	if err != nil {
		return err
	}
	sys, err := e.cat.System(e.sysIdx)
	if err != nil {
		return err
	}

	e.generation++
	e.buf.Resize(e.view.Width, e.view.Height)
	e.buf.Clear()

	p0 := sys.Initial
	e.cur = &run{
		gen:     e.generation,
		name:    sys.Name,
		iterate: iterate,
		params:  params.Clone(),
		view:    e.view,
		budget:  e.budget,
		mapper:  e.mapper,
		p:       p0,
		shadow:  plane.Point{X: p0.X + Eta, Y: p0.Y + Eta},
		prevX:   p0.X,
		running: true,
	}

	for _, o := range e.observers {
		o.OnRunStart(sys.Name, e.generation)
	}
	return nil
}

// StopRun marks the current generation as no longer running. The
// in-flight slice observes this at its next iteration boundary and
// exits, which still triggers the terminal notification. Idempotent;
// a no-op when nothing is running.
func (e *Engine) StopRun() {
	if e.cur != nil && !e.cur.done {
		e.cur.running = false
	}
}

// Advance executes one time-slice of the current run: up to the slice
// size in iterations, then a buffer flush and a progress event.
// Returns true while the run needs further slices. A slice whose
// generation is no longer current performs no writes, fires no events
// and mutates no state.
func (e *Engine) Advance() bool {
	r := e.cur
	if r == nil || r.done {
		return false
	}

	for n := 0; n < e.sliceSize; n++ {
		if r.gen != e.generation {
			// Superseded mid-slice (an observer started a new run).
			return false
		}
		if !r.running {
			e.finish(r, attractor.OutcomeStopped)
			break
		}
		e.step(r)
		if r.done {
			break
		}
	}

	if r.gen != e.generation {
		return false
	}

	if r.lyapCount > 0 {
		r.history = append(r.history, r.lyapSum/float64(r.lyapCount))
	}
	if e.surface != nil {
		e.surface.Flush(e.buf)
	}
	for _, o := range e.observers {
		o.OnRunProgress(float64(r.index) / float64(r.budget))
	}
	if r.done {
		if r.outcome == attractor.OutcomeFaulted {
			for _, o := range e.observers {
				o.OnIterationFault(r.faultPoint, r.faultErr)
			}
		}
		e.emitTerminal(r)
		return false
	}
	return true
}

// step runs one iteration: plot, escape check, advance primary and
// shadow, convergence check, Lyapunov accumulation, renormalization.
func (e *Engine) step(r *run) {
	// Plot the current point if it maps into the grid; out-of-view
	// samples are skipped, never clamped.
	if r.view.Contains(r.p) {
		col := r.view.XToCol(r.p.X)
		row := r.view.YToRow(r.p.Y)
		e.buf.Set(col, row, r.mapper.Map(r.index, row, col, r.prevX))
	}

	if math.Abs(r.p.X) > escapeBound || math.Abs(r.p.Y) > escapeBound {
		e.finish(r, attractor.OutcomeEscaped)
		return
	}

	next, err := callIterate(r.iterate, r.p, r.params)
	if err != nil {
		e.fault(r, err)
		return
	}
	if !next.IsFinite() {
		e.fault(r, attractor.ErrNotFinite)
		return
	}

	if r.index > convergeMinIters &&
		math.Abs(next.X-r.p.X) < Eta && math.Abs(next.Y-r.p.Y) < Eta {
		e.finish(r, attractor.OutcomeConverged)
		return
	}

	nextShadow, err := callIterate(r.iterate, r.shadow, r.params)
	if err != nil {
		e.fault(r, err)
		return
	}
	if !nextShadow.IsFinite() {
		e.fault(r, attractor.ErrNotFinite)
		return
	}

	if r.index >= lyapWarmup {
		d := next.Dist(nextShadow)
		lg := math.Log(d / initialSeparation)
		if math.IsNaN(lg) || math.IsInf(lg, 0) {
			e.fault(r, attractor.ErrLyapunovOverflow)
			return
		}
		r.lyapSum += lg
		if math.IsNaN(r.lyapSum) || math.IsInf(r.lyapSum, 0) {
			e.fault(r, attractor.ErrLyapunovOverflow)
			return
		}
		r.lyapCount++

		// Pull the shadow back to distance d0 from the primary along
		// the same direction, so it never diverges far enough to lose
		// precision.
		scale := initialSeparation / d
		nextShadow = plane.Point{
			X: next.X + (nextShadow.X-next.X)*scale,
			Y: next.Y + (nextShadow.Y-next.Y)*scale,
		}
	}

	r.prevX = r.p.X
	r.p = next
	r.shadow = nextShadow
	r.index++

	if r.index >= r.budget {
		e.finish(r, attractor.OutcomeCompleted)
	}
}

func (e *Engine) finish(r *run, o attractor.Outcome) {
	r.done = true
	r.running = false
	r.outcome = o
}

func (e *Engine) fault(r *run, err error) {
	r.faultPoint = r.p
	r.faultErr = &attractor.IterationFault{Index: r.index, Point: r.p, Err: err}
	e.finish(r, attractor.OutcomeFaulted)
}

// emitTerminal fires the terminal notification at most once per
// generation.
func (e *Engine) emitTerminal(r *run) {
	if r.reported {
		return
	}
	r.reported = true
	for _, o := range e.observers {
		o.OnRunStop(r.outcome)
	}
}

// callIterate invokes a possibly user-supplied iterate function,
// converting a panic into an invocation fault instead of unwinding
// through the engine.
func callIterate(fn attractor.IterateFunc, p plane.Point, q attractor.Parameters) (next plane.Point, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", attractor.ErrIteratePanic, rec)
		}
	}()
	return fn(p, q), nil
}
