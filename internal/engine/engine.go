package engine

import (
	"context"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/catalog"
	"github.com/supermattydomain/AttractorCanvas/internal/colormap"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
	"github.com/supermattydomain/AttractorCanvas/internal/raster"
)

const (
	// Eta is the initial shadow-trajectory perturbation per axis, and
	// doubles as the fixed-point convergence tolerance.
	Eta = 1e-12

	// escapeBound is the coordinate magnitude beyond which a trajectory
	// is assumed divergent.
	escapeBound = float64(1 << 32)

	// convergeMinIters is the warm-up before convergence is checked.
	convergeMinIters = 50

	// lyapWarmup is the iteration count before Lyapunov sampling
	// starts, letting the trajectory settle onto the attractor first.
	lyapWarmup = 1000

	DefaultSliceSize = 1000
	DefaultBudget    = 100000
	DefaultWidth     = 400
	DefaultHeight    = 400
)

// Engine owns the catalog selection, viewport, pixel buffer and the
// current run. It is single-threaded by design: one goroutine pumps
// Advance and all mutation happens there. Concurrent runs are excluded
// by generation tokens, not locks — starting a new run invalidates the
// previous generation, whose in-flight slice then exits without
// touching the buffer or firing events.
type Engine struct {
	cat       *catalog.Catalog
	sysIdx    int
	setIdx    int
	view      plane.Viewport
	budget    int
	sliceSize int
	mapper    colormap.Mapper
	buf       *raster.Buffer
	surface   raster.Surface
	observers []Observer

	generation uint64
	cur        *run
}

// New builds an engine over cat with the first system selected and
// that system's default zoom.
func New(cat *catalog.Catalog) *Engine {
	e := &Engine{
		cat:       cat,
		budget:    DefaultBudget,
		sliceSize: DefaultSliceSize,
		mapper:    colormap.HueX{},
		buf:       raster.New(DefaultWidth, DefaultHeight),
		view: plane.Viewport{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
	sys, _ := cat.System(0)
	e.view.Zoom = sys.InitialZoom
	return e
}

// SelectSystem makes system i current. Zoom resets to the system's
// default; the centre is preserved. The parameter-set selection resets
// to the first set.
func (e *Engine) SelectSystem(i int) error {
	sys, err := e.cat.System(i)
	if err != nil {
		return err
	}
	e.sysIdx = i
	e.setIdx = 0
	e.view.Zoom = sys.InitialZoom
	return nil
}

// SelectParamSet makes parameter set j of the current system current.
func (e *Engine) SelectParamSet(j int) error {
	if _, err := e.cat.Params(e.sysIdx, j); err != nil {
		return err
	}
	e.setIdx = j
	return nil
}

// SetCustomIterate replaces the custom system's iterate function.
// Takes effect on the next run; a run in progress keeps the function
// it captured at start.
func (e *Engine) SetCustomIterate(fn attractor.IterateFunc) error {
	return e.cat.SetCustomIterate(e.cat.Len()-1, fn)
}

// SetCustomParams replaces the current system's custom parameter set
// and selects it.
func (e *Engine) SetCustomParams(p attractor.Parameters) error {
	if err := e.cat.SetCustomParams(e.sysIdx, p); err != nil {
		return err
	}
	sets, _ := e.cat.ParamSets(e.sysIdx)
	e.setIdx = len(sets) - 1
	return nil
}

func (e *Engine) SetViewport(centre plane.Point, zoom float64, w, h int) {
	e.view = plane.Viewport{Centre: centre, Zoom: zoom, Width: w, Height: h}
	e.buf.Resize(w, h)
}

// SetCentre moves the viewport centre; zoom is preserved.
func (e *Engine) SetCentre(p plane.Point) { e.view.Centre = p }

// SetZoom changes the zoom; the centre is preserved.
func (e *Engine) SetZoom(z float64) { e.view.Zoom = z }

func (e *Engine) SetIterationBudget(n int) { e.budget = n }

// SetSliceSize bounds the iterations executed per Advance call.
func (e *Engine) SetSliceSize(n int) {
	if n > 0 {
		e.sliceSize = n
	}
}

func (e *Engine) SetColorMapper(m colormap.Mapper) { e.mapper = m }

// SetSurface installs the display flush target; nil disables flushing.
func (e *Engine) SetSurface(s raster.Surface) { e.surface = s }

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Readback queries. Pure; safe between slices.

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }
func (e *Engine) SystemIndex() int          { return e.sysIdx }
func (e *Engine) ParamSetIndex() int        { return e.setIdx }
func (e *Engine) Centre() plane.Point       { return e.view.Centre }
func (e *Engine) Zoom() float64             { return e.view.Zoom }
func (e *Engine) Viewport() plane.Viewport  { return e.view }
func (e *Engine) IterationBudget() int      { return e.budget }
func (e *Engine) Buffer() *raster.Buffer    { return e.buf }
func (e *Engine) Generation() uint64        { return e.generation }

func (e *Engine) CurrentSystem() attractor.System {
	sys, _ := e.cat.System(e.sysIdx)
	return sys
}

func (e *Engine) CurrentParams() attractor.Parameters {
	p, _ := e.cat.Params(e.sysIdx, e.setIdx)
	return p
}

// Running reports whether a run is live (started and not terminal).
func (e *Engine) Running() bool {
	return e.cur != nil && !e.cur.done && e.cur.running
}

// Outcome returns the most recent run's terminal outcome, or
// OutcomeNone while running or before any run.
func (e *Engine) Outcome() attractor.Outcome {
	if e.cur == nil || !e.cur.done {
		return attractor.OutcomeNone
	}
	return e.cur.outcome
}

// IterationIndex returns the most recent run's iteration counter.
func (e *Engine) IterationIndex() int {
	if e.cur == nil {
		return 0
	}
	return e.cur.index
}

// LyapunovEstimate returns the accumulated estimate, or false when the
// run gathered no samples (e.g. it ended before the warm-up).
func (e *Engine) LyapunovEstimate() (float64, bool) {
	if e.cur == nil || e.cur.lyapCount == 0 {
		return 0, false
	}
	return e.cur.lyapSum / float64(e.cur.lyapCount), true
}

// LyapunovSamples returns the number of separations accumulated into
// the estimate so far.
func (e *Engine) LyapunovSamples() int {
	if e.cur == nil {
		return 0
	}
	return e.cur.lyapCount
}

// EstimateHistory returns the per-slice Lyapunov estimates of the most
// recent run, oldest first.
func (e *Engine) EstimateHistory() []float64 {
	if e.cur == nil {
		return nil
	}
	return e.cur.history
}

// Run pumps StartRun-ed work to completion. Context cancellation maps
// to StopRun, so the terminal notification still fires exactly once.
func (e *Engine) Run(ctx context.Context) attractor.Outcome {
	for {
		select {
		case <-ctx.Done():
			e.StopRun()
		default:
		}
		if !e.Advance() {
			break
		}
	}
	return e.Outcome()
}
