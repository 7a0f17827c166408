package engine

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/catalog"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// recorder collects every event for assertions on count and order.
type recorder struct {
	starts   int
	progress []float64
	stops    []attractor.Outcome
	faults   []error
	faultPts []plane.Point
}

func (r *recorder) OnRunStart(string, uint64)     { r.starts++ }
func (r *recorder) OnRunProgress(f float64)       { r.progress = append(r.progress, f) }
func (r *recorder) OnRunStop(o attractor.Outcome) { r.stops = append(r.stops, o) }
func (r *recorder) OnIterationFault(p plane.Point, err error) {
	r.faultPts = append(r.faultPts, p)
	r.faults = append(r.faults, err)
}

func newCustomEngine(t *testing.T, fn attractor.IterateFunc, budget int) (*Engine, *recorder) {
	t.Helper()
	e := New(catalog.New())
	last := e.Catalog().Len() - 1
	if err := e.SelectSystem(last); err != nil {
		t.Fatal(err)
	}
	if err := e.SetCustomIterate(fn); err != nil {
		t.Fatal(err)
	}
	e.SetViewport(plane.Point{}, 100, 400, 400)
	e.SetIterationBudget(budget)
	rec := &recorder{}
	e.AddObserver(rec)
	return e, rec
}

func TestDeJongScenario(t *testing.T) {
	e := New(catalog.New())
	if err := e.SelectSystem(0); err != nil { // dejong, first param set
		t.Fatal(err)
	}
	e.SetViewport(plane.Point{}, 100, 400, 400)
	e.SetIterationBudget(100000)
	rec := &recorder{}
	e.AddObserver(rec)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got != attractor.OutcomeCompleted {
		t.Fatalf("outcome = %v, want completed", got)
	}

	if got := e.LyapunovSamples(); got != 100000-1000 {
		t.Errorf("lyapunov samples = %d, want %d", got, 100000-1000)
	}
	est, ok := e.LyapunovEstimate()
	if !ok {
		t.Fatal("no lyapunov estimate")
	}
	if math.IsNaN(est) || math.IsInf(est, 0) {
		t.Errorf("estimate not finite: %v", est)
	}
	if est <= 0 {
		t.Errorf("de Jong should measure chaotic (positive) exponent, got %v", est)
	}
	if e.Buffer().Lit() == 0 {
		t.Error("no pixels written")
	}
	if len(rec.stops) != 1 || rec.stops[0] != attractor.OutcomeCompleted {
		t.Errorf("terminal events = %v", rec.stops)
	}
	if rec.starts != 1 {
		t.Errorf("start events = %d", rec.starts)
	}
	// the final progress report covers the whole budget
	if last := rec.progress[len(rec.progress)-1]; last != 1.0 {
		t.Errorf("final progress = %v", last)
	}
}

func TestDeterminism(t *testing.T) {
	render := func() ([]byte, float64) {
		e := New(catalog.New())
		e.SetViewport(plane.Point{}, 100, 200, 200)
		e.SetIterationBudget(20000)
		if err := e.StartRun(); err != nil {
			t.Fatal(err)
		}
		e.Run(context.Background())
		pix := make([]byte, len(e.Buffer().Bytes()))
		copy(pix, e.Buffer().Bytes())
		est, _ := e.LyapunovEstimate()
		return pix, est
	}

	pixA, estA := render()
	pixB, estB := render()
	if !bytes.Equal(pixA, pixB) {
		t.Error("pixel buffers differ between identical runs")
	}
	if estA != estB {
		t.Errorf("estimates differ: %v vs %v", estA, estB)
	}
}

func TestEscapeDetection(t *testing.T) {
	fn := func(p plane.Point, _ attractor.Parameters) plane.Point {
		return plane.Point{X: p.X * 1e10, Y: p.Y * 1e10}
	}
	e, rec := newCustomEngine(t, fn, 100000)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got != attractor.OutcomeEscaped {
		t.Fatalf("outcome = %v, want escaped", got)
	}
	if e.IterationIndex() > 10 {
		t.Errorf("escape took %d iterations", e.IterationIndex())
	}
	if len(rec.stops) != 1 || rec.stops[0] != attractor.OutcomeEscaped {
		t.Errorf("terminal events = %v", rec.stops)
	}
}

func TestConvergenceDetection(t *testing.T) {
	identity := func(p plane.Point, _ attractor.Parameters) plane.Point { return p }
	e, _ := newCustomEngine(t, identity, 100000)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got != attractor.OutcomeConverged {
		t.Fatalf("outcome = %v, want converged", got)
	}
	// just past the 50-iteration warm-up
	if e.IterationIndex() != 51 {
		t.Errorf("converged at iteration %d, want 51", e.IterationIndex())
	}
	if _, ok := e.LyapunovEstimate(); ok {
		t.Error("estimate should be unavailable before the sampling warm-up")
	}
}

func TestFaultContainment(t *testing.T) {
	bad := func(plane.Point, attractor.Parameters) plane.Point {
		return plane.Point{X: math.NaN(), Y: 0}
	}
	e, rec := newCustomEngine(t, bad, 100000)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got != attractor.OutcomeFaulted {
		t.Fatalf("outcome = %v, want faulted", got)
	}
	if e.IterationIndex() != 0 {
		t.Errorf("fault at iteration %d, want 0", e.IterationIndex())
	}
	if e.Running() {
		t.Error("running should be false after a fault")
	}
	if len(rec.faults) != 1 {
		t.Fatalf("fault events = %d", len(rec.faults))
	}
	var itf *attractor.IterationFault
	if !errors.As(rec.faults[0], &itf) || itf.Index != 0 {
		t.Errorf("fault error = %v", rec.faults[0])
	}
	if !errors.Is(rec.faults[0], attractor.ErrNotFinite) {
		t.Errorf("fault should wrap ErrNotFinite: %v", rec.faults[0])
	}

	// the engine stays usable: a healthy follow-up run completes
	ok := func(p plane.Point, _ attractor.Parameters) plane.Point {
		return plane.Point{X: math.Sin(p.Y), Y: math.Cos(p.X)}
	}
	if err := e.SetCustomIterate(ok); err != nil {
		t.Fatal(err)
	}
	e.SetIterationBudget(2000)
	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got.Terminal() == false || got == attractor.OutcomeFaulted {
		t.Errorf("follow-up run outcome = %v", got)
	}
}

func TestPanicBecomesInvocationFault(t *testing.T) {
	angry := func(plane.Point, attractor.Parameters) plane.Point {
		panic("user code exploded")
	}
	e, rec := newCustomEngine(t, angry, 1000)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(context.Background()); got != attractor.OutcomeFaulted {
		t.Fatalf("outcome = %v, want faulted", got)
	}
	if len(rec.faults) != 1 || !errors.Is(rec.faults[0], attractor.ErrIteratePanic) {
		t.Errorf("fault events = %v", rec.faults)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 100, 100)
	e.SetIterationBudget(1 << 30) // effectively unbounded
	rec := &recorder{}
	e.AddObserver(rec)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	e.Advance()
	e.StopRun()
	e.StopRun()
	for e.Advance() {
	}
	e.StopRun() // after terminal: still a no-op

	if len(rec.stops) != 1 || rec.stops[0] != attractor.OutcomeStopped {
		t.Errorf("terminal events = %v, want exactly one stopped", rec.stops)
	}
	if e.Running() {
		t.Error("still running after stop")
	}
}

func TestStopTakesEffectWithinOneSlice(t *testing.T) {
	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 100, 100)
	e.SetIterationBudget(1 << 30)
	e.SetSliceSize(500)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	e.Advance()
	before := e.IterationIndex()
	e.StopRun()
	for e.Advance() {
	}
	if extra := e.IterationIndex() - before; extra > 500 {
		t.Errorf("ran %d iterations past the stop request", extra)
	}
}

func TestGenerationIsolation(t *testing.T) {
	renderFresh := func(sysIdx int, budget int) []byte {
		e := New(catalog.New())
		e.SetViewport(plane.Point{}, 100, 200, 200)
		if err := e.SelectSystem(sysIdx); err != nil {
			t.Fatal(err)
		}
		e.SetIterationBudget(budget)
		if err := e.StartRun(); err != nil {
			t.Fatal(err)
		}
		e.Run(context.Background())
		pix := make([]byte, len(e.Buffer().Bytes()))
		copy(pix, e.Buffer().Bytes())
		return pix
	}

	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 200, 200)
	e.SetIterationBudget(1 << 30)
	rec := &recorder{}
	e.AddObserver(rec)

	// G1: dejong, interrupted after a few slices
	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		e.Advance()
	}
	g1 := e.Generation()

	// G2 supersedes G1
	if err := e.SelectSystem(1); err != nil { // clifford
		t.Fatal(err)
	}
	e.SetIterationBudget(10000)
	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if e.Generation() != g1+1 {
		t.Fatalf("generation = %d, want %d", e.Generation(), g1+1)
	}
	e.Run(context.Background())

	if len(rec.stops) != 2 {
		t.Fatalf("terminal events = %v, want [stopped completed]", rec.stops)
	}
	if rec.stops[0] != attractor.OutcomeStopped || rec.stops[1] != attractor.OutcomeCompleted {
		t.Errorf("terminal events = %v", rec.stops)
	}

	// no G1 pixels survive: the buffer matches a fresh G2-only render
	got := e.Buffer().Bytes()
	want := renderFresh(1, 10000)
	if !bytes.Equal(got, want) {
		t.Error("interrupted G1 left writes in G2's buffer")
	}
}

func TestSupersededSliceIsSilent(t *testing.T) {
	// An observer that restarts the engine from inside a progress
	// callback: the stale slice must not fire further events.
	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 100, 100)
	e.SetIterationBudget(5000)
	rec := &recorder{}
	e.AddObserver(rec)

	restarted := false
	e.AddObserver(FuncObserver{
		Progress: func(float64) {
			if !restarted {
				restarted = true
				e.SetIterationBudget(3000)
				if err := e.StartRun(); err != nil {
					t.Error(err)
				}
			}
		},
	})

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	e.Run(context.Background())
	for e.Advance() {
	}

	if len(rec.stops) != 2 {
		t.Fatalf("terminal events = %v", rec.stops)
	}
	if rec.stops[0] != attractor.OutcomeStopped || rec.stops[1] != attractor.OutcomeCompleted {
		t.Errorf("terminal events = %v", rec.stops)
	}
}

func TestCustomEditDoesNotAffectInflightRun(t *testing.T) {
	calm := func(p plane.Point, _ attractor.Parameters) plane.Point {
		return plane.Point{X: math.Sin(p.Y), Y: math.Cos(p.X)}
	}
	e, _ := newCustomEngine(t, calm, 5000)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	e.Advance()

	// swap in a faulting function mid-run; the run keeps its snapshot
	bad := func(plane.Point, attractor.Parameters) plane.Point {
		return plane.Point{X: math.NaN()}
	}
	if err := e.SetCustomIterate(bad); err != nil {
		t.Fatal(err)
	}

	if got := e.Run(context.Background()); got != attractor.OutcomeCompleted {
		t.Errorf("outcome = %v, want completed (captured function)", got)
	}
}

func TestContextCancelStops(t *testing.T) {
	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 100, 100)
	e.SetIterationBudget(1 << 30)
	rec := &recorder{}
	e.AddObserver(rec)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	if got := e.Run(ctx); got != attractor.OutcomeStopped {
		t.Errorf("outcome = %v, want stopped", got)
	}
	if len(rec.stops) != 1 {
		t.Errorf("terminal events = %v", rec.stops)
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	e := New(catalog.New())
	e.SetViewport(plane.Point{}, 100, 100, 100)
	e.SetIterationBudget(12345)
	rec := &recorder{}
	e.AddObserver(rec)

	if err := e.StartRun(); err != nil {
		t.Fatal(err)
	}
	e.Run(context.Background())

	for i := 1; i < len(rec.progress); i++ {
		if rec.progress[i] < rec.progress[i-1] {
			t.Fatalf("progress went backwards at %d: %v", i, rec.progress)
		}
	}
}
