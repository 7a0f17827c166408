package systems

import (
	"testing"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

func TestBuiltinsShape(t *testing.T) {
	all := Builtins()
	if len(all) < 2 {
		t.Fatalf("expected at least two systems, got %d", len(all))
	}
	if all[len(all)-1].Name != "custom" {
		t.Errorf("last system should be custom, got %q", all[len(all)-1].Name)
	}

	for _, s := range all {
		if s.Iterate == nil {
			t.Errorf("%s: nil iterate", s.Name)
		}
		if s.InitialZoom <= 0 {
			t.Errorf("%s: non-positive initial zoom", s.Name)
		}
		if len(s.ParamSets) == 0 {
			t.Errorf("%s: no parameter sets", s.Name)
		}
	}
}

func TestBuiltinsStayFinite(t *testing.T) {
	// A few hundred steps from the default state must not blow up.
	for _, s := range Builtins() {
		p := s.Initial
		q := s.ParamSets[0].Values
		for i := 0; i < 500; i++ {
			p = s.Iterate(p, q)
			if !p.IsFinite() {
				t.Fatalf("%s: non-finite at step %d", s.Name, i)
			}
		}
	}
}

func TestDeJongStep(t *testing.T) {
	s := DeJong()
	q := s.ParamSets[0].Values
	got := s.Iterate(plane.Point{X: 1, Y: 1}, q)

	// sin(a) − cos(b), sin(c) − cos(d) at (1,1)
	if got.X > 0 {
		t.Errorf("unexpected sign for x: %v", got.X)
	}
	if !got.IsFinite() {
		t.Errorf("step not finite: %+v", got)
	}
}

func TestParametersClone(t *testing.T) {
	q := attractor.Parameters{"a": 1, "b": 2}
	c := q.Clone()
	c["a"] = 99
	if q["a"] != 1 {
		t.Error("Clone should not share storage")
	}
}
