package catalog

import (
	"errors"
	"testing"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

func TestOrderingAndCustomSlot(t *testing.T) {
	c := New()
	if c.Len() < 2 {
		t.Fatalf("catalog too small: %d", c.Len())
	}

	for i := 0; i < c.Len(); i++ {
		sets, err := c.ParamSets(i)
		if err != nil {
			t.Fatalf("ParamSets(%d): %v", i, err)
		}
		last := sets[len(sets)-1]
		if last.Name != CustomSetName {
			t.Errorf("system %d: final set is %q, want %q", i, last.Name, CustomSetName)
		}
		// custom slot starts as a copy of the first built-in set
		for k, v := range sets[0].Values {
			if last.Values[k] != v {
				t.Errorf("system %d: custom[%q] = %v, want %v", i, k, last.Values[k], v)
			}
		}
	}
}

func TestSetCustomParamsKeepsShape(t *testing.T) {
	c := New()
	before, _ := c.ParamSets(0)
	n := len(before)

	if err := c.SetCustomParams(0, attractor.Parameters{"a": 42}); err != nil {
		t.Fatal(err)
	}

	after, _ := c.ParamSets(0)
	if len(after) != n {
		t.Errorf("set count changed: %d -> %d", n, len(after))
	}
	if after[len(after)-1].Values["a"] != 42 {
		t.Error("custom set not replaced")
	}
	// built-ins untouched
	for k, v := range before[0].Values {
		if after[0].Values[k] != v {
			t.Errorf("built-in set mutated at %q", k)
		}
	}
}

func TestSetCustomIterateOnlyLast(t *testing.T) {
	c := New()
	last := c.Len() - 1

	fn := func(p plane.Point, _ attractor.Parameters) plane.Point {
		return plane.Point{X: p.X + 1, Y: p.Y}
	}

	if err := c.SetCustomIterate(0, fn); !errors.Is(err, attractor.ErrNotCustom) {
		t.Errorf("replacing system 0 iterate: got %v, want ErrNotCustom", err)
	}
	if err := c.SetCustomIterate(last, fn); err != nil {
		t.Fatalf("replacing last iterate: %v", err)
	}

	it, err := c.Iterate(last)
	if err != nil {
		t.Fatal(err)
	}
	got := it(plane.Point{X: 1, Y: 2}, nil)
	if got.X != 2 || got.Y != 2 {
		t.Errorf("custom iterate not active: %+v", got)
	}

	if c.Len() != last+1 {
		t.Error("replacement changed catalog size")
	}
}

func TestIndexErrors(t *testing.T) {
	c := New()
	if _, err := c.System(-1); !errors.Is(err, attractor.ErrIndexRange) {
		t.Errorf("System(-1): %v", err)
	}
	if _, err := c.Params(0, 99); !errors.Is(err, attractor.ErrIndexRange) {
		t.Errorf("Params(0, 99): %v", err)
	}
	if _, err := c.Iterate(c.Len()); !errors.Is(err, attractor.ErrIndexRange) {
		t.Errorf("Iterate(len): %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	c := New()
	if i := c.IndexOf("dejong"); i != 0 {
		t.Errorf("IndexOf(dejong) = %d", i)
	}
	if i := c.IndexOf("no-such"); i != -1 {
		t.Errorf("IndexOf(no-such) = %d", i)
	}
}
