package plane

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	views := []Viewport{
		{Centre: Point{}, Zoom: 100, Width: 400, Height: 400},
		{Centre: Point{X: -1.5, Y: 0.7}, Zoom: 37.5, Width: 321, Height: 199},
		{Centre: Point{X: 4, Y: -4}, Zoom: 1, Width: 16, Height: 9},
	}

	for _, v := range views {
		for c := 0; c < v.Width; c++ {
			if got := v.XToCol(v.ColToX(c)); got != c {
				t.Fatalf("zoom %v: XToCol(ColToX(%d)) = %d", v.Zoom, c, got)
			}
		}
		for r := 0; r < v.Height; r++ {
			if got := v.YToRow(v.RowToY(r)); got != r {
				t.Fatalf("zoom %v: YToRow(RowToY(%d)) = %d", v.Zoom, r, got)
			}
		}
	}
}

func TestAxisOrientation(t *testing.T) {
	v := Viewport{Centre: Point{}, Zoom: 100, Width: 400, Height: 400}

	// x increases with column
	if !(v.ColToX(300) > v.ColToX(100)) {
		t.Error("x should increase with column")
	}
	// y decreases with row (inverted axis)
	if !(v.RowToY(300) < v.RowToY(100)) {
		t.Error("y should decrease with row")
	}
}

func TestZoomScalesSpan(t *testing.T) {
	v := Viewport{Centre: Point{}, Zoom: 50, Width: 200, Height: 100}
	span := v.ColToX(v.Width-1) - v.ColToX(0)
	want := float64(v.Width-1) / v.Zoom
	if math.Abs(span-want) > 1e-12 {
		t.Errorf("horizontal span = %v, want %v", span, want)
	}
}

func TestContains(t *testing.T) {
	v := Viewport{Centre: Point{}, Zoom: 100, Width: 400, Height: 400}

	tests := []struct {
		name string
		p    Point
		in   bool
	}{
		{"origin", Point{}, true},
		{"near left edge", Point{X: -1.99, Y: 0}, true},
		{"past right edge", Point{X: 2.5, Y: 0}, false},
		{"past top edge", Point{X: 0, Y: 2.5}, false},
		{"far away", Point{X: 1e6, Y: 1e6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Contains(tt.p); got != tt.in {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.in)
			}
		})
	}
}

func TestPoint_IsFinite(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		ok   bool
	}{
		{"zero", Point{}, true},
		{"normal", Point{X: 1.5, Y: -2.5}, true},
		{"nan x", Point{X: math.NaN(), Y: 0}, false},
		{"inf y", Point{X: 0, Y: math.Inf(1)}, false},
		{"neg inf x", Point{X: math.Inf(-1), Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsFinite(); got != tt.ok {
				t.Errorf("IsFinite() = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestPoint_Dist(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 4, Y: 6}
	if d := a.Dist(b); math.Abs(d-5) > 1e-12 {
		t.Errorf("Dist = %v, want 5", d)
	}
}
