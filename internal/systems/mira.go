package systems

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Mira is the Gumowski–Mira map:
//
//	f(x) = a·x + 2·(1−a)·x² / (1 + x²)
//	x'   = b·y + f(x)
//	y'   = f(x') − x
func Mira() attractor.System {
	return attractor.System{
		Name: "mira",
		Iterate: func(p plane.Point, q attractor.Parameters) plane.Point {
			a, b := q["a"], q["b"]
			f := func(x float64) float64 {
				return a*x + 2*(1-a)*x*x/(1+x*x)
			}
			nx := b*p.Y + f(p.X)
			return plane.Point{X: nx, Y: f(nx) - p.X}
		},
		Initial:     plane.Point{X: 12, Y: 0},
		InitialZoom: 10,
		ParamSets: []attractor.ParameterSet{
			{Name: "lace", Values: attractor.Parameters{"a": -0.19, "b": 0.9998}},
			{Name: "web", Values: attractor.Parameters{"a": 0.31, "b": 1.0}},
		},
	}
}
