package systems

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Henon is the Hénon map:
//
//	x' = 1 − a·x² + y
//	y' = b·x
func Henon() attractor.System {
	return attractor.System{
		Name: "henon",
		Iterate: func(p plane.Point, q attractor.Parameters) plane.Point {
			return plane.Point{
				X: 1 - q["a"]*p.X*p.X + p.Y,
				Y: q["b"] * p.X,
			}
		},
		Initial:     plane.Point{},
		InitialZoom: 120,
		ParamSets: []attractor.ParameterSet{
			{Name: "classic", Values: attractor.Parameters{"a": 1.4, "b": 0.3}},
			{Name: "sparse", Values: attractor.Parameters{"a": 1.25, "b": 0.3}},
		},
	}
}
