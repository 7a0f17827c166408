package systems

import (
	"math"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Clifford is the Clifford Pickover map:
//
//	x' = sin(a·y) + c·cos(a·x)
//	y' = sin(b·x) + d·cos(b·y)
func Clifford() attractor.System {
	return attractor.System{
		Name: "clifford",
		Iterate: func(p plane.Point, q attractor.Parameters) plane.Point {
			return plane.Point{
				X: math.Sin(q["a"]*p.Y) + q["c"]*math.Cos(q["a"]*p.X),
				Y: math.Sin(q["b"]*p.X) + q["d"]*math.Cos(q["b"]*p.Y),
			}
		},
		Initial:     plane.Point{X: 0.1, Y: 0.1},
		InitialZoom: 80,
		ParamSets: []attractor.ParameterSet{
			{Name: "wings", Values: attractor.Parameters{
				"a": -1.4, "b": 1.6, "c": 1.0, "d": 0.7,
			}},
			{Name: "knot", Values: attractor.Parameters{
				"a": 1.7, "b": 1.7, "c": 0.06, "d": 1.2,
			}},
			{Name: "veil", Values: attractor.Parameters{
				"a": -1.7, "b": 1.3, "c": -0.1, "d": -1.2,
			}},
		},
	}
}
