package systems

import (
	"math"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// DeJong is the Peter de Jong map:
//
//	x' = sin(a·y) − cos(b·x)
//	y' = sin(c·x) − cos(d·y)
func DeJong() attractor.System {
	return attractor.System{
		Name:        "dejong",
		Iterate:     deJongStep,
		Initial:     plane.Point{X: 1, Y: 1},
		InitialZoom: 100,
		ParamSets: []attractor.ParameterSet{
			{Name: "swirl", Values: attractor.Parameters{
				"a": -0.89567065, "b": 1.59095860, "c": 1.8515863, "d": 2.1974306,
			}},
			{Name: "rings", Values: attractor.Parameters{
				"a": 1.4, "b": -2.3, "c": 2.4, "d": -2.1,
			}},
			{Name: "tangle", Values: attractor.Parameters{
				"a": -2.7, "b": -0.09, "c": -0.86, "d": -2.2,
			}},
			{Name: "moth", Values: attractor.Parameters{
				"a": 2.01, "b": -2.53, "c": 1.61, "d": -0.33,
			}},
		},
	}
}

func deJongStep(p plane.Point, q attractor.Parameters) plane.Point {
	return plane.Point{
		X: math.Sin(q["a"]*p.Y) - math.Cos(q["b"]*p.X),
		Y: math.Sin(q["c"]*p.X) - math.Cos(q["d"]*p.Y),
	}
}
