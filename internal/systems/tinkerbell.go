package systems

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Tinkerbell is the Tinkerbell map:
//
//	x' = x² − y² + a·x + b·y
//	y' = 2·x·y + c·x + d·y
func Tinkerbell() attractor.System {
	return attractor.System{
		Name: "tinkerbell",
		Iterate: func(p plane.Point, q attractor.Parameters) plane.Point {
			return plane.Point{
				X: p.X*p.X - p.Y*p.Y + q["a"]*p.X + q["b"]*p.Y,
				Y: 2*p.X*p.Y + q["c"]*p.X + q["d"]*p.Y,
			}
		},
		Initial:     plane.Point{X: -0.72, Y: -0.64},
		InitialZoom: 220,
		ParamSets: []attractor.ParameterSet{
			{Name: "classic", Values: attractor.Parameters{
				"a": 0.9, "b": -0.6013, "c": 2.0, "d": 0.5,
			}},
			{Name: "folded", Values: attractor.Parameters{
				"a": 0.3, "b": 0.6, "c": 2.0, "d": 0.27,
			}},
		},
	}
}
