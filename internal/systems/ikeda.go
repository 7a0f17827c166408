package systems

import (
	"math"

	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Ikeda models a light pulse in a ring cavity:
//
//	t  = 0.4 − 6 / (1 + x² + y²)
//	x' = 1 + u·(x·cos t − y·sin t)
//	y' = u·(x·sin t + y·cos t)
func Ikeda() attractor.System {
	return attractor.System{
		Name: "ikeda",
		Iterate: func(p plane.Point, q attractor.Parameters) plane.Point {
			u := q["u"]
			t := 0.4 - 6/(1+p.X*p.X+p.Y*p.Y)
			sin, cos := math.Sincos(t)
			return plane.Point{
				X: 1 + u*(p.X*cos-p.Y*sin),
				Y: u * (p.X*sin + p.Y*cos),
			}
		},
		Initial:     plane.Point{},
		InitialZoom: 60,
		ParamSets: []attractor.ParameterSet{
			{Name: "chaotic", Values: attractor.Parameters{"u": 0.918}},
			{Name: "calm", Values: attractor.Parameters{"u": 0.9}},
		},
	}
}
