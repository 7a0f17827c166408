package systems

import (
	"github.com/supermattydomain/AttractorCanvas/internal/attractor"
	"github.com/supermattydomain/AttractorCanvas/internal/plane"
)

// Custom is the user-replaceable system. Its iterate function may be
// swapped at runtime through the catalog; it starts out as the de Jong
// map so it renders something sensible before the user supplies code.
func Custom() attractor.System {
	return attractor.System{
		Name:        "custom",
		Iterate:     deJongStep,
		Initial:     plane.Point{X: 1, Y: 1},
		InitialZoom: 100,
		ParamSets: []attractor.ParameterSet{
			{Name: "default", Values: attractor.Parameters{
				"a": 1.4, "b": -2.3, "c": 2.4, "d": -2.1,
			}},
		},
	}
}
