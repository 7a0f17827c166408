// Package systems provides the built-in discrete-time 2D maps.
//
// Each constructor returns a fresh [attractor.System] value with its
// iterate function, default initial point, default zoom, and named
// parameter sets. The catalog appends a mutable "custom" parameter set
// to each, and the final system (Custom) is itself fully replaceable.
package systems

import "github.com/supermattydomain/AttractorCanvas/internal/attractor"

// Builtins returns the catalog order: the custom system is always last.
func Builtins() []attractor.System {
	return []attractor.System{
		DeJong(),
		Clifford(),
		Tinkerbell(),
		Henon(),
		Ikeda(),
		Mira(),
		Custom(),
	}
}
