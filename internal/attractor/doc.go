// Package attractor provides core types for discrete-time 2D dynamical
// systems:
//
//   - [Parameters]: named map coefficients, opaque to the engine
//   - [IterateFunc]: one step of a map, (Point, Parameters) → Point
//   - [System]: a catalog entry with defaults and parameter sets
//   - [Outcome]: the terminal state of a simulation run
//
// The built-in systems live in the systems package; the engine package
// iterates them and estimates Lyapunov exponents.
package attractor
