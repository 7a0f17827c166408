// Package engine iterates a dynamical system, plots visited points
// into a pixel buffer, and estimates the largest Lyapunov exponent
// from a renormalized shadow trajectory.
//
// A run moves through Idle → Running → one of Completed, Stopped,
// Escaped, Converged or Faulted, then back to Idle awaiting the next
// StartRun. Work is executed cooperatively: each [Engine.Advance] call
// runs a bounded slice of iterations, flushes the buffer to the
// display surface and reports progress, so a single goroutine can
// interleave a multi-million-iteration render with a responsive UI.
//
// Each run is identified by a monotonically increasing generation.
// Only the current generation may write pixels or fire events; a
// superseded run's slice detects the mismatch and exits without
// side effects, which is what makes restart safe without locks.
package engine
