package dtw

import "errors"

// Sentinel errors for the dtw package.
var (
	// ErrInvalidPath indicates an input path does not carry exactly N
	// points. Distance itself never returns it: it reports an invalid
	// input by returning +Inf.
	ErrInvalidPath = errors.New("dtw: path must have exactly N points")
)

// WindowOptions configures the Sakoe-Chiba band.
//
//   - Ratio — fraction of N used as the band half-width, W = ceil(Ratio*N).
//     W is never less than 1: a Ratio of 0 (or negative) yields a band of
//     half-width 1, not an unconstrained alignment.
type WindowOptions struct {
	Ratio float64
}

// DefaultWindowOptions returns the canonical band: Ratio = 0.10.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Ratio: 0.10}
}
