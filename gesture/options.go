package gesture

// Options configures PathProcessor. Algorithms that take Options never
// panic; only the With* constructors validate and panic on input that can
// never produce a sensible path.
type Options struct {
	// ResampleCount is the target path length N. Defaults to ResampleCount
	// (64), the value every other component assumes.
	ResampleCount int

	// MinPointDistanceDp is the dedup threshold: an interior point is kept
	// only if it is at least this far (Euclidean, dp) from the last kept
	// point.
	MinPointDistanceDp float32

	// MaxGesturePoints bounds the raw input size accepted before any
	// processing is attempted, so an unbounded or malicious input fails
	// fast rather than doing unbounded dedup/resample work.
	MaxGesturePoints int
}

// DefaultOptions returns the canonical tuning: ResampleCount=64,
// MinPointDistanceDp=2.0, MaxGesturePoints=10000.
func DefaultOptions() Options {
	return Options{
		ResampleCount:      ResampleCount,
		MinPointDistanceDp: 2.0,
		MaxGesturePoints:   10000,
	}
}

// WithResampleCount returns opts with ResampleCount set to n. Panics if n <
// 2: a path cannot be resampled to fewer than 2 points.
func WithResampleCount(opts Options, n int) Options {
	if n < 2 {
		panic("gesture: ResampleCount must be >= 2")
	}
	opts.ResampleCount = n
	return opts
}

// WithMinPointDistanceDp returns opts with MinPointDistanceDp set to d.
// Panics if d < 0.
func WithMinPointDistanceDp(opts Options, d float32) Options {
	if d < 0 {
		panic("gesture: MinPointDistanceDp must be >= 0")
	}
	opts.MinPointDistanceDp = d
	return opts
}

// WithMaxGesturePoints returns opts with MaxGesturePoints set to n. Panics
// if n < 2.
func WithMaxGesturePoints(opts Options, n int) Options {
	if n < 2 {
		panic("gesture: MaxGesturePoints must be >= 2")
	}
	opts.MaxGesturePoints = n
	return opts
}
