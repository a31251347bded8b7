// Package gesture turns a raw, time-stamped touch trajectory into a
// fixed-length NormalizedPath: a sequence of exactly N points on a common
// [0,1]x[0,1] coordinate convention that the rest of the pipeline can compare
// directly, regardless of the gesture's original speed, size, or position.
//
// PathProcessor applies three stages in order — dedup, $1-Unistroke
// equidistant resample (Wobbrock et al., 2007), and aspect-preserving
// bounding-box normalization — the same three stages IdealPathGenerator
// applies to a word's key-center polyline, so a user gesture and a
// dictionary word's ideal path are always compared on equal footing.
package gesture
