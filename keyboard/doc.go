// Package keyboard describes the geometry a swipe gesture is recognized
// against: a set of key centers and extents on a fixed-size surface, plus the
// two lookups the rest of the pipeline needs — nearest character key to a
// point, and the key carrying a given code point.
//
// A KeyboardLayout is immutable once built and holds no behavior beyond pure
// geometry: no I/O, no rendering, no input handling. Everything here is
// synchronous and safe for concurrent reads (nothing mutates a KeyboardLayout
// after construction).
package keyboard
