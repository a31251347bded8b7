package gesture

import "errors"

// Sentinel errors for gesture path processing.
var (
	// ErrPathTooShort indicates a raw or deduped path with fewer than 2
	// points.
	ErrPathTooShort = errors.New("gesture: path must have at least 2 points")
	// ErrPathTooLong indicates a raw path exceeding Options.MaxGesturePoints,
	// rejected before any processing is attempted.
	ErrPathTooLong = errors.New("gesture: path exceeds the maximum point count")
)
