// Package engine composes keyboard, gesture, idealpath, dtw, and dictionary
// into the orchestration facade: Init loads a layout and a dictionary,
// Recognize turns one raw touch trajectory into a confidence-ranked
// candidate list, UpdateLayout and Configure adjust state between calls.
//
// The Engine is stateful across calls (it owns a layout, a dictionary, an
// ideal-path cache, and a scoring configuration) but performs no internal
// concurrency: Recognize runs to completion on the calling goroutine, and
// concurrent calls on the same Engine are the caller's responsibility to
// serialize.
package engine
