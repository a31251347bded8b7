// Package swipecore is a swipe-keyboard gesture recognition core: given a
// keyboard layout, a loaded word dictionary, and a raw sequence of
// time-stamped touch points, it produces a confidence-ranked list of
// dictionary word candidates.
//
// The core composes seven packages, leaves first:
//
//	keyboard/   — key geometry, nearest-key and code-point lookup
//	gesture/    — dedup, $1 Unistroke resample, bounding-box normalization
//	idealpath/  — per-word reference paths, cached by lowercased word
//	dtw/        — band-constrained (Sakoe-Chiba) Dynamic Time Warping
//	dictionary/ — the on-disk word/frequency format and its query operations
//	confidence/ — the adaptive shape-vs-frequency scoring blend
//	engine/     — the orchestration facade: Init, UpdateLayout, Recognize
//
// cmd/swipecore is a batch CLI host standing in for the touch-capture and
// rendering layers a real keyboard would provide around this core.
package swipecore
