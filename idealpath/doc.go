// Package idealpath generates the reference NormalizedPath a candidate word
// is scored against: the polyline through the word's character-key centers,
// resampled and normalized exactly like a user's gesture (gesture.Resample,
// gesture.NormalizeBoundingBox) so the two are comparable under band-DTW.
//
// Generator is a pure function of (layout, word) with one piece of state: a
// lowercased-word cache, since generation is re-derived for the same word on
// every recognize call otherwise. SetLayout invalidates the cache — a key's
// center moving anywhere invalidates every cached ideal path, not just the
// ones that use that key, since no per-key invalidation bookkeeping is kept.
package idealpath
