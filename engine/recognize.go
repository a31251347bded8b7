package engine

import (
	"math"
	"sort"

	"github.com/swipecore/swipecore/confidence"
	"github.com/swipecore/swipecore/dictionary"
	"github.com/swipecore/swipecore/dtw"
	"github.com/swipecore/swipecore/gesture"
	"github.com/swipecore/swipecore/keyboard"
)

// Recognize turns raw into a confidence-ranked candidate list. It never
// fails loudly: any validation failure returns an empty slice and records
// LastError; a scoring miss on one candidate (an invalid ideal path) is
// skipped silently. maxCandidates is clamped to [1, 20], default 8 when 0.
func (e *Engine) Recognize(raw []gesture.RawPoint, maxCandidates int) []Candidate {
	if !e.initialized {
		e.recordError(ErrorNotInitialized, errNotInitialized.Error())
		return nil
	}

	maxCandidates = clampCandidateCount(maxCandidates)

	if len(raw) < 2 {
		e.recordError(ErrorPathTooShort, "raw gesture has fewer than 2 points")
		return nil
	}

	path, err := gesture.Normalize(raw, e.layout, gesture.Options{
		ResampleCount:      e.config.ResampleCount,
		MinPointDistanceDp: e.config.MinPointDistanceDp,
		MaxGesturePoints:   gesture.DefaultOptions().MaxGesturePoints,
	})
	if err != nil {
		e.recordError(ErrorPathTooShort, err.Error())
		return nil
	}

	startChar, endChar, hasEndpoints := e.startEndChars(path)
	estimatedLen := e.estimateWordLength(raw)

	entries := e.filterCandidates(startChar, endChar, hasEndpoints, estimatedLen)
	if len(entries) > e.config.MaxCandidatesEvaluated {
		entries = entries[:e.config.MaxCandidatesEvaluated]
	}

	scored := e.scoreCandidates(path, entries)
	if len(scored) == 0 {
		return nil
	}

	rankAndFinalize(scored, e.dict.MaxFrequency(), e.config)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})

	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}
	return scored
}

func clampCandidateCount(n int) int {
	if n == 0 {
		return defaultCandidatesRequested
	}
	if n < minCandidatesRequested {
		return minCandidatesRequested
	}
	if n > maxCandidatesRequested {
		return maxCandidatesRequested
	}
	return n
}

// startEndChars reads the normalized path's start/end key indices and
// returns their lowercased ASCII letters. hasEndpoints is false unless both
// keys resolve to a-z/A-Z.
func (e *Engine) startEndChars(path gesture.NormalizedPath) (start, end byte, hasEndpoints bool) {
	startOk, startByte := asciiLetterAt(e.layout, path.StartKeyIndex)
	endOk, endByte := asciiLetterAt(e.layout, path.EndKeyIndex)
	if !startOk || !endOk {
		return 0, 0, false
	}
	return startByte, endByte, true
}

// asciiLetterAt returns the lowercased ASCII letter produced by the key at
// keyIndex, and true, only if that index is valid and its code point falls
// in a-z/A-Z.
func asciiLetterAt(layout keyboard.KeyboardLayout, keyIndex int) (bool, byte) {
	if keyIndex < 0 || keyIndex >= len(layout.Keys) {
		return false, 0
	}
	cp := layout.Keys[keyIndex].CodePoint
	if cp >= 'a' && cp <= 'z' {
		return true, byte(cp)
	}
	if cp >= 'A' && cp <= 'Z' {
		return true, byte(cp - 'A' + 'a')
	}
	return false, 0
}

// estimateWordLength walks the raw points, counting how many times the
// nearest character key changes from the previous point (ignoring -1). The
// estimate is max(1, count); it is invariant to zigzag path density, unlike
// an arc-length-over-key-pitch heuristic.
func (e *Engine) estimateWordLength(raw []gesture.RawPoint) int {
	count := 0
	prev := -1
	for _, p := range raw {
		idx, ok := e.layout.NearestCharacterKey(p.X, p.Y)
		if !ok {
			continue
		}
		if idx != prev && prev != -1 {
			count++
		}
		prev = idx
	}
	if count < 1 {
		count = 1
	}
	return count
}

// filterCandidates runs the three-tier cascade (start+end, then start-only,
// then all) followed by the length-tolerance filter, falling back to the
// unfiltered tier result if the length filter would empty the set.
func (e *Engine) filterCandidates(start, end byte, hasEndpoints bool, estimatedLen int) []dictionary.Entry {
	var tier []dictionary.Entry
	if hasEndpoints {
		tier = e.dict.StartsAndEndsWith(start, end)
	}
	if len(tier) == 0 && hasEndpoints {
		tier = e.dict.StartsWith(start)
	}
	if len(tier) == 0 {
		tier = e.dict.All()
	}

	filtered := lengthFilter(tier, estimatedLen, e.config.LengthFilterTolerance)
	if len(filtered) == 0 {
		return tier
	}
	return filtered
}

func lengthFilter(entries []dictionary.Entry, estimatedLen int, tolerance float64) []dictionary.Entry {
	var result []dictionary.Entry
	for _, e := range entries {
		diff := math.Abs(float64(len(e.Word)) - float64(estimatedLen))
		if diff <= tolerance {
			result = append(result, e)
		}
	}
	return result
}

// scoreCandidates computes a DTW distance for every entry whose ideal path
// is valid, skipping the rest silently.
func (e *Engine) scoreCandidates(userPath gesture.NormalizedPath, entries []dictionary.Entry) []Candidate {
	opts := dtw.WindowOptions{Ratio: e.config.DTWBandwidthRatio}

	var result []Candidate
	for _, entry := range entries {
		ideal := e.gen.GetIdealPath(entry.Word)
		if !ideal.IsValid() {
			continue
		}
		d := dtw.Distance(userPath, ideal, opts)
		if math.IsInf(d, 1) {
			continue
		}
		result = append(result, Candidate{
			Word:           entry.Word,
			DTWDistance:    d,
			FrequencyScore: entry.Frequency,
			SourceFlags:    SourceMainDict,
		})
	}
	return result
}

// rankAndFinalize computes the DTW-scale normalization, the adaptive
// frequency weight, and each candidate's final confidence, mutating
// scored in place.
func rankAndFinalize(scored []Candidate, maxFreq uint32, config ScoringConfig) {
	rawMin, rawMax := scored[0].DTWDistance, scored[0].DTWDistance
	for _, c := range scored[1:] {
		if c.DTWDistance < rawMin {
			rawMin = c.DTWDistance
		}
		if c.DTWDistance > rawMax {
			rawMax = c.DTWDistance
		}
	}

	confOpts := confidence.Options{
		FrequencyWeight:      config.FrequencyWeight,
		SingleCandidateFloor: config.MaxDTWFloor,
		MultiCandidateFloor:  0.01,
		RangeThreshold:       0.5,
		WeightFloorRatio:     0.1,
	}

	maxDTW := confidence.ScaleDTW(rawMax, len(scored), confOpts)
	alpha := confidence.AdaptiveWeight(rawMin, rawMax, len(scored), confOpts)

	for i := range scored {
		scored[i].Confidence = confidence.Confidence(scored[i].DTWDistance, maxDTW, scored[i].FrequencyScore, maxFreq, alpha)
	}
}
