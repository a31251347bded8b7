package confidence

// ScaleDTW picks the denominator used to normalize a raw DTW distance into
// [0,1] across the current candidate set.
//
//   - Exactly one candidate: rawMax alone would always normalize to 1.0,
//     driving confidence toward a constant ~alpha regardless of match
//     quality. The floor turns it into a meaningful absolute scale.
//   - More than one candidate: only a tiny divide-by-zero guard is applied;
//     a larger floor here would compress real shape differences and kill
//     ranking.
func ScaleDTW(rawMax float64, candidateCount int, opts Options) float64 {
	if candidateCount <= 1 {
		if rawMax > opts.SingleCandidateFloor {
			return rawMax
		}
		return opts.SingleCandidateFloor
	}
	if rawMax > opts.MultiCandidateFloor {
		return rawMax
	}
	return opts.MultiCandidateFloor
}

// AdaptiveWeight scales down opts.FrequencyWeight when the candidate set's
// raw DTW range is small: when every candidate's shape score is nearly
// identical, frequency would otherwise dominate ranking entirely. The
// WeightFloorRatio keeps frequency from vanishing even when the range is
// zero.
func AdaptiveWeight(rawMin, rawMax float64, candidateCount int, opts Options) float64 {
	if candidateCount <= 1 {
		return opts.FrequencyWeight
	}
	rawRange := rawMax - rawMin
	if rawRange >= opts.RangeThreshold {
		return opts.FrequencyWeight
	}
	scale := rawRange / opts.RangeThreshold
	if scale < opts.WeightFloorRatio {
		scale = opts.WeightFloorRatio
	}
	return opts.FrequencyWeight * scale
}
