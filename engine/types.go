package engine

// Candidate is one ranked result of Recognize: the word, its blended
// confidence in [0,1], the raw inputs that produced it, and a bitmask of
// which source contributed it.
type Candidate struct {
	Word           string
	Confidence     float64
	DTWDistance    float64
	FrequencyScore uint32
	SourceFlags    uint8
}

// SourceMainDict is the only source flag the engine itself produces: every
// candidate came from the single loaded dictionary.
const SourceMainDict uint8 = 0x01

// ScoringConfig holds every tunable Recognize consults. Configure replaces
// the held config wholesale; it takes effect on the next Recognize call.
type ScoringConfig struct {
	// ResampleCount is the target path length N for PathProcessor and
	// IdealPathGenerator.
	ResampleCount int

	// MinPointDistanceDp is the dedup threshold, in dp.
	MinPointDistanceDp float32

	// DTWBandwidthRatio sets the Sakoe-Chiba half-width as a fraction of N.
	DTWBandwidthRatio float64

	// FrequencyWeight is the base adaptive-confidence alpha before scaling.
	FrequencyWeight float64

	// MaxCandidatesEvaluated caps the number of dictionary entries scored
	// per Recognize call, applied after the three-tier filter cascade and
	// length filter, in dictionary order.
	MaxCandidatesEvaluated int

	// LengthFilterTolerance is the +/- tolerance applied to the
	// key-transition word-length estimate.
	LengthFilterTolerance float64

	// MaxDTWFloor is the minimum max_dtw used when exactly one candidate
	// survives filtering.
	MaxDTWFloor float64
}

// DefaultScoringConfig returns the canonical tuning: ResampleCount=64,
// MinPointDistanceDp=2.0, DTWBandwidthRatio=0.10, FrequencyWeight=0.30,
// MaxCandidatesEvaluated=20, LengthFilterTolerance=3.0, MaxDTWFloor=3.0.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		ResampleCount:          64,
		MinPointDistanceDp:     2.0,
		DTWBandwidthRatio:      0.10,
		FrequencyWeight:        0.30,
		MaxCandidatesEvaluated: 20,
		LengthFilterTolerance:  3.0,
		MaxDTWFloor:            3.0,
	}
}

// minCandidatesRequested and maxCandidatesRequested bound the
// max_candidates argument Recognize accepts.
const (
	minCandidatesRequested     = 1
	maxCandidatesRequested     = 20
	defaultCandidatesRequested = 8
)
