package dtw

import (
	"math"

	"github.com/swipecore/swipecore/gesture"
)

// Distance computes the band-constrained DTW distance between a and b.
// Both must be valid (exactly gesture.ResampleCount points); otherwise
// Distance returns +Inf. The local cost is 2-D Euclidean distance on (x, y)
// only — time is never part of the cost. The result is the raw DTW total
// divided by N, a per-point cost.
func Distance(a, b gesture.NormalizedPath, opts WindowOptions) float64 {
	if !a.IsValid() || !b.IsValid() {
		return math.Inf(1)
	}

	n := gesture.ResampleCount
	w := int(math.Ceil(opts.Ratio * float64(n)))
	if w < 1 {
		w = 1
	}
	inf := math.Inf(1)

	prev := make([]float64, n)
	curr := make([]float64, n)
	for j := range prev {
		prev[j] = inf
	}

	prev[0] = pointDistance(a.Points[0], b.Points[0])
	firstRowUpper := w
	if n-1 < firstRowUpper {
		firstRowUpper = n - 1
	}
	for j := 1; j <= firstRowUpper; j++ {
		prev[j] = prev[j-1] + pointDistance(a.Points[0], b.Points[j])
	}

	for i := 1; i < n; i++ {
		jMin := i - w
		if jMin < 0 {
			jMin = 0
		}
		jMax := i + w
		if jMax > n-1 {
			jMax = n - 1
		}

		for j := range curr {
			curr[j] = inf
		}

		for j := jMin; j <= jMax; j++ {
			cost := pointDistance(a.Points[i], b.Points[j])
			best := prev[j]
			if j > 0 {
				if curr[j-1] < best {
					best = curr[j-1]
				}
				if prev[j-1] < best {
					best = prev[j-1]
				}
			}
			if math.IsInf(best, 1) {
				curr[j] = inf
			} else {
				curr[j] = cost + best
			}
		}

		prev, curr = curr, prev
	}

	raw := prev[n-1]
	if math.IsInf(raw, 1) {
		return inf
	}
	return raw / float64(n)
}

// pointDistance is the 2-D Euclidean distance between two normalized points,
// ignoring their time component.
func pointDistance(a, b gesture.NormalizedPoint) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
