// Package dtw computes a band-constrained Dynamic Time Warping distance
// between two fixed-length gesture paths.
//
// Unlike a general-purpose DTW over arbitrary-length series, this package
// assumes both inputs already carry exactly gesture.ResampleCount (64)
// points — the common representation every NormalizedPath in this module
// shares — and constrains the warp to a Sakoe-Chiba band around the
// diagonal. Without the band, DTW would happily align a left-to-right
// gesture to a right-to-left reference path, producing false matches on
// mirror-image word shapes; the band forces the alignment to track the
// diagonal within a fixed slack.
//
// Algorithm outline:
//  1. Local cost is 2-D Euclidean distance on (x, y); time is excluded.
//  2. W = ceil(WindowOptions.Ratio * N), at least 1, bounds cell (i, j) to
//     |i-j| <= W.
//  3. D[0][0] = cost(a0, b0); D[0][j] = D[0][j-1] + cost(a0, bj) for j in
//     [1, min(W, N-1)]; all other initial cells are +Inf.
//  4. For i in [1, N-1], j ranges over [max(0, i-W), min(N-1, i+W)];
//     D[i][j] = cost(ai, bj) + min(D[i-1][j-1], D[i-1][j], D[i][j-1]).
//  5. The rolling two-row buffer keeps memory at O(N) regardless of the
//     band width.
//  6. The result is D[N-1][N-1] / N, a per-point cost so distances are
//     comparable across candidate sets of different sizes.
//
// Complexity: O(N*W) time, O(N) memory.
package dtw
