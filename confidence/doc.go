// Package confidence blends a candidate's shape match (DTW distance) against
// its dictionary frequency into a single [0,1] score, adaptively weighting
// the two so that frequency dominates only when shape alone can't
// discriminate between candidates.
//
// Three pieces compose in order: ScaleDTW picks the denominator that turns a
// raw DTW distance into a comparable [0,1] value across the current
// candidate set; AdaptiveWeight shrinks the frequency term's influence when
// every candidate's shape score is already close together (frequency would
// otherwise dominate a set of near-identical shapes); Confidence combines
// both into the final score.
package confidence
