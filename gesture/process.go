package gesture

import (
	"math"

	"github.com/swipecore/swipecore/keyboard"
)

// Normalize runs the three-stage PathProcessor pipeline (dedup, resample,
// bounding-box normalize) over raw and derives start/end key indices from
// layout. It returns ErrPathTooLong if raw exceeds opts.MaxGesturePoints, or
// ErrPathTooShort if raw or its deduped form has fewer than 2 points.
func Normalize(raw []RawPoint, layout keyboard.KeyboardLayout, opts Options) (NormalizedPath, error) {
	if len(raw) > opts.MaxGesturePoints {
		return NormalizedPath{}, ErrPathTooLong
	}
	if len(raw) < 2 {
		return NormalizedPath{}, ErrPathTooShort
	}

	deduped := dedup(raw, opts.MinPointDistanceDp)
	if len(deduped) < 2 {
		return NormalizedPath{}, ErrPathTooShort
	}

	arcLen := ArcLength(deduped)
	resampled := Resample(deduped, opts.ResampleCount)
	path := NormalizeBoundingBox(resampled, arcLen)

	if idx, ok := layout.NearestCharacterKey(raw[0].X, raw[0].Y); ok {
		path.StartKeyIndex = idx
	} else {
		path.StartKeyIndex = -1
	}
	if idx, ok := layout.NearestCharacterKey(raw[len(raw)-1].X, raw[len(raw)-1].Y); ok {
		path.EndKeyIndex = idx
	} else {
		path.EndKeyIndex = -1
	}

	return path, nil
}

// dedup keeps the first point unconditionally, an interior point only if it
// is at least minDist from the last kept point, and always keeps the last
// point. Paths of length <= 2 are returned unchanged, matching the
// reference: such a path has no interior point to drop.
func dedup(points []RawPoint, minDist float32) []RawPoint {
	if len(points) <= 2 {
		return points
	}

	result := make([]RawPoint, 0, len(points))
	result = append(result, points[0])
	for i := 1; i < len(points)-1; i++ {
		last := result[len(result)-1]
		cur := points[i]
		dx := cur.X - last.X
		dy := cur.Y - last.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if dist >= minDist {
			result = append(result, cur)
		}
	}
	result = append(result, points[len(points)-1])

	return result
}

// ArcLength sums the Euclidean length of consecutive segments.
func ArcLength(points []RawPoint) float32 {
	var total float32
	for i := 1; i < len(points); i++ {
		dx := points[i].X - points[i-1].X
		dy := points[i].Y - points[i-1].Y
		total += float32(math.Sqrt(float64(dx*dx + dy*dy)))
	}
	return total
}

// Resample walks points' arc length emitting exactly resampleCount
// equidistant points, per the $1 Unistroke algorithm (Wobbrock et al.,
// 2007): when the running segment length reaches the target interval, the
// interpolated point is both emitted and spliced back into the working
// polyline as the new current vertex, so the segment's residual carries
// forward correctly. Shared by PathProcessor and idealpath.Generator so a
// user gesture and a word's ideal path are resampled identically.
func Resample(points []RawPoint, resampleCount int) []RawPoint {
	if len(points) < 2 {
		return points
	}

	totalLen := ArcLength(points)
	if totalLen < 1e-6 {
		filled := make([]RawPoint, resampleCount)
		for i := range filled {
			filled[i] = points[0]
		}
		return filled
	}

	interval := totalLen / float32(resampleCount-1)
	result := make([]RawPoint, 0, resampleCount)
	result = append(result, points[0])

	D := float32(0)
	i := 1
	pts := append([]RawPoint(nil), points...)

	for i < len(pts) && len(result) < resampleCount-1 {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		if D+d >= interval {
			t := (interval - D) / d
			newPt := RawPoint{
				X:   pts[i-1].X + t*dx,
				Y:   pts[i-1].Y + t*dy,
				TMs: pts[i-1].TMs + int64(t*float32(pts[i].TMs-pts[i-1].TMs)),
			}
			result = append(result, newPt)

			pts = append(pts, RawPoint{})
			copy(pts[i+1:], pts[i:])
			pts[i] = newPt

			D = 0
			i++
		} else {
			D += d
			i++
		}
	}

	for len(result) < resampleCount {
		result = append(result, pts[len(pts)-1])
	}

	return result[:resampleCount]
}

// NormalizeBoundingBox scales points into [0,1]x[0,1] by the larger of the
// two extents, preserving aspect ratio, and linearly maps timestamps into
// [0,1]. A near-point path (both extents below 1e-3) collapses to N copies
// of (0.5, 0.5, 0.5) with AspectRatio 1. Shared by PathProcessor and
// idealpath.Generator.
func NormalizeBoundingBox(points []RawPoint, totalArcLen float32) NormalizedPath {
	if len(points) == 0 {
		return NormalizedPath{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	width := maxX - minX
	height := maxY - minY

	if width < 0.001 && height < 0.001 {
		pts := make([]NormalizedPoint, len(points))
		for i := range pts {
			pts[i] = NormalizedPoint{X: 0.5, Y: 0.5, T: 0.5}
		}
		return NormalizedPath{
			Points:        pts,
			AspectRatio:   1.0,
			TotalArcLenDp: totalArcLen,
			StartKeyIndex: -1,
			EndKeyIndex:   -1,
		}
	}

	scale := width
	if height > scale {
		scale = height
	}
	aspectRatio := float32(1.0)
	if height > 0.001 {
		aspectRatio = width / height
	}

	firstTs := points[0].TMs
	lastTs := points[len(points)-1].TMs
	tsRange := float32(lastTs - firstTs)

	pts := make([]NormalizedPoint, len(points))
	for i, p := range points {
		nx := (p.X - minX) / scale
		ny := (p.Y - minY) / scale
		nt := float32(0.5)
		if tsRange > 0 {
			nt = float32(p.TMs-firstTs) / tsRange
		}
		pts[i] = NormalizedPoint{X: nx, Y: ny, T: nt}
	}

	return NormalizedPath{
		Points:        pts,
		AspectRatio:   aspectRatio,
		TotalArcLenDp: totalArcLen,
		StartKeyIndex: -1,
		EndKeyIndex:   -1,
	}
}
