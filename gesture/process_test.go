package gesture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipecore/swipecore/gesture"
	"github.com/swipecore/swipecore/keyboard"
)

func straightLineLayout(t *testing.T) keyboard.KeyboardLayout {
	t.Helper()
	layout, err := keyboard.New("en-US", []keyboard.KeyDescriptor{
		{Label: "a", CodePoint: 'a', CenterX: 0, CenterY: 0, Width: 10, Height: 10},
		{Label: "z", CodePoint: 'z', CenterX: 100, CenterY: 0, Width: 10, Height: 10},
	}, 120, 40)
	require.NoError(t, err)
	return layout
}

func TestNormalize_TooShort(t *testing.T) {
	layout := straightLineLayout(t)
	_, err := gesture.Normalize([]gesture.RawPoint{{X: 0, Y: 0}}, layout, gesture.DefaultOptions())
	assert.ErrorIs(t, err, gesture.ErrPathTooShort)
}

func TestNormalize_TooLong(t *testing.T) {
	layout := straightLineLayout(t)
	opts := gesture.DefaultOptions()
	raw := make([]gesture.RawPoint, opts.MaxGesturePoints+1)
	_, err := gesture.Normalize(raw, layout, opts)
	assert.ErrorIs(t, err, gesture.ErrPathTooLong)
}

// TestNormalize_ResampleCount checks P1: a sufficiently long raw path always
// normalizes to exactly ResampleCount points.
func TestNormalize_ResampleCount(t *testing.T) {
	layout := straightLineLayout(t)
	raw := make([]gesture.RawPoint, 0, 20)
	for i := 0; i < 20; i++ {
		raw = append(raw, gesture.RawPoint{X: float32(i) * 5, Y: 0, TMs: int64(i) * 10})
	}
	path, err := gesture.Normalize(raw, layout, gesture.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, path.IsValid())
	assert.Len(t, path.Points, gesture.ResampleCount)
}

// TestNormalize_MonotonicLeftToRight checks P3: a monotonically
// left-to-right raw path normalizes with x_first < x_last.
func TestNormalize_MonotonicLeftToRight(t *testing.T) {
	layout := straightLineLayout(t)
	raw := make([]gesture.RawPoint, 0, 10)
	for i := 0; i < 10; i++ {
		raw = append(raw, gesture.RawPoint{X: float32(i) * 11, Y: float32(i), TMs: int64(i) * 10})
	}
	path, err := gesture.Normalize(raw, layout, gesture.DefaultOptions())
	require.NoError(t, err)
	first := path.Points[0]
	last := path.Points[len(path.Points)-1]
	assert.Less(t, first.X, last.X)
}

// TestNormalize_Bounds checks P2: all normalized coordinates lie in
// [-0.01, 1.01].
func TestNormalize_Bounds(t *testing.T) {
	layout := straightLineLayout(t)
	raw := []gesture.RawPoint{
		{X: 0, Y: 0, TMs: 0},
		{X: 40, Y: 30, TMs: 50},
		{X: 90, Y: 5, TMs: 100},
		{X: 100, Y: 0, TMs: 150},
	}
	path, err := gesture.Normalize(raw, layout, gesture.DefaultOptions())
	require.NoError(t, err)
	for _, p := range path.Points {
		assert.GreaterOrEqual(t, p.X, float32(-0.01))
		assert.LessOrEqual(t, p.X, float32(1.01))
		assert.GreaterOrEqual(t, p.Y, float32(-0.01))
		assert.LessOrEqual(t, p.Y, float32(1.01))
	}
}

// TestNormalize_DegenerateCollapse checks the near-point collapse: a path
// whose points are all within 1e-3 dp of each other normalizes to
// ResampleCount copies of (0.5, 0.5, 0.5) with AspectRatio 1.
func TestNormalize_DegenerateCollapse(t *testing.T) {
	layout := straightLineLayout(t)
	raw := []gesture.RawPoint{
		{X: 10, Y: 10, TMs: 0},
		{X: 10.0001, Y: 10.0001, TMs: 5},
		{X: 10, Y: 10, TMs: 10},
	}
	path, err := gesture.Normalize(raw, layout, gesture.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), path.AspectRatio)
	for _, p := range path.Points {
		assert.Equal(t, gesture.NormalizedPoint{X: 0.5, Y: 0.5, T: 0.5}, p)
	}
}

// TestNormalize_StartEndKeyFromRawEndpoints checks that start/end key
// indices are derived from the raw (not resampled) endpoints.
func TestNormalize_StartEndKeyFromRawEndpoints(t *testing.T) {
	layout := straightLineLayout(t)
	raw := []gesture.RawPoint{
		{X: 0, Y: 0, TMs: 0},
		{X: 50, Y: 0, TMs: 50},
		{X: 100, Y: 0, TMs: 100},
	}
	path, err := gesture.Normalize(raw, layout, gesture.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, path.StartKeyIndex)
	assert.Equal(t, 1, path.EndKeyIndex)
}

// TestNormalize_SameInputSamePath checks that normalizing the same sparse
// raw path twice yields identical NormalizedPaths.
func TestNormalize_SameInputSamePath(t *testing.T) {
	layout := straightLineLayout(t)
	raw := []gesture.RawPoint{
		{X: 0, Y: 0, TMs: 0},
		{X: 50, Y: 0, TMs: 50},
		{X: 100, Y: 0, TMs: 100},
	}
	opts := gesture.DefaultOptions()
	p1, err := gesture.Normalize(raw, layout, opts)
	require.NoError(t, err)
	p2, err := gesture.Normalize(raw, layout, opts)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}
