package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipecore/swipecore/dictionary"
	"github.com/swipecore/swipecore/engine"
	"github.com/swipecore/swipecore/gesture"
	"github.com/swipecore/swipecore/keyboard"
)

// qwertyLayout builds the QWERTY layout used by every end-to-end scenario:
// key pitch 32 dp horizontally, rows at y ~= {26, 80, 134} dp, code points
// 97-122 for a-z.
func qwertyLayout(t *testing.T) keyboard.KeyboardLayout {
	t.Helper()
	rows := []struct {
		letters string
		y       float32
	}{
		{"qwertyuiop", 26},
		{"asdfghjkl", 80},
		{"zxcvbnm", 134},
	}
	var keys []keyboard.KeyDescriptor
	for _, row := range rows {
		for i, r := range row.letters {
			keys = append(keys, keyboard.KeyDescriptor{
				Label:     string(r),
				CodePoint: int32(r),
				CenterX:   float32(i)*32 + 16,
				CenterY:   row.y,
				Width:     32,
				Height:    54,
			})
		}
	}
	layout, err := keyboard.New("en-US", keys, 400, 160)
	require.NoError(t, err)
	return layout
}

func sampleDict(t *testing.T) dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New("en-US", []dictionary.Entry{
		{Word: "hello", Frequency: 50000},
		{Word: "hero", Frequency: 20000},
		{Word: "help", Frequency: 30000},
		{Word: "world", Frequency: 40000},
		{Word: "the", Frequency: 1_000_000},
	})
	require.NoError(t, err)
	return d
}

func encodedDict(t *testing.T, d dictionary.Dictionary) []byte {
	t.Helper()
	buf, err := dictionary.Encode(d)
	require.NoError(t, err)
	return buf
}

// polyline generates n intermediate points per segment between consecutive
// centers, 10ms apart, matching the §8 scenario construction.
func polyline(centers [][2]float32, pointsPerSegment int) []gesture.RawPoint {
	var raw []gesture.RawPoint
	tMs := int64(0)
	raw = append(raw, gesture.RawPoint{X: centers[0][0], Y: centers[0][1], TMs: tMs})
	tMs += 10
	for i := 1; i < len(centers); i++ {
		x0, y0 := centers[i-1][0], centers[i-1][1]
		x1, y1 := centers[i][0], centers[i][1]
		for step := 1; step <= pointsPerSegment; step++ {
			frac := float32(step) / float32(pointsPerSegment)
			raw = append(raw, gesture.RawPoint{
				X:   x0 + frac*(x1-x0),
				Y:   y0 + frac*(y1-y0),
				TMs: tMs,
			})
			tMs += 10
		}
	}
	return raw
}

func keyCenter(t *testing.T, layout keyboard.KeyboardLayout, r rune) [2]float32 {
	t.Helper()
	idx, ok := layout.FindByCodePoint(int32(r))
	require.True(t, ok)
	k := layout.Keys[idx]
	return [2]float32{k.CenterX, k.CenterY}
}

func newInitializedEngine(t *testing.T) (*engine.Engine, keyboard.KeyboardLayout) {
	t.Helper()
	layout := qwertyLayout(t)
	e := engine.New()
	ok := e.InitWithData(layout, encodedDict(t, sampleDict(t)))
	require.True(t, ok)
	return e, layout
}

// TestRecognize_CleanHello covers §8 scenario 1: top candidate is "hello".
func TestRecognize_CleanHello(t *testing.T) {
	e, layout := newInitializedEngine(t)

	centers := [][2]float32{
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'o'),
	}
	raw := polyline(centers, 8)

	candidates := e.Recognize(raw, 8)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "hello", candidates[0].Word)
}

// TestRecognize_CleanThe covers §8 scenario 2: "the" appears in the top 5
// with positive confidence.
func TestRecognize_CleanThe(t *testing.T) {
	e, layout := newInitializedEngine(t)

	centers := [][2]float32{
		keyCenter(t, layout, 't'),
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
	}
	raw := polyline(centers, 8)

	candidates := e.Recognize(raw, 5)
	require.NotEmpty(t, candidates)

	found := false
	for _, c := range candidates {
		if c.Word == "the" {
			found = true
			assert.Greater(t, c.Confidence, 0.0)
		}
	}
	assert.True(t, found, "expected \"the\" in top 5, got %+v", candidates)
}

// TestRecognize_SingleCandidateConfidenceFloor covers §8 scenario 3: a
// gesture that filters down to exactly one candidate still scores a
// confidence above 0.3, because the single-candidate max_dtw floor (3.0)
// keeps its normalized DTW well below 1.
func TestRecognize_SingleCandidateConfidenceFloor(t *testing.T) {
	layout := qwertyLayout(t)
	e := engine.New()
	d, err := dictionary.New("en-US", []dictionary.Entry{
		{Word: "hero", Frequency: 20000},
	})
	require.NoError(t, err)
	require.True(t, e.InitWithData(layout, encodedDict(t, d)))

	centers := [][2]float32{
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
		keyCenter(t, layout, 'r'),
		keyCenter(t, layout, 'o'),
	}
	raw := polyline(centers, 8)

	candidates := e.Recognize(raw, 8)
	require.Len(t, candidates, 1)
	assert.Equal(t, "hero", candidates[0].Word)
	assert.Greater(t, candidates[0].Confidence, 0.3)
}

// TestRecognize_ShapeBeatsFrequency covers §8 scenario 4: a clean "world"
// gesture beats a much higher-frequency "the" that the start/end filter
// excludes.
func TestRecognize_ShapeBeatsFrequency(t *testing.T) {
	e, layout := newInitializedEngine(t)

	centers := [][2]float32{
		keyCenter(t, layout, 'w'),
		keyCenter(t, layout, 'o'),
		keyCenter(t, layout, 'r'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'd'),
	}
	raw := polyline(centers, 8)

	candidates := e.Recognize(raw, 8)
	require.NotEmpty(t, candidates)
	assert.Equal(t, "world", candidates[0].Word)
}

// TestRecognize_CorruptDictionary covers §8 scenario 6: a bad magic fails
// InitWithData with DICT_CORRUPT, and a subsequent Recognize call reports
// ENGINE_NOT_INITIALIZED with an empty result.
func TestRecognize_CorruptDictionary(t *testing.T) {
	layout := qwertyLayout(t)
	d := sampleDict(t)
	buf := encodedDict(t, d)
	buf[0] = 0xEF
	buf[1] = 0xBE
	buf[2] = 0xAD
	buf[3] = 0xDE

	e := engine.New()
	ok := e.InitWithData(layout, buf)
	require.False(t, ok)
	assert.Equal(t, engine.ErrorDictCorrupt, e.LastError().Code)

	candidates := e.Recognize(polyline([][2]float32{{0, 0}, {100, 100}}, 4), 8)
	assert.Empty(t, candidates)
	assert.Equal(t, engine.ErrorNotInitialized, e.LastError().Code)
}

// TestRecognize_RankedByConfidenceDescending covers P10.
func TestRecognize_RankedByConfidenceDescending(t *testing.T) {
	e, layout := newInitializedEngine(t)

	centers := [][2]float32{
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'p'),
	}
	raw := polyline(centers, 8)

	candidates := e.Recognize(raw, 8)
	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Confidence, candidates[i].Confidence)
	}
}

func TestRecognize_NotInitialized(t *testing.T) {
	e := engine.New()
	candidates := e.Recognize(polyline([][2]float32{{0, 0}, {10, 10}}, 4), 8)
	assert.Empty(t, candidates)
	assert.Equal(t, engine.ErrorNotInitialized, e.LastError().Code)
}

func TestRecognize_PathTooShort(t *testing.T) {
	e, _ := newInitializedEngine(t)
	candidates := e.Recognize([]gesture.RawPoint{{X: 0, Y: 0, TMs: 0}}, 8)
	assert.Empty(t, candidates)
	assert.Equal(t, engine.ErrorPathTooShort, e.LastError().Code)
}

func TestUpdateLayout_AcceptsShiftedLayout(t *testing.T) {
	e, layout := newInitializedEngine(t)

	altKeys := append([]keyboard.KeyDescriptor(nil), layout.Keys...)
	for i := range altKeys {
		altKeys[i].CenterX += 5
	}
	altLayout, err := keyboard.New("en-US", altKeys, layout.LayoutWidth, layout.LayoutHeight)
	require.NoError(t, err)

	require.True(t, e.UpdateLayout(altLayout))
}

func TestUpdateLayout_InvalidRejected(t *testing.T) {
	e, _ := newInitializedEngine(t)
	ok := e.UpdateLayout(keyboard.KeyboardLayout{})
	assert.False(t, ok)
	assert.Equal(t, engine.ErrorLayoutInvalid, e.LastError().Code)
}

func TestConfigure_AppliesOnNextRecognize(t *testing.T) {
	e, layout := newInitializedEngine(t)

	cfg := engine.DefaultScoringConfig()
	cfg.MaxCandidatesEvaluated = 1
	e.Configure(cfg)

	centers := [][2]float32{
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'o'),
	}
	candidates := e.Recognize(polyline(centers, 8), 8)
	assert.LessOrEqual(t, len(candidates), 1)
}

func TestClampCandidateCount_DefaultAndBounds(t *testing.T) {
	e, layout := newInitializedEngine(t)

	centers := [][2]float32{
		keyCenter(t, layout, 'h'),
		keyCenter(t, layout, 'e'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'l'),
		keyCenter(t, layout, 'o'),
	}
	raw := polyline(centers, 8)

	def := e.Recognize(raw, 0)
	assert.LessOrEqual(t, len(def), 8)

	huge := e.Recognize(raw, 1000)
	assert.LessOrEqual(t, len(huge), 20)
}
