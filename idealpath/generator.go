package idealpath

import (
	"strings"

	"github.com/swipecore/swipecore/gesture"
	"github.com/swipecore/swipecore/keyboard"
)

// msPerChar is the synthetic per-vertex time step used so the resample and
// bounding-box stages have a well-defined (if arbitrary) time axis to
// normalize; ideal paths carry no real timing information.
const msPerChar = 100

// Generator produces and caches ideal NormalizedPaths for dictionary words
// against a single KeyboardLayout at a time.
type Generator struct {
	layout    keyboard.KeyboardLayout
	hasLayout bool
	opts      gesture.Options
	cache     map[string]gesture.NormalizedPath
}

// NewGenerator returns a Generator with no layout set; SetLayout must be
// called before GetIdealPath produces anything but invalid paths.
func NewGenerator(opts gesture.Options) *Generator {
	return &Generator{
		opts:  opts,
		cache: make(map[string]gesture.NormalizedPath),
	}
}

// SetLayout replaces the active layout and clears the cache: key centers
// under the old layout no longer describe any word's ideal path.
func (g *Generator) SetLayout(layout keyboard.KeyboardLayout) {
	g.layout = layout
	g.hasLayout = true
	g.cache = make(map[string]gesture.NormalizedPath)
}

// GetIdealPath returns the cached ideal path for word if present, otherwise
// generates it, caches it, and returns it. The cache key is the
// ASCII-lowercased word.
func (g *Generator) GetIdealPath(word string) gesture.NormalizedPath {
	key := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r - 'A' + 'a'
		}
		return r
	}, word)
	if path, ok := g.cache[key]; ok {
		return path
	}
	path := g.generate(key)
	g.cache[key] = path
	return path
}

// Pregenerate warms the cache for every word in words.
func (g *Generator) Pregenerate(words []string) {
	for _, w := range words {
		g.GetIdealPath(w)
	}
}

// ClearCache discards every cached ideal path.
func (g *Generator) ClearCache() {
	g.cache = make(map[string]gesture.NormalizedPath)
}

// CacheSize returns the number of ideal paths currently cached.
func (g *Generator) CacheSize() int {
	return len(g.cache)
}

// generate builds the ideal path for an already-lowercased word: walk its
// characters, map each to its key center, collapse immediately-repeated
// keys, and resample/normalize the resulting polyline exactly like a user
// gesture. Returns an invalid (zero) path if fewer than two distinct-vertex
// characters map to a key.
func (g *Generator) generate(lowerWord string) gesture.NormalizedPath {
	if !g.hasLayout {
		return gesture.NormalizedPath{}
	}

	var vertices []gesture.RawPoint
	startKeyIndex, endKeyIndex := -1, -1
	prevKeyIdx := -1
	charIdx := 0

	for _, r := range lowerWord {
		keyIdx, ok := g.layout.FindByCodePoint(int32(r))
		if !ok || keyIdx == prevKeyIdx {
			continue
		}
		key := g.layout.Keys[keyIdx]
		vertices = append(vertices, gesture.RawPoint{
			X:   key.CenterX,
			Y:   key.CenterY,
			TMs: int64(charIdx) * msPerChar,
		})
		if startKeyIndex == -1 {
			startKeyIndex = keyIdx
		}
		endKeyIndex = keyIdx
		prevKeyIdx = keyIdx
		charIdx++
	}

	if len(vertices) < 2 {
		return gesture.NormalizedPath{}
	}

	resampleCount := g.opts.ResampleCount
	if resampleCount <= 0 {
		resampleCount = gesture.ResampleCount
	}

	arcLen := gesture.ArcLength(vertices)
	resampled := gesture.Resample(vertices, resampleCount)
	path := gesture.NormalizeBoundingBox(resampled, arcLen)
	path.StartKeyIndex = startKeyIndex
	path.EndKeyIndex = endKeyIndex

	return path
}
