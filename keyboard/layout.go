package keyboard

import "math"

// New validates keys and extents and returns a KeyboardLayout, or one of
// ErrNoKeys, ErrNonPositiveExtent, ErrNoCharacterKey.
func New(languageTag string, keys []KeyDescriptor, width, height float32) (KeyboardLayout, error) {
	if len(keys) == 0 {
		return KeyboardLayout{}, ErrNoKeys
	}
	if width <= 0 || height <= 0 {
		return KeyboardLayout{}, ErrNonPositiveExtent
	}
	layout := KeyboardLayout{
		LanguageTag:  languageTag,
		Keys:         append([]KeyDescriptor(nil), keys...),
		LayoutWidth:  width,
		LayoutHeight: height,
	}
	hasCharKey := false
	for _, k := range layout.Keys {
		if k.IsCharacterKey() {
			hasCharKey = true
			break
		}
	}
	if !hasCharKey {
		return KeyboardLayout{}, ErrNoCharacterKey
	}
	return layout, nil
}

// NearestCharacterKey returns the index into l.Keys of the character key
// whose center is closest (Euclidean) to (x, y), and true. Non-character
// keys are never considered. Returns (-1, false) if the layout has no
// character key.
func (l KeyboardLayout) NearestCharacterKey(x, y float32) (int, bool) {
	best := -1
	bestDist := float32(math.MaxFloat32)
	for i, k := range l.Keys {
		if !k.IsCharacterKey() {
			continue
		}
		dx := x - k.CenterX
		dy := y - k.CenterY
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0
}

// FindByCodePoint returns the index into l.Keys of the character key whose
// CodePoint matches cp under ASCII case-insensitive comparison, and true.
// Returns (-1, false) if no key matches.
func (l KeyboardLayout) FindByCodePoint(cp int32) (int, bool) {
	target := asciiLower(cp)
	for i, k := range l.Keys {
		if !k.IsCharacterKey() {
			continue
		}
		if asciiLower(k.CodePoint) == target {
			return i, true
		}
	}
	return -1, false
}

// asciiLower lowercases cp if it falls in the ASCII 'A'-'Z' range; every
// other code point, including non-ASCII letters, passes through unchanged.
func asciiLower(cp int32) int32 {
	if cp >= 'A' && cp <= 'Z' {
		return cp - 'A' + 'a'
	}
	return cp
}
