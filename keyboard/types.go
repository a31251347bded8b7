package keyboard

import "errors"

// Sentinel errors for keyboard operations.
var (
	// ErrNoKeys indicates a layout with zero keys.
	ErrNoKeys = errors.New("keyboard: layout must have at least one key")
	// ErrNoCharacterKey indicates a layout with no character key (all keys
	// have CodePoint < 0).
	ErrNoCharacterKey = errors.New("keyboard: layout must have at least one character key")
	// ErrNonPositiveExtent indicates LayoutWidth or LayoutHeight is not > 0.
	ErrNonPositiveExtent = errors.New("keyboard: layout width and height must be positive")
)

// KeyDescriptor is one key on a KeyboardLayout: its label, the Unicode code
// point it produces, and its geometry in device-independent pixels.
//
// CodePoint == -1 marks a non-character key (shift, backspace, spacebar
// glyph aside) and is excluded from gesture computation. CodePoint >= 0
// identifies a character key.
type KeyDescriptor struct {
	Label    string
	CodePoint int32
	CenterX  float32
	CenterY  float32
	Width    float32
	Height   float32
}

// IsCharacterKey reports whether this key participates in gesture
// recognition.
func (k KeyDescriptor) IsCharacterKey() bool {
	return k.CodePoint >= 0
}

// KeyboardLayout is an immutable description of a keyboard's key geometry.
// LayoutWidth and LayoutHeight are the surface extent the key centers are
// expressed against; both must be positive, and at least one key must be a
// character key.
type KeyboardLayout struct {
	LanguageTag  string
	Keys         []KeyDescriptor
	LayoutWidth  float32
	LayoutHeight float32
}

// IsValid reports whether the layout satisfies its construction invariants:
// at least one key, positive extents, and at least one character key.
func (l KeyboardLayout) IsValid() bool {
	if len(l.Keys) == 0 {
		return false
	}
	if l.LayoutWidth <= 0 || l.LayoutHeight <= 0 {
		return false
	}
	for _, k := range l.Keys {
		if k.IsCharacterKey() {
			return true
		}
	}
	return false
}
