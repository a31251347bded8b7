package dictionary

import "errors"

// Sentinel errors for dictionary loading. Each corresponds to a numeric
// error kind the engine package surfaces at its own boundary (see
// engine.ErrorCode); they are returned wrapped with fmt.Errorf's %w plus
// detail, so callers branch with errors.Is rather than on the message.
var (
	// ErrNotFound indicates the dictionary file could not be opened.
	ErrNotFound = errors.New("dictionary: file not found or unreadable")
	// ErrCorrupt indicates a truncated file, a header/entry that runs past
	// the end of the buffer, a magic mismatch, or an oversize word.
	ErrCorrupt = errors.New("dictionary: data is corrupt")
	// ErrVersionMismatch indicates the header's version field is not
	// Version.
	ErrVersionMismatch = errors.New("dictionary: unsupported version")
)

const (
	// Magic is the 4-byte header signature; the on-disk bytes, written
	// little-endian, spell "GLID".
	Magic uint32 = 0x4449_4C47

	// Version is the only version field this package accepts.
	Version uint16 = 1

	// HeaderSize is the fixed on-disk header length in bytes.
	HeaderSize = 32

	// MaxWordLength is the maximum UTF-8 byte length of a single word.
	MaxWordLength = 64

	// maxLangTagLen is the header's remaining space for the language tag
	// after the 14-byte fixed prefix (magic, version, flags, entry_count,
	// lang_len).
	maxLangTagLen = HeaderSize - 14
)

// Entry flag bits.
const (
	FlagProperNoun uint8 = 0x01
	FlagProfanity  uint8 = 0x02
)

// Entry is one word in a Dictionary: its text, frequency ("higher = more
// common"), and flag bits.
type Entry struct {
	Word      string
	Frequency uint32
	Flags     uint8
}

// Dictionary is an ordered, immutable collection of Entry plus the header
// metadata it was parsed from.
type Dictionary struct {
	LanguageTag  string
	entries      []Entry
	maxFrequency uint32
}

// Entries returns every entry, in file order.
func (d Dictionary) Entries() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d Dictionary) Len() int {
	return len(d.entries)
}

// MaxFrequency returns the maximum frequency across all entries, or 0 for an
// empty dictionary.
func (d Dictionary) MaxFrequency() uint32 {
	return d.maxFrequency
}

// All returns every entry. Equivalent to Entries; kept as a distinct name
// because the recognition pipeline's three-tier filter cascade names this
// tier "all()".
func (d Dictionary) All() []Entry {
	return d.entries
}

// StartsWith returns every entry whose first byte, lowercased (ASCII A-Z
// only), equals lowercase(c).
func (d Dictionary) StartsWith(c byte) []Entry {
	target := asciiLower(c)
	var result []Entry
	for _, e := range d.entries {
		if len(e.Word) == 0 {
			continue
		}
		if asciiLower(e.Word[0]) == target {
			result = append(result, e)
		}
	}
	return result
}

// StartsAndEndsWith returns every entry whose first byte matches lowercase
// start and whose last byte matches lowercase end (both ASCII A-Z
// case-insensitive).
func (d Dictionary) StartsAndEndsWith(start, end byte) []Entry {
	ls, le := asciiLower(start), asciiLower(end)
	var result []Entry
	for _, e := range d.entries {
		if len(e.Word) == 0 {
			continue
		}
		first := asciiLower(e.Word[0])
		last := asciiLower(e.Word[len(e.Word)-1])
		if first == ls && last == le {
			result = append(result, e)
		}
	}
	return result
}

// Lookup returns the first entry whose word matches word under full
// ASCII-case-insensitive comparison, and true. Returns (Entry{}, false) if
// no entry matches or word is empty.
func (d Dictionary) Lookup(word string) (Entry, bool) {
	if word == "" {
		return Entry{}, false
	}
	target := asciiLowerString(word)
	for _, e := range d.entries {
		if asciiLowerString(e.Word) == target {
			return e, true
		}
	}
	return Entry{}, false
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func asciiLowerString(s string) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = asciiLower(s[i])
	}
	return string(buf)
}
