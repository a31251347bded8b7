package dictionary

import (
	"encoding/binary"
	"fmt"
	"os"
)

// New validates entries and builds a Dictionary directly, without going
// through the binary format. Returns ErrCorrupt if any word exceeds
// MaxWordLength bytes.
func New(languageTag string, entries []Entry) (Dictionary, error) {
	var maxFreq uint32
	for _, e := range entries {
		if len(e.Word) > MaxWordLength {
			return Dictionary{}, fmt.Errorf("%w: word %q exceeds %d bytes", ErrCorrupt, e.Word, MaxWordLength)
		}
		if e.Frequency > maxFreq {
			maxFreq = e.Frequency
		}
	}
	return Dictionary{
		LanguageTag:  languageTag,
		entries:      append([]Entry(nil), entries...),
		maxFrequency: maxFreq,
	}, nil
}

// Load reads path and decodes it as a dictionary. Returns ErrNotFound if the
// file cannot be opened; otherwise the error is whatever Decode returns.
func Load(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dictionary{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return Decode(data)
}

// Decode parses the §6.1 binary format: a fixed 32-byte header followed by
// entry_count variable-length entries. Returns ErrCorrupt for a truncated
// header, a magic mismatch, an oversize word, or any entry running past the
// end of data; returns ErrVersionMismatch if the version field isn't
// Version.
func Decode(data []byte) (Dictionary, error) {
	if len(data) < HeaderSize {
		return Dictionary{}, fmt.Errorf("%w: file too small for header", ErrCorrupt)
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	version := binary.LittleEndian.Uint16(data[4:6])
	entryCount := binary.LittleEndian.Uint32(data[8:12])
	langLen := binary.LittleEndian.Uint16(data[12:14])

	if magic != Magic {
		return Dictionary{}, fmt.Errorf("%w: invalid magic bytes", ErrCorrupt)
	}
	if version != Version {
		return Dictionary{}, fmt.Errorf("%w: version %d", ErrVersionMismatch, version)
	}

	var langTag string
	if langLen > 0 && 14+int(langLen) <= HeaderSize {
		langTag = string(data[14 : 14+int(langLen)])
	}

	entries := make([]Entry, 0, entryCount)
	var maxFreq uint32
	pos := HeaderSize
	for i := uint32(0); i < entryCount; i++ {
		if pos+1 > len(data) {
			return Dictionary{}, fmt.Errorf("%w: unexpected end of data at entry %d", ErrCorrupt, i)
		}
		wordLen := int(data[pos])
		pos++
		if wordLen > MaxWordLength {
			return Dictionary{}, fmt.Errorf("%w: word length exceeds maximum at entry %d", ErrCorrupt, i)
		}
		if pos+wordLen+4+1 > len(data) {
			return Dictionary{}, fmt.Errorf("%w: truncated entry at index %d", ErrCorrupt, i)
		}

		word := string(data[pos : pos+wordLen])
		pos += wordLen
		freq := binary.LittleEndian.Uint32(data[pos : pos+4])
		pos += 4
		flags := data[pos]
		pos++

		if freq > maxFreq {
			maxFreq = freq
		}
		entries = append(entries, Entry{Word: word, Frequency: freq, Flags: flags})
	}

	return Dictionary{
		LanguageTag:  langTag,
		entries:      entries,
		maxFrequency: maxFreq,
	}, nil
}

// Encode serializes d into the §6.1 binary format. Returns an error if
// LanguageTag is longer than the header can hold, or any entry's word
// exceeds MaxWordLength.
func Encode(d Dictionary) ([]byte, error) {
	if len(d.LanguageTag) > maxLangTagLen {
		return nil, fmt.Errorf("%w: language tag %q exceeds %d bytes", ErrCorrupt, d.LanguageTag, maxLangTagLen)
	}

	size := HeaderSize
	for _, e := range d.entries {
		if len(e.Word) > MaxWordLength {
			return nil, fmt.Errorf("%w: word %q exceeds %d bytes", ErrCorrupt, e.Word, MaxWordLength)
		}
		size += 1 + len(e.Word) + 4 + 1
	}

	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	binary.LittleEndian.PutUint16(buf[6:8], 0) // flags: reserved, must be 0
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(d.entries)))
	binary.LittleEndian.PutUint16(buf[12:14], uint16(len(d.LanguageTag)))
	copy(buf[14:14+len(d.LanguageTag)], d.LanguageTag)
	// buf[14+len(LanguageTag):HeaderSize] is left zero, as the format
	// requires.

	pos := HeaderSize
	for _, e := range d.entries {
		buf[pos] = byte(len(e.Word))
		pos++
		copy(buf[pos:pos+len(e.Word)], e.Word)
		pos += len(e.Word)
		binary.LittleEndian.PutUint32(buf[pos:pos+4], e.Frequency)
		pos += 4
		buf[pos] = e.Flags
		pos++
	}

	return buf, nil
}
