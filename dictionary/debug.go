package dictionary

import "github.com/vmihailenco/msgpack/v5"

// DebugEntry is the msgpack-friendly rendering of an Entry, used only by the
// human/tool-facing debug dump — never by Decode/Encode, which stay bound to
// the bit-exact §6.1 format.
type DebugEntry struct {
	Word      string `msgpack:"w"`
	Frequency uint32 `msgpack:"f"`
	Flags     uint8  `msgpack:"fl"`
}

// DebugSnapshot is a whole Dictionary rendered for inspection tooling.
type DebugSnapshot struct {
	LanguageTag  string       `msgpack:"lang"`
	MaxFrequency uint32       `msgpack:"max_freq"`
	Entries      []DebugEntry `msgpack:"entries"`
}

// DumpDebug renders d as a msgpack-encoded DebugSnapshot.
func DumpDebug(d Dictionary) ([]byte, error) {
	snap := DebugSnapshot{
		LanguageTag:  d.LanguageTag,
		MaxFrequency: d.maxFrequency,
		Entries:      make([]DebugEntry, len(d.entries)),
	}
	for i, e := range d.entries {
		snap.Entries[i] = DebugEntry{Word: e.Word, Frequency: e.Frequency, Flags: e.Flags}
	}
	return msgpack.Marshal(snap)
}

// LoadDebugSnapshot decodes a msgpack-encoded DebugSnapshot produced by
// DumpDebug. It is read-only tooling support; it does not round-trip into a
// Dictionary because a DebugSnapshot carries no format version or magic to
// validate against.
func LoadDebugSnapshot(data []byte) (DebugSnapshot, error) {
	var snap DebugSnapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return DebugSnapshot{}, err
	}
	return snap, nil
}
