package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipecore/swipecore/dictionary"
)

func TestDumpDebug_RoundTrip(t *testing.T) {
	d, err := dictionary.New("en-US", sampleEntries())
	require.NoError(t, err)

	buf, err := dictionary.DumpDebug(d)
	require.NoError(t, err)

	snap, err := dictionary.LoadDebugSnapshot(buf)
	require.NoError(t, err)

	assert.Equal(t, "en-US", snap.LanguageTag)
	assert.Equal(t, uint32(1_000_000), snap.MaxFrequency)
	assert.Len(t, snap.Entries, 5)
}
