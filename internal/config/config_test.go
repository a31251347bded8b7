package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipecore/swipecore/engine"
	"github.com/swipecore/swipecore/internal/config"
)

const sampleLayoutTOML = `
language_tag = "en-US"
width = 400
height = 160

[[key]]
label = "a"
code_point = 97
center_x = 16
center_y = 80
width = 32
height = 54

[[key]]
label = "b"
code_point = 98
center_x = 48
center_y = 80
width = 32
height = 54
`

func TestLoadLayout_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayoutTOML), 0o644))

	lf, err := config.LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "en-US", lf.LanguageTag)
	assert.Len(t, lf.Keys, 2)

	layout, err := lf.ToKeyboardLayout()
	require.NoError(t, err)
	assert.True(t, layout.IsValid())
}

func TestLoadScoringConfig_MissingFileIsNotError(t *testing.T) {
	sf, err := config.LoadScoringConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultScoringConfig(), sf.Apply(engine.DefaultScoringConfig()))
}

func TestScoringFile_ApplyOverlaysOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoring.toml")
	require.NoError(t, os.WriteFile(path, []byte("frequency_weight = 0.5\n"), 0o644))

	sf, err := config.LoadScoringConfig(path)
	require.NoError(t, err)

	applied := sf.Apply(engine.DefaultScoringConfig())
	assert.Equal(t, 0.5, applied.FrequencyWeight)
	assert.Equal(t, engine.DefaultScoringConfig().MaxDTWFloor, applied.MaxDTWFloor)
}
