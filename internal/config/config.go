// Package config provides TOML configuration helpers for the swipecore CLI:
// a keyboard layout description and scoring-tunable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/swipecore/swipecore/engine"
	"github.com/swipecore/swipecore/keyboard"
)

// LayoutFile is the on-disk TOML shape of a keyboard layout.
type LayoutFile struct {
	LanguageTag string      `toml:"language_tag"`
	Width       float64     `toml:"width"`
	Height      float64     `toml:"height"`
	Keys        []KeyConfig `toml:"key"`
}

// KeyConfig is one [[key]] table entry in a layout TOML file.
type KeyConfig struct {
	Label     string  `toml:"label"`
	CodePoint int32   `toml:"code_point"`
	CenterX   float64 `toml:"center_x"`
	CenterY   float64 `toml:"center_y"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
}

// LoadLayout reads and decodes a layout TOML file at path.
func LoadLayout(path string) (LayoutFile, error) {
	var lf LayoutFile
	if _, err := toml.DecodeFile(path, &lf); err != nil {
		return LayoutFile{}, fmt.Errorf("failed to decode layout %s: %w", path, err)
	}
	return lf, nil
}

// ToKeyboardLayout converts the file representation into a
// keyboard.KeyboardLayout, applying the same validation keyboard.New does.
func (lf LayoutFile) ToKeyboardLayout() (keyboard.KeyboardLayout, error) {
	keys := make([]keyboard.KeyDescriptor, len(lf.Keys))
	for i, k := range lf.Keys {
		keys[i] = keyboard.KeyDescriptor{
			Label:     k.Label,
			CodePoint: k.CodePoint,
			CenterX:   float32(k.CenterX),
			CenterY:   float32(k.CenterY),
			Width:     float32(k.Width),
			Height:    float32(k.Height),
		}
	}
	return keyboard.New(lf.LanguageTag, keys, float32(lf.Width), float32(lf.Height))
}

// ScoringFile is the on-disk TOML shape of scoring overrides. Every field is
// optional; a nil field leaves engine.DefaultScoringConfig's value in place.
type ScoringFile struct {
	ResampleCount          *int     `toml:"resample_count"`
	MinPointDistanceDp     *float64 `toml:"min_point_distance_dp"`
	DTWBandwidthRatio      *float64 `toml:"dtw_bandwidth_ratio"`
	FrequencyWeight        *float64 `toml:"frequency_weight"`
	MaxCandidatesEvaluated *int     `toml:"max_candidates_evaluated"`
	LengthFilterTolerance  *float64 `toml:"length_filter_tolerance"`
	MaxDTWFloor            *float64 `toml:"max_dtw_floor"`
}

// LoadScoringConfig reads path if it exists; a missing file is not an error
// and yields a zero ScoringFile (Apply then leaves every default in place).
func LoadScoringConfig(path string) (ScoringFile, error) {
	if path == "" {
		return ScoringFile{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ScoringFile{}, nil
		}
		return ScoringFile{}, fmt.Errorf("failed to stat scoring config: %w", err)
	}
	var sf ScoringFile
	if _, err := toml.DecodeFile(path, &sf); err != nil {
		return ScoringFile{}, fmt.Errorf("failed to decode scoring config %s: %w", path, err)
	}
	return sf, nil
}

// Apply overlays the non-nil fields of sf onto base and returns the result.
func (sf ScoringFile) Apply(base engine.ScoringConfig) engine.ScoringConfig {
	if sf.ResampleCount != nil {
		base.ResampleCount = *sf.ResampleCount
	}
	if sf.MinPointDistanceDp != nil {
		base.MinPointDistanceDp = float32(*sf.MinPointDistanceDp)
	}
	if sf.DTWBandwidthRatio != nil {
		base.DTWBandwidthRatio = *sf.DTWBandwidthRatio
	}
	if sf.FrequencyWeight != nil {
		base.FrequencyWeight = *sf.FrequencyWeight
	}
	if sf.MaxCandidatesEvaluated != nil {
		base.MaxCandidatesEvaluated = *sf.MaxCandidatesEvaluated
	}
	if sf.LengthFilterTolerance != nil {
		base.LengthFilterTolerance = *sf.LengthFilterTolerance
	}
	if sf.MaxDTWFloor != nil {
		base.MaxDTWFloor = *sf.MaxDTWFloor
	}
	return base
}
