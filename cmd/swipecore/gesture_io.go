package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/swipecore/swipecore/gesture"
)

// rawPointJSON is the on-disk JSON shape of one recorded touch sample.
type rawPointJSON struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	TMs int64   `json:"t_ms"`
}

// loadGesture reads a JSON array of rawPointJSON from path.
func loadGesture(path string) ([]gesture.RawPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gesture file %s: %w", path, err)
	}
	var points []rawPointJSON
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse gesture file %s: %w", path, err)
	}
	raw := make([]gesture.RawPoint, len(points))
	for i, p := range points {
		raw[i] = gesture.RawPoint{X: float32(p.X), Y: float32(p.Y), TMs: p.TMs}
	}
	return raw, nil
}
