// Package formats provides pluggable level file format parsers.
package formats

import (
	"encoding/json"
	"fmt"
)

// Level represents a parsed level ready for validation.
type Level struct {
	ID     int
	Name   string
	Width  int
	Height int
	Tiles  []string
}

// jsonLevel is the on-disk JSON structure for a level file.
type jsonLevel struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var jl jsonLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	return Level{
		ID:     jl.ID,
		Name:   jl.Name,
		Width:  jl.Width,
		Height: jl.Height,
		Tiles:  jl.Tiles,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}
