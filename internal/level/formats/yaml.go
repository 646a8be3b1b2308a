package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID     int      `yaml:"id"`
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Tiles  []string `yaml:"tiles"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  yl.Width,
		Height: yl.Height,
		Tiles:  yl.Tiles,
	}, nil
}
