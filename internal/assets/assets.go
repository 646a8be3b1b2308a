// Package assets provides YAML-based render/asset configuration: tile sizing
// and the glyph mapping used to draw map elements in the terminal.
package assets

// Config is the asset/tile-size configuration.
// UseAssets=false forces the built-in fallback glyphs regardless of what the
// glyphs mapping contains.
type Config struct {
	TileSize  int               `yaml:"tile_size"` // columns per tile; 0 leaves the default
	UseAssets bool              `yaml:"use_assets"`
	Glyphs    map[string]string `yaml:"glyphs,omitempty"` // element key -> glyph
}

// Glyph element keys.
const (
	KeyWall   = "wall"
	KeyFloor  = "floor"
	KeyGoal   = "goal"
	KeyPlayer = "player"
	KeyEnemy  = "enemy"
)

// fallbackGlyphs is the text render path used when assets are disabled or a
// key is missing from the mapping.
var fallbackGlyphs = map[string]rune{
	KeyWall:   '#',
	KeyFloor:  '.',
	KeyGoal:   'G',
	KeyPlayer: '@',
	KeyEnemy:  '*',
}

// DefaultTileSize is the tile width in columns applied when the config
// leaves tile_size unset.
const DefaultTileSize = 2

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TileSize:  DefaultTileSize,
		UseAssets: true,
		Glyphs: map[string]string{
			KeyWall:   "█",
			KeyFloor:  "·",
			KeyGoal:   "G",
			KeyPlayer: "@",
			KeyEnemy:  "*",
		},
	}
}

// Glyph resolves the rune to draw for an element key.
// Falls back to the text path when assets are disabled, the mapping is
// missing the key, or the mapped value is empty.
func (c Config) Glyph(key string) rune {
	if c.UseAssets {
		if g, ok := c.Glyphs[key]; ok && g != "" {
			return []rune(g)[0]
		}
	}
	if g, ok := fallbackGlyphs[key]; ok {
		return g
	}
	return '?'
}

// EffectiveTileSize returns the configured tile width, applying the default
// when unset and clamping nonsense values.
func (c Config) EffectiveTileSize() int {
	if c.TileSize <= 0 {
		return DefaultTileSize
	}
	if c.TileSize > 4 {
		return 4
	}
	return c.TileSize
}
