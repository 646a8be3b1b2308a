// Package level provides the loadable level set for the game: a level is an
// immutable rectangular grid of tile characters plus its metadata. Loading
// supports JSON and YAML files as well as an embedded default set.
package level

import "fmt"

// Tile markers with load-time or gameplay meaning. Any other character is
// plain passable floor.
const (
	TileWall  = '#' // impassable
	TileStart = 'S' // player start, consumed at session init
	TileGoal  = 'G' // reaching it clears the level
	TileEnemy = 'E' // enemy spawn, consumed at session init
	TileFloor = '.'
)

// Level is one loadable map. Immutable once loaded; the repository hands out
// values, never shared mutable state.
type Level struct {
	ID     int
	Name   string
	Width  int
	Height int
	Tiles  []string // Height rows of Width single characters each
}

// TileAt returns the tile character at (x, y).
// Out-of-range coordinates return the wall marker so callers never index
// past the grid.
func (l *Level) TileAt(x, y int) rune {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return TileWall
	}
	return rune(l.Tiles[y][x])
}

// EnemyCount returns the number of enemy spawn markers in the grid.
func (l *Level) EnemyCount() int {
	n := 0
	for _, row := range l.Tiles {
		for _, ch := range row {
			if ch == TileEnemy {
				n++
			}
		}
	}
	return n
}

// Validate checks that the tile grid matches the declared dimensions and
// contains only known characters. A malformed grid is a descriptive load
// error, never a runtime index panic.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %d: non-positive dimensions %dx%d", l.ID, l.Width, l.Height)
	}
	if len(l.Tiles) != l.Height {
		return fmt.Errorf("level %d: declared height %d but grid has %d rows", l.ID, l.Height, len(l.Tiles))
	}
	for y, row := range l.Tiles {
		if len(row) != l.Width {
			return fmt.Errorf("level %d: row %d has %d tiles, declared width is %d", l.ID, y, len(row), l.Width)
		}
		for x, ch := range row {
			if !knownTile(ch) {
				return fmt.Errorf("level %d: unexpected tile %q at (%d,%d)", l.ID, ch, x, y)
			}
		}
	}
	return nil
}

// knownTile reports whether ch is a marker or plain floor. Floor is any
// printable ASCII that is not reserved, which keeps custom decorations legal.
func knownTile(ch rune) bool {
	return ch >= ' ' && ch < 127
}
