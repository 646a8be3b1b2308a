package game

import "github.com/dmasubuchi/kurumegrid/internal/level"

// Direction is a one-tile movement intent from the input handler.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// offset returns the coordinate delta for one tile of movement.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// CanMoveTo decides whether the tile at (x, y) is enterable: false with no
// active level, out-of-bounds coordinates, or a wall tile. Every other tile
// character (goal, enemy marker, floor) is passable. Pure, no side effects.
func (s *Session) CanMoveTo(x, y int) bool {
	if s.level == nil {
		return false
	}
	if x < 0 || x >= s.level.Width || y < 0 || y >= s.level.Height {
		return false
	}
	return s.level.TileAt(x, y) != level.TileWall
}
