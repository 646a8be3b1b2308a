package game

import "math"

// roundTile maps a continuous coordinate to its nearest tile using
// floor(v + 0.5): 3.5 rounds to 4, 3.49 to 3.
func roundTile(v float64) int {
	return int(math.Floor(v + 0.5))
}

// detectCollision reports the first enemy (in list order) whose rounded tile
// equals the player's tile. Pure query; the frame step performs the
// game-over reaction.
func detectCollision(playerX, playerY int, enemies []Enemy) (int, bool) {
	for i, e := range enemies {
		if roundTile(e.X) == playerX && roundTile(e.Y) == playerY {
			return i, true
		}
	}
	return -1, false
}
