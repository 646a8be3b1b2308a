package game

// Enemy is one patrolling entity. Position is continuous; the player only
// ever occupies integer tiles. Enemies have no identity beyond slice order.
type Enemy struct {
	X, Y           float64
	SpeedX, SpeedY float64
}

// advanceEnemies moves every enemy one step and reflects horizontal movement
// at the map boundaries. The reflection check runs AFTER the position update,
// so an enemy can exceed the bound by up to one step before reversing; that
// overshoot is intentional and relied on by the collision timing. SpeedY has
// no boundary check. Enemies are independent, so iteration order is free.
func advanceEnemies(enemies []Enemy, mapWidth int) {
	for i := range enemies {
		e := &enemies[i]
		e.X += e.SpeedX
		e.Y += e.SpeedY
		if e.X < 1 || e.X > float64(mapWidth-2) {
			e.SpeedX = -e.SpeedX
		}
	}
}
