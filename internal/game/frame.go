package game

// StepFrame runs one iteration of the frame driver: advance enemies, mark
// the scene rendered, then detect and react to collisions, in that fixed
// order. The driver is unified across scenes: it is safe to call on every
// display refresh regardless of state, and it mutates gameplay state only
// while playing. Callers that stop a session may still invoke one more
// frame before quiescing; that frame only records a render.
//
// Returns the structured event records of what this frame did, which are
// also forwarded to the installed sink.
func (s *Session) StepFrame() []FrameEvent {
	events := make([]FrameEvent, 0, 3)

	if s.playing {
		advanceEnemies(s.enemies, s.level.Width)
		events = append(events, EnemiesAdvanced{Count: len(s.enemies)})
	}

	events = append(events, SceneRendered{Scene: s.scene})

	if s.playing {
		_, hit := detectCollision(s.playerX, s.playerY, s.enemies)
		events = append(events, CollisionChecked{Hit: hit})
		if hit {
			s.gameOver(OutcomeCaught, ReasonCaught)
		}
	}

	for _, ev := range events {
		s.record(ev)
	}
	return events
}
