package game

// Scene identifies which render routine the frame driver runs.
// The driver always reschedules; gameplay state mutates only in ScenePlaying.
type Scene int

const (
	// SceneTitle is shown before any session has been started.
	SceneTitle Scene = iota
	// ScenePlaying is an active session: timer running, input accepted.
	ScenePlaying
	// SceneIdle is entered after a session ends (game over, level clear,
	// or explicit end) until the next start.
	SceneIdle
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case ScenePlaying:
		return "playing"
	case SceneIdle:
		return "idle"
	default:
		return "unknown"
	}
}
