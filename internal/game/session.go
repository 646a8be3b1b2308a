// Package game implements the core frame loop and game-state state machine:
// session lifecycle, movement legality, enemy simulation, collision
// detection, and win/loss transitions. It owns all mutable gameplay state
// explicitly; rendering, input decoding, persistence, and notification
// delivery are external collaborators.
package game

import (
	"github.com/dmasubuchi/kurumegrid/internal/level"
)

// Config contains the gameplay tuning for a session.
type Config struct {
	TimeLimit  int     // seconds per session
	EnemySpeed float64 // horizontal tiles per frame for spawned enemies
}

// DefaultConfig returns the standard gameplay configuration.
func DefaultConfig() Config {
	return Config{
		TimeLimit:  30,
		EnemySpeed: 0.01,
	}
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeClear
	OutcomeTimeUp
	OutcomeCaught
	OutcomeAborted
)

// String returns the storage/reporting name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeClear:
		return "clear"
	case OutcomeTimeUp:
		return "time up"
	case OutcomeCaught:
		return "caught"
	case OutcomeAborted:
		return "aborted"
	default:
		return "none"
	}
}

// Session end reasons surfaced through the Notifier.
const (
	ReasonTimeUp  = "time up"
	ReasonCaught  = "caught by enemy"
	ReasonCleared = "level clear"
)

// Notifier delivers the single user-facing notification fired on each
// game-over or level-clear transition. Delivery is synchronous: the state
// transition completes only after Notify returns, and no further input or
// frame mutation happens in between.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) { f(message) }

// Session owns all per-play-through state: player position, enemy list,
// remaining time, and the current scene. It is re-derived from the chosen
// level's tiles on every Start. Not safe for concurrent use; the platform's
// cooperative loop guarantees frame steps, input events, and timer ticks
// never overlap.
type Session struct {
	repo     *level.Repository
	cfg      Config
	notifier Notifier
	sink     EventSink

	scene   Scene
	level   *level.Level
	current level.Level

	playerX, playerY int
	enemies          []Enemy
	timeRemaining    int
	elapsedSeconds   int
	playing          bool
	outcome          Outcome
}

// NewSession creates a session over the given level repository.
// The session starts in the title scene with no level chosen.
func NewSession(repo *level.Repository, cfg Config) *Session {
	return &Session{
		repo:  repo,
		cfg:   cfg,
		scene: SceneTitle,
	}
}

// SetNotifier installs the notification collaborator. A nil notifier
// silently drops notifications.
func (s *Session) SetNotifier(n Notifier) {
	s.notifier = n
}

// SetEventSink installs the per-frame event consumer. A nil sink drops
// events.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Start begins a session on the level with the given ID. On lookup failure
// the session state is left completely untouched and the error is returned
// to the caller. On success the timer is reset, the enemy list rebuilt, and
// the tile grid scanned in row-major order: the last start marker wins the
// player position, and every enemy marker spawns one enemy at its tile
// coordinates.
func (s *Session) Start(id int) error {
	lvl, err := s.repo.Find(id)
	if err != nil {
		return err
	}

	s.current = lvl
	s.level = &s.current
	s.timeRemaining = s.cfg.TimeLimit
	s.elapsedSeconds = 0
	s.enemies = nil
	s.outcome = OutcomeNone

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			switch lvl.TileAt(x, y) {
			case level.TileStart:
				// Last marker in scan order wins.
				s.playerX = x
				s.playerY = y
			case level.TileEnemy:
				s.enemies = append(s.enemies, Enemy{
					X:      float64(x),
					Y:      float64(y),
					SpeedX: s.cfg.EnemySpeed,
					SpeedY: 0,
				})
			}
		}
	}

	s.playing = true
	s.scene = ScenePlaying
	return nil
}

// Tick is the once-per-second timer trigger. It mutates only the remaining
// time; reaching zero ends the session with the "time up" reason. Ticks
// arriving while not playing are ignored, which absorbs the one stale tick
// that may fire between a transition and the timer actually stopping.
func (s *Session) Tick() {
	if !s.playing {
		return
	}
	s.timeRemaining--
	s.elapsedSeconds++
	if s.timeRemaining <= 0 {
		s.gameOver(OutcomeTimeUp, ReasonTimeUp)
	}
}

// Move handles one directional input: the candidate tile is the player
// offset by exactly one tile. Rejected moves change nothing. A committed
// move onto the goal tile clears the level. Input while not playing is
// ignored entirely. Returns whether the move was committed.
func (s *Session) Move(d Direction) bool {
	if !s.playing {
		return false
	}
	dx, dy := d.offset()
	nx, ny := s.playerX+dx, s.playerY+dy
	if !s.CanMoveTo(nx, ny) {
		return false
	}
	s.playerX = nx
	s.playerY = ny
	if s.level.TileAt(nx, ny) == level.TileGoal {
		s.levelClear()
	}
	return true
}

// End aborts the session explicitly (player quit mid-game). No notification
// fires; the scene transitions to idle like every other session end.
func (s *Session) End() {
	if !s.playing {
		return
	}
	s.playing = false
	s.outcome = OutcomeAborted
	s.scene = SceneIdle
}

// Reset returns an ended session to the title scene so a new level can be
// picked. A live session is unaffected.
func (s *Session) Reset() {
	if s.playing {
		return
	}
	s.scene = SceneTitle
}

// gameOver ends the session with the given reason. The notification fires
// exactly once, before the caller can observe the idle scene.
func (s *Session) gameOver(outcome Outcome, reason string) {
	if !s.playing {
		return
	}
	s.notify(reason)
	s.playing = false
	s.outcome = outcome
	s.scene = SceneIdle
}

// levelClear ends the session as a win.
func (s *Session) levelClear() {
	if !s.playing {
		return
	}
	s.notify(ReasonCleared)
	s.playing = false
	s.outcome = OutcomeClear
	s.scene = SceneIdle
}

func (s *Session) notify(message string) {
	if s.notifier != nil {
		s.notifier.Notify(message)
	}
}

func (s *Session) record(ev FrameEvent) {
	if s.sink != nil {
		s.sink.Record(ev)
	}
}

// Scene returns the current scene.
func (s *Session) Scene() Scene {
	return s.scene
}

// Playing reports whether a session is active.
func (s *Session) Playing() bool {
	return s.playing
}

// Player returns the player's tile coordinates.
func (s *Session) Player() (x, y int) {
	return s.playerX, s.playerY
}

// Enemies returns a read-only copy of the enemy list for rendering.
func (s *Session) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// TimeRemaining returns the seconds left in the session.
func (s *Session) TimeRemaining() int {
	return s.timeRemaining
}

// ElapsedSeconds returns how many timer ticks the session has consumed.
func (s *Session) ElapsedSeconds() int {
	return s.elapsedSeconds
}

// Level returns the active level, or nil when none is chosen.
func (s *Session) Level() *level.Level {
	return s.level
}

// Outcome reports how the last session ended.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Repository exposes the level set, read-only, for menus and listings.
func (s *Session) Repository() *level.Repository {
	return s.repo
}
