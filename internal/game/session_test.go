package game

import (
	"testing"

	"github.com/dmasubuchi/kurumegrid/internal/level"
)

// recorder captures every notification for assertion.
type recorder struct {
	messages []string
}

func (r *recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}

func patrolLevel() level.Level {
	return level.Level{
		ID:     2,
		Name:   "patrol",
		Width:  7,
		Height: 5,
		Tiles: []string{
			"#######",
			"#S....#",
			"#.E.E.#",
			"#....G#",
			"#######",
		},
	}
}

func TestStartSpawnsFromMarkers(t *testing.T) {
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	x, y := sess.Player()
	if x != 1 || y != 1 {
		t.Errorf("player spawned at (%d,%d), expected (1,1)", x, y)
	}

	enemies := sess.Enemies()
	if len(enemies) != 2 {
		t.Fatalf("got %d enemies, expected 2", len(enemies))
	}
	if enemies[0].X != 2 || enemies[0].Y != 2 {
		t.Errorf("enemy 0 at (%v,%v), expected (2,2)", enemies[0].X, enemies[0].Y)
	}
	if enemies[1].X != 4 || enemies[1].Y != 2 {
		t.Errorf("enemy 1 at (%v,%v), expected (4,2)", enemies[1].X, enemies[1].Y)
	}
	for i, e := range enemies {
		if e.SpeedX != 0.01 || e.SpeedY != 0 {
			t.Errorf("enemy %d speed (%v,%v), expected (0.01,0)", i, e.SpeedX, e.SpeedY)
		}
	}

	if sess.Scene() != ScenePlaying {
		t.Errorf("scene = %v, expected playing", sess.Scene())
	}
	if sess.TimeRemaining() != 30 {
		t.Errorf("time remaining = %d, expected 30", sess.TimeRemaining())
	}
}

func TestStartLastStartMarkerWins(t *testing.T) {
	lvl := level.Level{
		ID:     3,
		Name:   "two starts",
		Width:  5,
		Height: 3,
		Tiles: []string{
			"S....",
			".....",
			"...S.",
		},
	}
	sess := NewSession(testRepo(t, lvl), DefaultConfig())
	if err := sess.Start(3); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	x, y := sess.Player()
	if x != 3 || y != 2 {
		t.Errorf("player at (%d,%d), expected the last marker in row-major order (3,2)", x, y)
	}
}

func TestStartUnknownLevelLeavesStateUntouched(t *testing.T) {
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sess.Move(DirRight)
	x, y := sess.Player()

	if err := sess.Start(99); err == nil {
		t.Fatal("Start(99) should fail for an unknown level")
	}

	if !sess.Playing() {
		t.Error("failed Start stopped the running session")
	}
	if nx, ny := sess.Player(); nx != x || ny != y {
		t.Errorf("failed Start moved the player: (%d,%d) -> (%d,%d)", x, y, nx, ny)
	}
	if sess.Scene() != ScenePlaying {
		t.Errorf("scene = %v, expected playing", sess.Scene())
	}
}

func TestStartResetsAfterPreviousSession(t *testing.T) {
	sess := NewSession(testRepo(t, patrolLevel()), Config{TimeLimit: 5, EnemySpeed: 0.01})
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sess.Tick()
	sess.Tick()
	sess.End()

	if err := sess.Start(2); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if sess.TimeRemaining() != 5 {
		t.Errorf("time remaining = %d, expected a fresh 5", sess.TimeRemaining())
	}
	if sess.ElapsedSeconds() != 0 {
		t.Errorf("elapsed = %d, expected 0", sess.ElapsedSeconds())
	}
	if len(sess.Enemies()) != 2 {
		t.Errorf("got %d enemies after restart, expected 2", len(sess.Enemies()))
	}
	if sess.Outcome() != OutcomeNone {
		t.Errorf("outcome = %v, expected none", sess.Outcome())
	}
}

func TestTimerExpiryFiresExactlyOnce(t *testing.T) {
	var rec recorder
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())
	sess.SetNotifier(&rec)
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 30; i++ {
		sess.Tick()
	}

	if len(rec.messages) != 1 {
		t.Fatalf("got %d notifications, expected exactly 1", len(rec.messages))
	}
	if rec.messages[0] != ReasonTimeUp {
		t.Errorf("notification = %q, expected %q", rec.messages[0], ReasonTimeUp)
	}
	if sess.Playing() {
		t.Error("session still playing after timer expiry")
	}
	if sess.Outcome() != OutcomeTimeUp {
		t.Errorf("outcome = %v, expected time up", sess.Outcome())
	}
	if sess.Scene() != SceneIdle {
		t.Errorf("scene = %v, expected idle", sess.Scene())
	}

	// The stale tick that can fire after the transition must be absorbed.
	sess.Tick()
	if len(rec.messages) != 1 {
		t.Errorf("stale tick fired another notification, got %d total", len(rec.messages))
	}
	if sess.TimeRemaining() != 0 {
		t.Errorf("stale tick mutated the timer: %d", sess.TimeRemaining())
	}
}

func TestTickDecrementsOnlyWhilePlaying(t *testing.T) {
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())

	sess.Tick()
	if sess.TimeRemaining() != 0 {
		t.Errorf("tick before any session changed the timer: %d", sess.TimeRemaining())
	}

	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sess.Tick()
	if sess.TimeRemaining() != 29 {
		t.Errorf("time remaining = %d, expected 29", sess.TimeRemaining())
	}
	if sess.ElapsedSeconds() != 1 {
		t.Errorf("elapsed = %d, expected 1", sess.ElapsedSeconds())
	}
}

func TestEndAbortsWithoutNotification(t *testing.T) {
	var rec recorder
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())
	sess.SetNotifier(&rec)
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	sess.End()

	if len(rec.messages) != 0 {
		t.Errorf("abort fired %d notifications, expected none", len(rec.messages))
	}
	if sess.Outcome() != OutcomeAborted {
		t.Errorf("outcome = %v, expected aborted", sess.Outcome())
	}
	if sess.Scene() != SceneIdle {
		t.Errorf("scene = %v, expected idle", sess.Scene())
	}
}

func TestResetReturnsToTitleOnlyWhenIdle(t *testing.T) {
	sess := NewSession(testRepo(t, patrolLevel()), DefaultConfig())
	if err := sess.Start(2); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	sess.Reset()
	if sess.Scene() != ScenePlaying {
		t.Error("Reset interrupted a live session")
	}

	sess.End()
	sess.Reset()
	if sess.Scene() != SceneTitle {
		t.Errorf("scene = %v, expected title after reset", sess.Scene())
	}
}

func TestMoveOntoGoalClearsLevel(t *testing.T) {
	lvl := level.Level{
		ID:     4,
		Name:   "short walk",
		Width:  3,
		Height: 1,
		Tiles:  []string{"S.G"},
	}
	var rec recorder
	sess := NewSession(testRepo(t, lvl), DefaultConfig())
	sess.SetNotifier(&rec)
	if err := sess.Start(4); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !sess.Move(DirRight) {
		t.Fatal("first move rejected")
	}
	if len(rec.messages) != 0 {
		t.Fatalf("premature notification: %v", rec.messages)
	}
	if !sess.Move(DirRight) {
		t.Fatal("move onto the goal rejected")
	}

	if len(rec.messages) != 1 || rec.messages[0] != ReasonCleared {
		t.Errorf("notifications = %v, expected exactly [%q]", rec.messages, ReasonCleared)
	}
	if sess.Outcome() != OutcomeClear {
		t.Errorf("outcome = %v, expected clear", sess.Outcome())
	}
}

func TestOutcomeStrings(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeClear, "clear"},
		{OutcomeTimeUp, "time up"},
		{OutcomeCaught, "caught"},
		{OutcomeAborted, "aborted"},
	}
	for _, tc := range tests {
		if got := tc.outcome.String(); got != tc.expected {
			t.Errorf("Outcome(%d).String() = %q, expected %q", tc.outcome, got, tc.expected)
		}
	}
}
