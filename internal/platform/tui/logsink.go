package tui

import (
	"github.com/charmbracelet/log"

	"github.com/dmasubuchi/kurumegrid/internal/game"
)

// NewLogSink adapts a logger into a frame-event sink. Frame events are
// debug-level; scene renders are skipped to keep the output proportional to
// what actually changed.
func NewLogSink(logger *log.Logger) game.EventSink {
	return game.SinkFunc(func(ev game.FrameEvent) {
		switch e := ev.(type) {
		case game.EnemiesAdvanced:
			logger.Debug("enemies advanced", "count", e.Count)
		case game.CollisionChecked:
			if e.Hit {
				logger.Debug("collision", "hit", true)
			}
		case game.SceneRendered:
			// High-frequency, low-signal.
		}
	})
}
