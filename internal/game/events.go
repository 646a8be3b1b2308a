package game

// FrameEvent is one structured record of what a frame did. The core emits
// tagged variants instead of formatted log strings; sinks decide how to
// surface them.
type FrameEvent interface {
	frameEvent()
}

// EnemiesAdvanced records one simulation step over the enemy list.
type EnemiesAdvanced struct {
	Count int
}

// SceneRendered records which scene the frame presented.
type SceneRendered struct {
	Scene Scene
}

// CollisionChecked records the outcome of the frame's collision test.
type CollisionChecked struct {
	Hit bool
}

func (EnemiesAdvanced) frameEvent()  {}
func (SceneRendered) frameEvent()    {}
func (CollisionChecked) frameEvent() {}

// EventSink consumes per-frame event records. Implementations must be cheap:
// Record is called up to three times per frame.
type EventSink interface {
	Record(ev FrameEvent)
}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(ev FrameEvent)

// Record implements EventSink.
func (f SinkFunc) Record(ev FrameEvent) { f(ev) }
