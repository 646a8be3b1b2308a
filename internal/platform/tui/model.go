package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmasubuchi/kurumegrid/internal/assets"
	"github.com/dmasubuchi/kurumegrid/internal/core"
	"github.com/dmasubuchi/kurumegrid/internal/game"
	"github.com/dmasubuchi/kurumegrid/internal/level"
	"github.com/dmasubuchi/kurumegrid/internal/storage"
)

// noticeBoard receives the session's blocking notifications. Shared by
// pointer so the notifier closure survives Bubble Tea's value-model copies.
type noticeBoard struct {
	message string
}

// Model is the Bubble Tea model hosting the frame driver. It always
// reschedules the frame tick and branches on the session's scene, mutating
// gameplay state only while playing.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	renderer *Renderer
	keys     *KeyMapper
	config   core.RuntimeConfig
	notice   *noticeBoard

	levels      []level.Level
	cursor      int
	lastLevelID int
	resultSaved bool
	quitting    bool
	status      string
}

// NewModel creates a model over the given session. If startLevelID is
// nonzero the session starts on that level immediately, skipping the title.
func NewModel(sess *game.Session, store *storage.Store, assetCfg assets.Config, cfg core.RuntimeConfig, startLevelID int) Model {
	notice := &noticeBoard{}
	sess.SetNotifier(game.NotifierFunc(func(msg string) {
		notice.message = msg
	}))

	m := Model{
		session:  sess,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		renderer: NewRenderer(assetCfg),
		keys:     NewKeyMapper(),
		config:   cfg,
		notice:   notice,
		levels:   sess.Repository().List(),
	}

	if startLevelID != 0 {
		if err := sess.Start(startLevelID); err != nil {
			m.status = err.Error()
		} else {
			m.lastLevelID = startLevelID
		}
	}

	return m
}

// Init starts the frame tick and the independent 1 Hz timer tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.config.TickRate), secondCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame()

	case SecondMsg:
		return m.handleSecond()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.session.End()
		m.saveResultOnce()
		m.quitting = true
		return m, tea.Quit
	}

	// The blocking notification holds the screen until acknowledged.
	if m.notice.message != "" {
		m.notice.message = ""
		return m, nil
	}

	switch m.session.Scene() {
	case game.ScenePlaying:
		return m.handlePlayingKey(action)
	case game.SceneTitle:
		return m.handleTitleKey(action)
	case game.SceneIdle:
		return m.handleIdleKey(action)
	}
	return m, nil
}

// handlePlayingKey commits directional input; everything else but Back is a
// gameplay no-op.
func (m Model) handlePlayingKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.session.Move(game.DirUp)
	case core.ActionDown:
		m.session.Move(game.DirDown)
	case core.ActionLeft:
		m.session.Move(game.DirLeft)
	case core.ActionRight:
		m.session.Move(game.DirRight)
	case core.ActionBack:
		m.session.End()
	}
	m.saveResultOnce()
	return m, nil
}

// handleTitleKey drives the level picker.
func (m Model) handleTitleKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, core.Max(0, len(m.levels)-1))
	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, core.Max(0, len(m.levels)-1))
	case core.ActionConfirm:
		if len(m.levels) == 0 {
			return m, nil
		}
		id := m.levels[m.cursor].ID
		if err := m.session.Start(id); err != nil {
			// Failed lookup leaves state untouched; report and stay here.
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.lastLevelID = id
		m.resultSaved = false
	}
	return m, nil
}

// handleIdleKey returns to the title or retries the last level.
func (m Model) handleIdleKey(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm, core.ActionBack:
		m.session.Reset()
	case core.ActionRestart:
		if m.lastLevelID != 0 {
			if err := m.session.Start(m.lastLevelID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.resultSaved = false
		}
	}
	return m, nil
}

// handleFrame runs one frame step and always reschedules.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.session.StepFrame()
	m.saveResultOnce()
	return m, frameCmd(m.config.TickRate)
}

// handleSecond forwards the 1 Hz timer tick and always reschedules. The
// session ignores ticks while not playing, so the one tick that may land
// after a transition is harmless.
func (m Model) handleSecond() (tea.Model, tea.Cmd) {
	m.session.Tick()
	m.saveResultOnce()
	return m, secondCmd()
}

// saveResultOnce persists the session result on the first observation of an
// ended session. Best effort: the game continues without storage.
func (m *Model) saveResultOnce() {
	if m.resultSaved || m.session.Playing() || m.session.Outcome() == game.OutcomeNone {
		return
	}
	m.resultSaved = true
	if m.store == nil || m.lastLevelID == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		LevelID:       m.lastLevelID,
		Outcome:       m.session.Outcome().String(),
		TimeRemaining: m.session.TimeRemaining(),
		DurationSecs:  m.session.ElapsedSeconds(),
	})
}

// View renders the current scene to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.session.Scene() {
	case game.ScenePlaying:
		m.renderer.DrawSession(m.screen, m.session)
	case game.SceneIdle:
		m.renderer.DrawIdle(m.screen, m.session)
	default:
		m.renderer.DrawTitle(m.screen, m.levels, m.cursor)
		if m.status != "" {
			m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorBrightRed)
		}
	}

	if m.notice.message != "" {
		m.renderer.DrawOverlay(m.screen, m.notice.message, "press any key")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(sess *game.Session, store *storage.Store, assetCfg assets.Config, cfg core.RuntimeConfig, startLevelID int) error {
	model := NewModel(sess, store, assetCfg, cfg, startLevelID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
