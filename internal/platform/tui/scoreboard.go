package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmasubuchi/kurumegrid/internal/level"
	"github.com/dmasubuchi/kurumegrid/internal/storage"
)

const maxBoardResults = 100

// BoardKeyMap defines the key bindings for the results board.
type BoardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for the results board screen.
type BoardModel struct {
	levels   []level.Level
	cursor   int
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a results board over the given levels and store.
func NewBoardModel(store *storage.Store, levels []level.Level, width, height int) BoardModel {
	m := BoardModel{
		levels: levels,
		store:  store,
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadResults(m.levels[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Outcome", Width: 10},
		{Title: "Time Left", Width: 10},
		{Title: "Duration", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-6),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

// loadResults fills the table with the selected level's results.
func (m *BoardModel) loadResults(levelID int) {
	var rows []table.Row
	if m.store != nil {
		results, err := m.store.Results(levelID, maxBoardResults)
		if err == nil {
			for i, r := range results {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					r.Outcome,
					fmt.Sprintf("%ds", r.TimeRemaining),
					fmt.Sprintf("%ds", r.DurationSecs),
					r.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles board input.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadResults(m.levels[m.cursor].ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadResults(m.levels[m.cursor].ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Results"
	if len(m.levels) > 0 {
		lvl := m.levels[m.cursor]
		title = fmt.Sprintf("Results — %d. %s", lvl.ID, lvl.Name)
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)
	return header + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunBoard starts the results board program.
func RunBoard(store *storage.Store, levels []level.Level, width, height int) error {
	p := tea.NewProgram(NewBoardModel(store, levels, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
