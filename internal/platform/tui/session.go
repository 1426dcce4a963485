package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// sessionScreen is the model currently in front.
type sessionScreen int

const (
	inMenu sessionScreen = iota
	inGame
	inScores
)

// SessionModel manages the full flow of one player: menu -> game or scores
// -> menu. It is the top-level model for SSH sessions and the local menu.
type SessionModel struct {
	env        Env
	current    sessionScreen
	menu       MenuModel
	game       *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env) SessionModel {
	return SessionModel{
		env:  env,
		menu: newEmbeddedMenu(env),
	}
}

func newEmbeddedMenu(env Env) MenuModel {
	m := NewMenuModel(env)
	m.embedded = true
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track the window size globally so every screen opens at the right size.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.env.Runtime.ScreenW = wsm.Width
		m.env.Runtime.ScreenH = wsm.Height
	}

	switch m.current {
	case inGame:
		return m.updateGame(msg)
	case inScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		game := NewModel(m.env.NewCampaign(), m.env.Store, m.env.Runtime,
			append(m.env.ModelOptions(), embedded())...)
		m.game = &game
		m.current = inGame
		return m, m.game.Init()

	case ChoiceScores:
		board := NewScoreboardModel(m.env.Store, m.env.Player, m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
		board.embedded = true
		m.scoreboard = &board
		m.current = inScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = inMenu
	m.game = nil
	m.scoreboard = nil
	m.menu = newEmbeddedMenu(m.env)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case inGame:
		return m.game.View()
	case inScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env) error {
	p := tea.NewProgram(
		NewSessionModel(env),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
