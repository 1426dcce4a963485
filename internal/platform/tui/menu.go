package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-battle/internal/audio"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// menuScreen is the page of the menu currently shown.
type menuScreen int

const (
	screenMain menuScreen = iota
	screenControls
	screenSettings
)

// Main menu entries.
const (
	itemPlay = iota
	itemScores
	itemControls
	itemSettings
	itemQuit
)

var mainItems = []string{"Play", "High Scores", "Controls", "Settings", "Quit"}

// Settings entries.
const (
	settingSound = iota
	settingVolume
	settingDifficulty
)

const volumeStep = 0.1

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for the main menu, including the
// controls page and the settings page.
type MenuModel struct {
	env       Env
	screen    menuScreen
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choice    MenuChoice
	status    string
	embedded  bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(env Env) MenuModel {
	return MenuModel{
		env:       env,
		width:     env.Runtime.ScreenW,
		height:    env.Runtime.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.env.Runtime.ScreenW = msg.Width
		m.env.Runtime.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		return m.choose(ChoiceQuit)
	}

	switch m.screen {
	case screenControls:
		if action == MenuActionBack || action == MenuActionSelect {
			m.screen = screenMain
		}
	case screenSettings:
		m.handleSettingsKey(action)
	default:
		return m.handleMainKey(action)
	}
	return m, nil
}

func (m MenuModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		m.cursor = (m.cursor + len(mainItems) - 1) % len(mainItems)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(mainItems)
	case MenuActionBack:
		return m.choose(ChoiceQuit)
	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			return m.choose(ChoicePlay)
		case itemScores:
			return m.choose(ChoiceScores)
		case itemControls:
			m.screen = screenControls
		case itemSettings:
			m.screen = screenSettings
			m.cursor = settingSound
			m.status = ""
		case itemQuit:
			return m.choose(ChoiceQuit)
		}
	}
	return m, nil
}

func (m *MenuModel) handleSettingsKey(action MenuAction) {
	s := m.env.Settings
	if s == nil {
		if action == MenuActionBack || action == MenuActionSelect {
			m.screen = screenMain
			m.cursor = itemSettings
		}
		return
	}

	switch action {
	case MenuActionUp:
		m.cursor = (m.cursor + 2) % 3
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % 3
	case MenuActionLeft, MenuActionRight, MenuActionSelect:
		m.adjustSetting(action)
	case MenuActionBack:
		if err := s.Save(); err != nil {
			m.status = fmt.Sprintf("Settings not saved: %v", err)
		}
		m.screen = screenMain
		m.cursor = itemSettings
	}
}

func (m *MenuModel) adjustSetting(action MenuAction) {
	s := m.env.Settings
	switch m.cursor {
	case settingSound:
		s.SetSoundEnabled(!s.Get().SoundEnabled)
	case settingVolume:
		v := s.Get().Volume
		if action == MenuActionLeft {
			v -= volumeStep
		} else {
			v += volumeStep
		}
		s.SetVolume(v)
	case settingDifficulty:
		if m.env.Difficulty != "" {
			return
		}
		s.CycleDifficulty()
		return
	}

	m.env.applyAudio()
	if m.env.Audio != nil {
		m.env.Audio.Play(audio.SoundFire)
	}
}

// choose records the choice and leaves the menu.
func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone && !m.embedded {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S K Y   B A T T L E  "), m.width))
	b.WriteString("\n\n")

	switch m.screen {
	case screenControls:
		m.renderControls(&b)
	case screenSettings:
		m.renderSettings(&b)
	default:
		m.renderMain(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(warnStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MenuModel) renderMain(b *strings.Builder) {
	b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", m.env.Preset()), m.width))
	b.WriteString("\n\n")

	for i, item := range mainItems {
		line := "  " + item + "  "
		if i == m.cursor {
			line = selectedStyle.Render("> " + item + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
}

// controlsText explains the keys and the rules of the campaign.
var controlsText = []string{
	"Arrows / WASD   fly",
	"Space           fire",
	"P / Esc         pause menu",
	"R               restart",
	"B               back to menu",
	"Ctrl+S          screenshot",
	"",
	"Shoot down enemies before they cross the screen.",
	"Every enemy that gets past costs one heart and one kill.",
	"Level Two is a boss fight: its shield blocks all shots.",
	"Clear all four levels to win.",
}

func (m MenuModel) renderControls(b *strings.Builder) {
	b.WriteString(centerText(titleStyle.Render("CONTROLS"), m.width))
	b.WriteString("\n\n")
	for _, line := range controlsText {
		b.WriteString(centerText(fmt.Sprintf("%-58s", line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter / B: Back"), m.width))
	b.WriteString("\n")
}

func (m MenuModel) renderSettings(b *strings.Builder) {
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	if m.env.Settings == nil {
		b.WriteString(centerText("Settings are unavailable.", m.width))
		b.WriteString("\n")
		return
	}

	s := m.env.Settings.Get()
	sound := "Off"
	if s.SoundEnabled {
		sound = "On"
	}
	filled := int(s.Volume*10 + 0.5)
	volume := fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), int(s.Volume*100+0.5))
	difficulty := string(s.Difficulty)
	if m.env.Difficulty != "" {
		difficulty = fmt.Sprintf("%s (set by --difficulty)", m.env.Difficulty)
	}

	rows := []string{
		fmt.Sprintf("Sound       %s", sound),
		fmt.Sprintf("Volume      %s", volume),
		fmt.Sprintf("Difficulty  %s", difficulty),
	}
	for i, row := range rows {
		line := "  " + fmt.Sprintf("%-40s", row)
		if i == m.cursor {
			line = selectedStyle.Render("> " + fmt.Sprintf("%-40s", row))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if !m.env.Settings.Persistent() {
		b.WriteString(centerText(dimStyle.Render("Settings last until you quit."), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(dimStyle.Render("Left/Right: Change  |  Enter: Toggle  |  B: Save and back"), m.width))
	b.WriteString("\n")
}

// Choice returns what the player picked, ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.env.Runtime
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the menu and returns the player's choice.
func RunMenu(env Env) (MenuChoice, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(env), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return ChoiceQuit, env.Runtime, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return ChoiceQuit, env.Runtime, nil
	}
	return m.Choice(), m.Config(), nil
}

