package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/level"
	"github.com/vovakirdan/sky-battle/internal/settings"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets int
	steps  int
	paused bool
	last   core.InputFrame
	state  core.GameState
	next   core.GameState // State returned by the next Step
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) TickInterval() time.Duration { return 50 * time.Millisecond }
func (g *stubGame) Reset(core.RuntimeConfig)    { g.resets++; g.state = core.GameState{} }
func (g *stubGame) Render(dst *core.Screen)     { dst.Clear(); dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState       { return g.state }
func (g *stubGame) Pause()                      { g.paused = true; g.state.Paused = true }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	g.state = g.next
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('h'), MenuActionLeft},
		{runeKey('d'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.Clear()
	s.DrawTextColor(1, 0, "SKY", core.ColorBrightYellow)
	s.DrawTextColor(5, 0, "BATTLE", core.ColorRed)
	s.SetColor(11, 2, '>', core.Color(200)) // Unknown colors fall back to default

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	if !strings.Contains(out, "SKY") || !strings.Contains(out, "BATTLE") || !strings.Contains(out, ">") {
		t.Errorf("rendered screen lost text: %q", out)
	}
}

func TestModelForwardsInputOnTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	if g.resets != 1 {
		t.Fatalf("resets = %d, expected 1", g.resets)
	}

	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{Epoch: 0})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if g.steps != 1 || !g.last.Has(core.ActionFire) || !g.last.Has(core.ActionUp) {
		t.Errorf("step %d got frame %v", g.steps, g.last.Actions)
	}

	// The frame is cleared after each step.
	update(t, m, TickMsg{Epoch: 0})
	if len(g.last.Actions) != 0 {
		t.Errorf("frame not cleared: %v", g.last.Actions)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	g := &stubGame{next: core.GameState{GameOver: true, Score: 3}}
	m := NewModel(g, nil, testRuntime())

	m, _ = update(t, m, TickMsg{Epoch: 0})
	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start a new tick chain")
	}
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}

	steps := g.steps
	m, cmd = update(t, m, TickMsg{Epoch: 0})
	if g.steps != steps || cmd != nil {
		t.Error("tick from the abandoned chain should be dropped")
	}
	update(t, m, TickMsg{Epoch: 1})
	if g.steps != steps+1 {
		t.Error("tick from the current chain should step the game")
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())

	m, _ = update(t, m, runeKey('r'))
	update(t, m, TickMsg{Epoch: 0})
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if !g.last.Has(core.ActionRestart) {
		t.Error("restart should reach the game's pause menu while playing")
	}
}

func TestModelBackToMenu(t *testing.T) {
	t.Run("after game over", func(t *testing.T) {
		g := &stubGame{next: core.GameState{GameOver: true}}
		m := NewModel(g, nil, testRuntime(), embedded())
		m, _ = update(t, m, TickMsg{Epoch: 0})
		m, cmd := update(t, m, runeKey('b'))
		if !m.BackToMenu() || cmd != nil {
			t.Error("b after game over should return to the menu")
		}
	})

	t.Run("exit from pause menu", func(t *testing.T) {
		g := &stubGame{next: core.GameState{Exit: true}}
		m := NewModel(g, nil, testRuntime(), embedded())
		m, cmd := update(t, m, TickMsg{Epoch: 0})
		if !m.BackToMenu() || cmd != nil {
			t.Error("exit state should return to the menu without another tick")
		}
	})

	t.Run("standalone quits", func(t *testing.T) {
		g := &stubGame{next: core.GameState{Exit: true}}
		m := NewModel(g, nil, testRuntime())
		_, cmd := update(t, m, TickMsg{Epoch: 0})
		if cmd == nil {
			t.Error("standalone model should quit the program")
		}
	})
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime())
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBlurPauses(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m, _ = update(t, m, tea.BlurMsg{})
	if !g.paused || !m.State().Paused {
		t.Error("losing focus should pause the game")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view should contain the game render")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	g := &stubGame{next: core.GameState{GameOver: true, Score: 12}}
	m := NewModel(g, store, testRuntime(), WithPlayer("ace"), WithDifficulty("hard"))
	m, _ = update(t, m, TickMsg{Epoch: 0})
	update(t, m, TickMsg{Epoch: 0})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	if runs[0].Player != "ace" || runs[0].Score != 12 || runs[0].Difficulty != "hard" {
		t.Errorf("run = %+v", runs[0])
	}
}

// quietEnv returns an environment whose campaign cannot be lost quickly.
func quietEnv(t *testing.T) Env {
	t.Helper()
	prefs, err := settings.NewManager(nil)
	if err != nil {
		t.Fatalf("settings.NewManager: %v", err)
	}
	return Env{
		Config:   config.DefaultConfig(),
		Runtime:  testRuntime(),
		Settings: prefs,
		Player:   "tester",
	}
}

func TestEnvNewCampaign(t *testing.T) {
	env := quietEnv(t)
	env.Difficulty = config.DifficultyEasy
	if env.Preset() != config.DifficultyEasy {
		t.Errorf("Preset = %s, expected easy", env.Preset())
	}

	c := env.NewCampaign()
	c.Reset(env.Runtime)
	want := config.DefaultConfig().Levels[0].PlayerHealth + 2
	if got := c.Level().Player().Health(); got != want {
		t.Errorf("easy health = %d, expected %d", got, want)
	}
	if env.Config.Levels[0].PlayerHealth != want-2 {
		t.Error("NewCampaign modified the shared config")
	}

	env.Difficulty = ""
	if env.Preset() != config.DifficultyNormal {
		t.Errorf("Preset = %s, expected the saved normal", env.Preset())
	}
}

func TestModelDrivesCampaign(t *testing.T) {
	env := quietEnv(t)
	c := env.NewCampaign()
	m := NewModel(c, nil, env.Runtime)

	// Skip the banner, then pause through the key map.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{Epoch: 0})
	if c.Phase() != campaign.PhasePlaying {
		t.Fatalf("phase = %s, expected playing", c.Phase())
	}
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{Epoch: 0})
	if !m.State().Paused {
		t.Fatal("p should open the pause menu")
	}

	// Pause menu: down twice to "Main menu", confirm.
	for _, k := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}} {
		m, _ = update(t, m, k)
		m, _ = update(t, m, TickMsg{Epoch: 0})
	}
	if !m.BackToMenu() {
		t.Error("choosing Main menu should leave the game")
	}
	if c.Level().ID() != level.One {
		t.Errorf("level = %s, expected one", c.Level().ID())
	}
}

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(quietEnv(t))

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != itemQuit {
		t.Errorf("cursor = %d, expected wrap to quit", m.cursor)
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoicePlay {
		t.Errorf("choice = %v, expected play", m.Choice())
	}
}

func TestMenuControlsPage(t *testing.T) {
	m := NewMenuModel(quietEnv(t))
	m.embedded = true

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenControls {
		t.Fatalf("screen = %d, expected controls", m.screen)
	}
	if !strings.Contains(m.View(), "fire") {
		t.Error("controls page should list the fire key")
	}
	m = updateMenu(t, m, runeKey('b'))
	if m.screen != screenMain || m.Choice() != ChoiceNone {
		t.Error("back should return to the main page without choosing")
	}
}

func TestMenuSettings(t *testing.T) {
	env := quietEnv(t)
	m := NewMenuModel(env)
	m.cursor = itemSettings
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenSettings {
		t.Fatalf("screen = %d, expected settings", m.screen)
	}

	m = updateMenu(t, m,
		tea.KeyMsg{Type: tea.KeyEnter}, // Sound off
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyLeft}, // Volume down one step
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight}, // Difficulty normal -> hard
	)

	s := env.Settings.Get()
	if s.SoundEnabled {
		t.Error("sound should be off")
	}
	if s.Volume < 0.59 || s.Volume > 0.61 {
		t.Errorf("volume = %v, expected 0.6", s.Volume)
	}
	if s.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %s, expected hard", s.Difficulty)
	}

	m = updateMenu(t, m, runeKey('b'))
	if m.screen != screenMain || m.status != "" {
		t.Errorf("back should save and return, status %q", m.status)
	}
}

func TestMenuDifficultyLockedByFlag(t *testing.T) {
	env := quietEnv(t)
	env.Difficulty = config.DifficultyFixed
	m := NewMenuModel(env)
	m.screen = screenSettings
	m.cursor = settingDifficulty

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if env.Settings.Get().Difficulty != config.DifficultyNormal {
		t.Error("difficulty set by flag should not be cycled")
	}
	if !strings.Contains(m.View(), "--difficulty") {
		t.Error("settings page should explain the lock")
	}
}

func updateSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(quietEnv(t))

	// Menu -> game.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != inGame || m.game == nil {
		t.Fatal("Play should start a game")
	}

	// Pause, pick Main menu.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{Epoch: 0})
	m = updateSession(t, m, runeKey('p'), TickMsg{Epoch: 0})
	m = updateSession(t, m,
		tea.KeyMsg{Type: tea.KeyDown}, TickMsg{Epoch: 0},
		tea.KeyMsg{Type: tea.KeyDown}, TickMsg{Epoch: 0},
		tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{Epoch: 0},
	)
	if m.current != inMenu || m.game != nil {
		t.Fatal("Main menu should return to the session menu")
	}

	// Menu -> scores -> menu.
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != inScores {
		t.Fatal("High Scores should open the scoreboard")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard without a store should say so")
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != inMenu {
		t.Fatal("esc should return from the scoreboard")
	}

	// Quit.
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q should quit the session")
	}
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{Player: "ace", Score: 30, Reached: "four", Won: true})
	store.SaveRun(storage.Run{Player: "bob", Score: 10, Reached: "two"})

	m := NewScoreboardModel(store, "bob", 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 30 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	if m.stats == nil || m.stats.Victories != 1 {
		t.Errorf("stats = %+v", m.stats)
	}
	if !strings.Contains(m.View(), "victory") {
		t.Error("top list should show the victory")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Player != "bob" {
		t.Errorf("recent view = %v, first %+v", m.view, m.runs[0])
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewMine || len(m.runs) != 1 || m.runs[0].Player != "bob" {
		t.Errorf("mine view = %+v", m.runs)
	}
}
