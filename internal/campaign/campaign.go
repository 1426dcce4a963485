// Package campaign runs the sequence of levels: it owns the current level,
// consumes each tick's outcome, builds the next level through the level
// factory and tallies the score. It exposes the Reset/Step/Render/State
// contract the terminal front-end drives.
package campaign

import (
	"time"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/input"
	"github.com/vovakirdan/sky-battle/internal/level"
)

// Phase is the campaign screen currently shown.
type Phase int

const (
	PhaseBanner   Phase = iota // Level intro, the level clock is stopped
	PhasePlaying               // Level ticking
	PhasePaused                // Pause menu, the level clock is stopped
	PhaseGameOver              // Player destroyed
	PhaseVictory               // Final level cleared
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBanner:
		return "banner"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Pause menu entries.
const (
	PauseResume = iota
	PauseRestart
	PauseMainMenu
)

var pauseItems = []string{"Resume", "Restart level", "Main menu"}

const (
	bannerTicks = 40 // 2 seconds at the default 50ms tick
	breachTicks = 20
)

// Summary describes a finished or running campaign for persistence.
type Summary struct {
	Score         int
	Reached       level.ID
	LevelsCleared int
	Won           bool
	Ticks         int
}

// Campaign is the level orchestrator. It is driven from a single goroutine.
type Campaign struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	start   level.ID
	sinks   []level.Sink
	hold    int

	input  *input.Adapter
	scene  *Scene
	level  *level.Level
	phase  Phase
	state  core.GameState
	err    error
	banner int
	breach int
	cursor int

	clearedKills  int
	levelsCleared int
	ticks         int
}

// Option configures a Campaign.
type Option func(*Campaign)

// WithSinks registers event sinks (audio, logging) on every level.
func WithSinks(sinks ...level.Sink) Option {
	return func(c *Campaign) {
		c.sinks = append(c.sinks, sinks...)
	}
}

// WithStartLevel starts the campaign at a level other than One.
func WithStartLevel(id level.ID) Option {
	return func(c *Campaign) {
		c.start = id
	}
}

// WithHold sets the input hold window in ticks.
func WithHold(ticks int) Option {
	return func(c *Campaign) {
		c.hold = ticks
	}
}

// New creates a campaign. Call Reset before the first Step.
func New(cfg config.Config, opts ...Option) *Campaign {
	c := &Campaign{
		cfg:   cfg,
		start: level.One,
		hold:  input.DefaultHold,
		scene: NewScene(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.input = input.NewAdapter(c.hold)
	return c
}

// ID returns the identifier used for score storage.
func (c *Campaign) ID() string { return "skybattle" }

// Title returns the display name.
func (c *Campaign) Title() string { return "Sky Battle" }

// TickInterval returns the configured simulation interval.
func (c *Campaign) TickInterval() time.Duration {
	return time.Duration(c.cfg.World.TickMillis) * time.Millisecond
}

// Reset starts a new campaign from the start level.
func (c *Campaign) Reset(runtime core.RuntimeConfig) {
	c.runtime = runtime
	c.clearedKills = 0
	c.levelsCleared = 0
	c.ticks = 0
	c.state = core.GameState{}
	c.mount(c.start)
}

// mount builds a level through the factory and shows its banner.
func (c *Campaign) mount(id level.ID) {
	c.scene.Reset()
	hud := level.SinkFunc(c.observe)
	sinks := append([]level.Sink{hud}, c.sinks...)

	lvl, err := level.New(id, c.cfg, c.runtime, level.WithScene(c.scene), level.WithSinks(sinks...))
	if err != nil {
		// Validated configs never get here; end the run instead of ticking nil.
		c.err = err
		c.level = nil
		c.phase = PhaseGameOver
		c.state.GameOver = true
		return
	}
	c.err = nil
	c.level = lvl
	c.input.Bind(lvl)
	c.phase = PhaseBanner
	c.banner = bannerTicks
	c.breach = 0
	c.cursor = PauseResume
}

// observe feeds HUD state from level events.
func (c *Campaign) observe(e level.Event) {
	if _, ok := e.(level.EnemyPenetrated); ok {
		c.breach = breachTicks
	}
}

// Step advances the campaign by one tick with the actions collected since
// the previous one.
func (c *Campaign) Step(in core.InputFrame) core.StepResult {
	c.state.Exit = false

	switch c.phase {
	case PhaseBanner:
		c.banner--
		if c.banner <= 0 || in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			c.phase = PhasePlaying
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
			c.pause()
			break
		}
		c.input.Apply(in)
		c.ticks++
		if c.breach > 0 {
			c.breach--
		}
		c.handleOutcome(c.level.Tick())
	case PhasePaused:
		c.stepPauseMenu(in)
	case PhaseGameOver, PhaseVictory:
		// The platform restarts through Reset.
	}

	c.updateState()
	return core.StepResult{State: c.state}
}

func (c *Campaign) pause() {
	c.input.Release()
	c.phase = PhasePaused
	c.cursor = PauseResume
}

func (c *Campaign) stepPauseMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionBack):
		c.phase = PhasePlaying
		return
	case in.Has(core.ActionUp):
		c.cursor = (c.cursor + len(pauseItems) - 1) % len(pauseItems)
	case in.Has(core.ActionDown):
		c.cursor = (c.cursor + 1) % len(pauseItems)
	case in.Has(core.ActionRestart):
		c.mount(c.level.ID())
		return
	}

	if !in.Has(core.ActionConfirm) && !in.Has(core.ActionFire) {
		return
	}
	switch c.cursor {
	case PauseResume:
		c.phase = PhasePlaying
	case PauseRestart:
		c.mount(c.level.ID())
	case PauseMainMenu:
		c.state.Exit = true
	}
}

// handleOutcome consumes the level's tick result synchronously.
func (c *Campaign) handleOutcome(out level.Outcome) {
	switch out.Status {
	case level.Won:
		c.clearedKills += c.level.Kills()
		c.levelsCleared++
		if !out.HasNext {
			c.phase = PhaseVictory
			return
		}
		c.mount(out.Next)
	case level.Lost:
		c.phase = PhaseGameOver
	}
}

func (c *Campaign) updateState() {
	c.state.Score = c.Score()
	c.state.Paused = c.phase == PhasePaused
	c.state.GameOver = c.phase == PhaseGameOver || c.phase == PhaseVictory
	c.state.Won = c.phase == PhaseVictory
}

// Score is the kill total of cleared levels plus the current level's
// counter, floored at zero.
func (c *Campaign) Score() int {
	score := c.clearedKills
	if c.level != nil && c.phase != PhaseVictory {
		score += c.level.Kills()
	}
	return max(0, score)
}

// State returns the current campaign state.
func (c *Campaign) State() core.GameState {
	return c.state
}

// Phase returns the current screen.
func (c *Campaign) Phase() Phase {
	return c.phase
}

// Level returns the mounted level, nil if it could not be built.
func (c *Campaign) Level() *level.Level {
	return c.level
}

// Err returns the error that stopped the campaign, if any.
func (c *Campaign) Err() error {
	return c.err
}

// Pause opens the pause menu if a level is running.
func (c *Campaign) Pause() {
	if c.phase == PhasePlaying || c.phase == PhaseBanner {
		c.pause()
		c.updateState()
	}
}

// Summary returns the run summary for persistence.
func (c *Campaign) Summary() Summary {
	s := Summary{
		Score:         c.Score(),
		LevelsCleared: c.levelsCleared,
		Won:           c.phase == PhaseVictory,
		Ticks:         c.ticks,
	}
	if c.level != nil {
		s.Reached = c.level.ID()
	}
	return s
}
