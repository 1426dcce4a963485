package campaign

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/level"
)

func quietConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Difficulty.Enabled = false
	for i := range cfg.Levels {
		cfg.Levels[i].SpawnProbability = 0
	}
	fighter := cfg.Enemies[config.EnemyFighter]
	fighter.FireRate = 0
	cfg.Enemies[config.EnemyFighter] = fighter
	cfg.Boss.FireRate = 0
	cfg.Boss.ShieldProbability = 0
	return cfg
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func startedCampaign(t *testing.T, cfg config.Config, opts ...Option) *Campaign {
	t.Helper()
	c := New(cfg, opts...)
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if c.Phase() != PhaseBanner {
		t.Fatalf("Phase() = %v after Reset, expected banner", c.Phase())
	}
	c.Step(frame(core.ActionConfirm))
	if c.Phase() != PhasePlaying {
		t.Fatalf("Phase() = %v after confirm, expected playing", c.Phase())
	}
	return c
}

// scoreKill places an enemy and a user projectile that collide next tick.
func scoreKill(cfg config.Config, l *level.Level) {
	ec := cfg.Enemies[config.EnemyFighter]
	ec.Velocity = 0
	l.Insert(actor.NewEnemy(actor.KindEnemy, 600, 600, ec, 0, cfg.Projectiles.Enemy, cfg.World.Width))
	l.Insert(actor.NewProjectile(actor.KindUserProjectile, 600, 610, cfg.Projectiles.User, cfg.World.Width))
}

func TestBannerTimesOut(t *testing.T) {
	c := New(quietConfig())
	c.Reset(core.DefaultConfig())

	for i := 0; i < bannerTicks-1; i++ {
		c.Step(frame())
	}
	if c.Phase() != PhaseBanner {
		t.Fatalf("Phase() = %v, banner should still be shown", c.Phase())
	}
	if c.Level().Ticks() != 0 {
		t.Error("level should not tick during the banner")
	}
	c.Step(frame())
	if c.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing after the banner", c.Phase())
	}
}

func TestCampaignAdvancesOnWin(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].KillTarget = 1
	c := startedCampaign(t, cfg)

	first := c.Level()
	scoreKill(cfg, first)
	res := c.Step(frame())

	if c.Level() == first || c.Level().ID() != level.Two {
		t.Fatalf("Level() = %v, expected level two mounted", c.Level().ID())
	}
	if c.Phase() != PhaseBanner {
		t.Errorf("Phase() = %v, expected banner for the new level", c.Phase())
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if s := c.Summary(); s.LevelsCleared != 1 || s.Reached != level.Two {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestCampaignGameOver(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[0].PlayerHealth = 1
	c := startedCampaign(t, cfg)

	c.Level().Insert(actor.NewProjectile(actor.KindEnemyProjectile, 50, 310, cfg.Projectiles.Enemy, cfg.World.Width))
	res := c.Step(frame())

	if !res.State.GameOver || res.State.Won {
		t.Errorf("State = %+v, expected game over without win", res.State)
	}
	if c.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, expected game over", c.Phase())
	}

	c.Reset(core.DefaultConfig())
	if c.State().GameOver || c.Level().ID() != level.One {
		t.Error("Reset should start a fresh campaign at level one")
	}
}

func TestCampaignVictory(t *testing.T) {
	cfg := quietConfig()
	cfg.Levels[3].KillTarget = 1
	c := startedCampaign(t, cfg, WithStartLevel(level.Four))

	scoreKill(cfg, c.Level())
	res := c.Step(frame())

	if !res.State.GameOver || !res.State.Won {
		t.Errorf("State = %+v, expected won", res.State)
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if !c.Summary().Won {
		t.Error("Summary().Won should be true")
	}
}

func TestPauseStopsLevel(t *testing.T) {
	c := startedCampaign(t, quietConfig())

	c.Step(frame(core.ActionDown))
	if _, dy := c.Level().Player().Direction(); dy != 1 {
		t.Fatalf("player should be moving down, dy = %d", dy)
	}
	ticks := c.Level().Ticks()

	res := c.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("State.Paused should be true")
	}
	if dx, dy := c.Level().Player().Direction(); dx != 0 || dy != 0 {
		t.Errorf("pausing should stop the player, direction = (%d, %d)", dx, dy)
	}

	for i := 0; i < 10; i++ {
		c.Step(frame())
	}
	if c.Level().Ticks() != ticks {
		t.Errorf("level ticked while paused: %d -> %d", ticks, c.Level().Ticks())
	}

	c.Step(frame(core.ActionPause))
	c.Step(frame())
	if c.Level().Ticks() != ticks+1 {
		t.Errorf("Ticks() = %d after resume, expected %d", c.Level().Ticks(), ticks+1)
	}
}

func TestPauseMenu(t *testing.T) {
	c := startedCampaign(t, quietConfig())
	first := c.Level()

	c.Step(frame(core.ActionPause))
	c.Step(frame(core.ActionDown))
	c.Step(frame(core.ActionConfirm))
	if c.Level() == first {
		t.Error("restart should mount a new level instance")
	}
	if c.Level().ID() != level.One || c.Phase() != PhaseBanner {
		t.Errorf("restart mounted %v in phase %v", c.Level().ID(), c.Phase())
	}

	c.Step(frame(core.ActionConfirm))
	c.Step(frame(core.ActionPause))
	c.Step(frame(core.ActionUp)) // wraps to the last entry
	res := c.Step(frame(core.ActionConfirm))
	if !res.State.Exit {
		t.Error("main menu entry should request exit")
	}
	if next := c.Step(frame()); next.State.Exit {
		t.Error("Exit should only be reported once")
	}
}

func TestScoreNeverNegative(t *testing.T) {
	cfg := quietConfig()
	c := startedCampaign(t, cfg)

	ec := cfg.Enemies[config.EnemyFighter]
	ec.Velocity = -1400
	c.Level().Insert(actor.NewEnemy(actor.KindEnemy, cfg.World.Width, 100, ec, 0, cfg.Projectiles.Enemy, cfg.World.Width))
	res := c.Step(frame())

	if c.Level().Kills() != -1 {
		t.Fatalf("Kills() = %d, expected -1", c.Level().Kills())
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected floor of 0", res.State.Score)
	}
}

func TestRender(t *testing.T) {
	c := startedCampaign(t, quietConfig())
	screen := core.NewScreen(80, 24)

	c.Render(screen)
	if !strings.HasPrefix(screen.Row(0), "LEVEL ONE") {
		t.Errorf("HUD row = %q, expected level name", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "►") {
		t.Error("player sprite should be drawn")
	}

	c.Step(frame(core.ActionPause))
	c.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause menu should be drawn")
	}
}

func TestRenderBossShield(t *testing.T) {
	cfg := quietConfig()
	cfg.Boss.ShieldProbability = 1
	c := startedCampaign(t, cfg, WithStartLevel(level.Two))
	c.Step(frame())

	screen := core.NewScreen(80, 24)
	c.Render(screen)
	if !strings.Contains(screen.Row(0), "[SHIELD]") {
		t.Errorf("HUD row = %q, expected shield marker", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), '┌') {
		t.Error("shield outline should be drawn around the boss")
	}
}

func TestScene(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewScene()
	a := actor.NewProjectile(actor.KindUserProjectile, 0, 0, cfg.Projectiles.User, cfg.World.Width)
	b := actor.NewProjectile(actor.KindUserProjectile, 1, 0, cfg.Projectiles.User, cfg.World.Width)
	d := actor.NewProjectile(actor.KindUserProjectile, 2, 0, cfg.Projectiles.User, cfg.World.Width)

	s.Add(a)
	s.Add(b)
	s.Add(d)
	s.Add(a)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}

	s.Remove(b)
	got := s.Actors()
	if len(got) != 2 || got[0] != actor.Actor(a) || got[1] != actor.Actor(d) {
		t.Errorf("Actors() after Remove = %v", got)
	}
	s.Remove(b)
	s.Remove(d)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}

	s.Reset()
	if s.Len() != 0 {
		t.Error("Reset should empty the scene")
	}
}

func TestAutopilotRun(t *testing.T) {
	c := New(config.DefaultConfig())
	c.Reset(core.RuntimeConfig{Seed: 7})
	pilot := NewAutopilot(3)

	for i := 0; i < 3000 && !c.State().GameOver; i++ {
		c.Step(pilot.Frame(c))
	}
	if c.Summary().Ticks == 0 {
		t.Error("autopilot never left the banner")
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sink := NewLogSink(logger)

	sink.Emit(level.LevelWon{Level: level.One, Next: level.Two, HasNext: true, Kills: 10})
	sink.Emit(level.EnemyPenetrated{Kind: actor.KindEnemy, Health: 4, Kills: -1})

	out := buf.String()
	if !strings.Contains(out, "level won") || !strings.Contains(out, "defenses breached") {
		t.Errorf("log output = %q", out)
	}
}
