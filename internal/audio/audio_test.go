package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/level"
)

var allSounds = []Sound{
	SoundFire, SoundEnemyFire, SoundExplosion, SoundHit,
	SoundBreach, SoundShield, SoundWin, SoundLose,
}

// drain reads st to the end and returns the number of frames produced.
func drain(t *testing.T, st beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total <= limit {
		n, ok := st.Stream(buf)
		for _, s := range buf[:n] {
			for _, v := range s {
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("sample %v out of range", v)
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("stream did not end within %d frames", limit)
	return total
}

func TestStreamsAreFinite(t *testing.T) {
	limit := sampleRate.N(2 * time.Second)
	for _, s := range allSounds {
		t.Run(s.String(), func(t *testing.T) {
			if n := drain(t, Stream(s, sampleRate), limit); n == 0 {
				t.Errorf("%s produced no frames", s)
			}
		})
	}
}

func TestSweepLength(t *testing.T) {
	st := newSweep(440, 440, 100*time.Millisecond, WaveSine, sampleRate)
	if n, want := drain(t, st, sampleRate.N(time.Second)), sampleRate.N(100*time.Millisecond); n != want {
		t.Errorf("frames = %d, want %d", n, want)
	}
}

func TestWinIsLongerThanFire(t *testing.T) {
	limit := sampleRate.N(2 * time.Second)
	win := drain(t, Stream(SoundWin, sampleRate), limit)
	fire := drain(t, Stream(SoundFire, sampleRate), limit)
	if win <= fire {
		t.Errorf("win = %d frames, fire = %d; the arpeggio should be longer", win, fire)
	}
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		name  string
		event level.Event
		want  Sound
		ok    bool
	}{
		{"player shot", level.ProjectileFired{Kind: actor.KindUserProjectile}, SoundFire, true},
		{"enemy shot", level.ProjectileFired{Kind: actor.KindEnemyProjectile}, SoundEnemyFire, true},
		{"boss shot", level.ProjectileFired{Kind: actor.KindBossProjectile}, SoundEnemyFire, true},
		{"enemy shot down", level.ActorDestroyed{Kind: actor.KindEnemy, Cause: actor.CauseCombat}, SoundExplosion, true},
		{"boss shot down", level.ActorDestroyed{Kind: actor.KindBoss, Cause: actor.CauseCombat}, SoundExplosion, true},
		{"projectile hit", level.ActorDestroyed{Kind: actor.KindUserProjectile, Cause: actor.CauseCombat}, 0, false},
		{"projectile expired", level.ActorDestroyed{Kind: actor.KindEnemyProjectile, Cause: actor.CauseExpired}, 0, false},
		{"penetrated", level.ActorDestroyed{Kind: actor.KindEnemy, Cause: actor.CausePenetration}, 0, false},
		{"breach", level.EnemyPenetrated{Kind: actor.KindEnemy}, SoundBreach, true},
		{"shield up", level.ShieldChanged{Shielded: true}, SoundShield, true},
		{"shield down", level.ShieldChanged{Shielded: false}, 0, false},
		{"won", level.LevelWon{}, SoundWin, true},
		{"lost", level.LevelLost{}, SoundLose, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(1)
			got, ok := p.soundFor(tt.event)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("soundFor = (%s, %v), want (%s, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHitOnlyOnHealthDrop(t *testing.T) {
	p := NewPlayer(1)

	if _, ok := p.soundFor(level.HealthChanged{Health: 5, Max: 5}); ok {
		t.Error("first health report should be silent")
	}
	if s, ok := p.soundFor(level.HealthChanged{Health: 4, Max: 5}); !ok || s != SoundHit {
		t.Errorf("health drop = (%s, %v), want hit", s, ok)
	}
	if _, ok := p.soundFor(level.HealthChanged{Health: 5, Max: 5}); ok {
		t.Error("health increase should be silent")
	}

	// A new level starts a fresh baseline.
	p.soundFor(level.LevelWon{})
	if _, ok := p.soundFor(level.HealthChanged{Health: 3, Max: 5}); ok {
		t.Error("first report after a level change should be silent")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1)
	p.Emit(level.ProjectileFired{Kind: actor.KindUserProjectile})
	p.Play(SoundWin)
	if n := p.Playing(); n != 0 {
		t.Errorf("Playing = %d, want 0", n)
	}
	p.Close()
}

func TestPlayMixes(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		muted  bool
		want   int
	}{
		{"audible", 0.8, false, 2},
		{"muted", 0.8, true, 0},
		{"zero volume", 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.volume)
			p.active = true // Mix without an audio device.
			p.SetMuted(tt.muted)

			p.Emit(level.ProjectileFired{Kind: actor.KindUserProjectile})
			p.Emit(level.LevelWon{})
			p.Emit(level.ShieldChanged{Shielded: false})

			if n := p.Playing(); n != tt.want {
				t.Errorf("Playing = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestVolumeClamp(t *testing.T) {
	p := NewPlayer(3)
	if p.volume != 1 {
		t.Errorf("volume = %v, want 1", p.volume)
	}
	p.SetVolume(-1)
	if p.volume != 0 {
		t.Errorf("volume = %v, want 0", p.volume)
	}
}

func TestSoundString(t *testing.T) {
	if SoundBreach.String() != "breach" {
		t.Errorf("SoundBreach = %q", SoundBreach.String())
	}
	if Sound(99).String() != "unknown" {
		t.Errorf("Sound(99) = %q", Sound(99).String())
	}
}
