// Package audio plays synthesized sound effects in response to level events.
// Sounds are generated on the fly with gopxl/beep; no asset files are used.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/level"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundFire Sound = iota
	SoundEnemyFire
	SoundExplosion
	SoundHit
	SoundBreach
	SoundShield
	SoundWin
	SoundLose
)

var soundNames = [...]string{"fire", "enemy-fire", "explosion", "hit", "breach", "shield", "win", "lose"}

// String returns the sound name.
func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Player mixes sound effects into the speaker. It implements level.Sink.
// Until Init succeeds every call is a no-op, so the game runs without an
// audio device.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	active bool
	lock   func()
	unlock func()

	lastHealth int
}

// NewPlayer creates a player with a linear volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: clamp01(volume),
		lock:   func() {},
		unlock: func() {},
	}
}

// Init opens the audio device and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	p.active = true
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.active = false
}

// SetVolume sets the linear volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = clamp01(v)
	p.mu.Unlock()
}

// SetMuted silences all new sounds.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Play starts a sound effect.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active || p.muted || p.volume <= 0 {
		return
	}
	st := newVolume(Stream(s, sampleRate), p.volume)
	p.lock()
	p.mixer.Add(st)
	p.unlock()
}

// Playing returns the number of sounds in the mixer.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Emit implements level.Sink.
func (p *Player) Emit(e level.Event) {
	if s, ok := p.soundFor(e); ok {
		p.Play(s)
	}
}

// soundFor maps an event to its sound effect.
func (p *Player) soundFor(e level.Event) (Sound, bool) {
	switch e := e.(type) {
	case level.ProjectileFired:
		if e.Kind == actor.KindUserProjectile {
			return SoundFire, true
		}
		return SoundEnemyFire, true
	case level.ActorDestroyed:
		if e.Cause == actor.CauseCombat && !e.Kind.IsProjectile() {
			return SoundExplosion, true
		}
	case level.HealthChanged:
		dropped := p.lastHealth > 0 && e.Health < p.lastHealth
		p.lastHealth = e.Health
		if dropped {
			return SoundHit, true
		}
	case level.EnemyPenetrated:
		return SoundBreach, true
	case level.ShieldChanged:
		if e.Shielded {
			return SoundShield, true
		}
	case level.LevelWon:
		p.lastHealth = 0
		return SoundWin, true
	case level.LevelLost:
		p.lastHealth = 0
		return SoundLose, true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
