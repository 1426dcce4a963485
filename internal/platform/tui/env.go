package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/audio"
	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/level"
	"github.com/vovakirdan/sky-battle/internal/settings"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

// Env carries the services a session needs. Every field except Config may be
// zero; missing services are skipped.
type Env struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Store      *storage.Store
	Settings   *settings.Manager
	Audio      *audio.Player
	Logger     *log.Logger
	Player     string
	Difficulty config.DifficultyPreset // Overrides the saved setting when set
	Options    []campaign.Option       // Extra campaign options, such as a start level
}

// Preset returns the difficulty the next campaign is played at.
func (e Env) Preset() config.DifficultyPreset {
	if e.Difficulty != "" {
		return e.Difficulty
	}
	if e.Settings != nil {
		return e.Settings.Get().Difficulty
	}
	return config.DifficultyNormal
}

// NewCampaign builds a campaign with the current difficulty and sinks.
func (e Env) NewCampaign() *campaign.Campaign {
	cfg := e.Config
	config.ApplyPreset(&cfg, e.Preset())

	var sinks []level.Sink
	if e.Logger != nil {
		sinks = append(sinks, campaign.NewLogSink(e.Logger))
	}
	if e.Audio != nil {
		e.applyAudio()
		sinks = append(sinks, e.Audio)
	}
	opts := append([]campaign.Option{campaign.WithSinks(sinks...)}, e.Options...)
	return campaign.New(cfg, opts...)
}

// applyAudio copies the sound settings to the audio player.
func (e Env) applyAudio() {
	if e.Audio == nil || e.Settings == nil {
		return
	}
	s := e.Settings.Get()
	e.Audio.SetMuted(!s.SoundEnabled)
	e.Audio.SetVolume(s.Volume)
}

// ModelOptions returns the run metadata options for a game model.
func (e Env) ModelOptions() []ModelOption {
	return []ModelOption{WithPlayer(e.Player), WithDifficulty(string(e.Preset()))}
}
