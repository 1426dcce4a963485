package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/audio"
	"github.com/vovakirdan/sky-battle/internal/platform/tui"
	"github.com/vovakirdan/sky-battle/internal/settings"
	"github.com/vovakirdan/sky-battle/internal/storage"
)

// localEnv opens every service for a local player. Optional services that
// fail are logged and left out. The returned func releases them.
func localEnv(logger *log.Logger, withAudio bool) (tui.Env, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.Env{}, nil, err
	}
	preset, err := difficultyFlag()
	if err != nil {
		return tui.Env{}, nil, err
	}

	env := tui.Env{
		Config:     cfg,
		Runtime:    runtimeConfig(cfg),
		Difficulty: preset,
		Settings:   openSettings(logger),
		Player:     playerName(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		env.Store = store
	}

	// The player is opened even when sound is off so the menu can turn it on.
	if withAudio {
		player := audio.NewPlayer(env.Settings.Get().Volume)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			env.Audio = player
		}
	}

	cleanup := func() {
		if env.Audio != nil {
			env.Audio.Close()
		}
		if env.Store != nil {
			env.Store.Close()
		}
	}
	return env, cleanup, nil
}

// openSettings opens persisted settings, falling back to in-memory ones.
func openSettings(logger *log.Logger) *settings.Manager {
	store, err := settings.Open()
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
		store = nil
	}
	m, err := settings.NewManager(store)
	if err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}
	return m
}

// playerName is the name stored with local runs.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "pilot"
}
