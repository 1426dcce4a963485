// Package settings persists player preferences (sound and difficulty) across
// sessions. Storage goes through gdata; a nil manager keeps settings in
// memory only, so the game runs where no data directory is available.
package settings

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// AppName is the gdata application name; data lives under its directory.
const AppName = "skybattle"

const (
	settingsObject   = "settings"
	settingsProperty = "prefs.yaml"
)

// Settings holds the persisted preferences.
type Settings struct {
	SoundEnabled bool                    `yaml:"sound_enabled"`
	Volume       float64                 `yaml:"volume"` // 0.0 to 1.0
	Difficulty   config.DifficultyPreset `yaml:"difficulty"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.7,
		Difficulty:   config.DifficultyNormal,
	}
}

// Open creates the gdata manager for the application. On error callers
// should fall back to NewManager(nil).
func Open() (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{AppName: AppName})
}

// Manager loads and saves Settings.
type Manager struct {
	mu       sync.Mutex
	store    *gdata.Manager
	settings Settings
}

// NewManager creates a manager and loads saved settings. store may be nil.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load reads saved settings. Missing data keeps the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	m.settings = normalize(s)
	return nil
}

// Save writes the current settings. Without a store it does nothing.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// SetSoundEnabled turns sound effects on or off.
func (m *Manager) SetSoundEnabled(on bool) {
	m.mu.Lock()
	m.settings.SoundEnabled = on
	m.mu.Unlock()
}

// SetVolume sets the volume, clamped to [0, 1].
func (m *Manager) SetVolume(v float64) {
	m.mu.Lock()
	m.settings.Volume = clampVolume(v)
	m.mu.Unlock()
}

// SetDifficulty sets the difficulty preset. Unknown presets are rejected.
func (m *Manager) SetDifficulty(p config.DifficultyPreset) error {
	if config.ParsePreset(string(p)) == "" {
		return fmt.Errorf("unknown difficulty %q", p)
	}
	m.mu.Lock()
	m.settings.Difficulty = p
	m.mu.Unlock()
	return nil
}

// CycleDifficulty moves to the next preset in menu order.
func (m *Manager) CycleDifficulty() config.DifficultyPreset {
	order := []config.DifficultyPreset{
		config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed,
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	next := order[0]
	for i, p := range order {
		if p == m.settings.Difficulty {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.settings.Difficulty = next
	return next
}

func normalize(s Settings) Settings {
	s.Volume = clampVolume(s.Volume)
	if config.ParsePreset(string(s.Difficulty)) == "" {
		s.Difficulty = config.DifficultyNormal
	}
	return s
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
