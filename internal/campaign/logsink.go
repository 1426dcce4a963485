package campaign

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/level"
)

// LogSink writes engine events to a structured logger. Per-tick noise goes to
// debug, level results to info.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs to logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit implements level.Sink.
func (s *LogSink) Emit(e level.Event) {
	switch e := e.(type) {
	case level.ProjectileFired:
		s.logger.Debug("projectile fired", "kind", e.Kind, "x", e.X, "y", e.Y)
	case level.ActorDestroyed:
		s.logger.Debug("actor destroyed", "kind", e.Kind, "cause", e.Cause)
	case level.EnemyPenetrated:
		s.logger.Warn("defenses breached", "kind", e.Kind, "health", e.Health, "kills", e.Kills)
	case level.HealthChanged:
		s.logger.Debug("health changed", "health", e.Health, "max", e.Max)
	case level.ShieldChanged:
		s.logger.Debug("boss shield", "shielded", e.Shielded)
	case level.LevelWon:
		if e.HasNext {
			s.logger.Info("level won", "level", e.Level, "kills", e.Kills, "next", e.Next)
		} else {
			s.logger.Info("campaign won", "level", e.Level, "kills", e.Kills)
		}
	case level.LevelLost:
		s.logger.Info("level lost", "level", e.Level, "kills", e.Kills)
	}
}
