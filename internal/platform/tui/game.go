package tui

import (
	"time"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// Game is the contract the front-end drives. Games own no timers; the
// platform calls Step once per tick and Render once per frame.
type Game interface {
	ID() string
	Title() string
	TickInterval() time.Duration
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Pause()
}

// summarizer is implemented by games that report a run for storage.
type summarizer interface {
	Summary() campaign.Summary
}

var _ Game = (*campaign.Campaign)(nil)
var _ summarizer = (*campaign.Campaign)(nil)
