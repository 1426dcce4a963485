// Package sim runs a campaign headless: an autopilot plays it on a
// loop.Clock while sinks observe the events. Used by the sim command as a
// soak test of the engine.
package sim

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/loop"
)

// Options configures a headless run.
type Options struct {
	Runtime   core.RuntimeConfig
	Interval  time.Duration // Zero runs as fast as possible
	MaxTicks  int           // Zero means until the campaign ends
	FireEvery int           // Autopilot fire cadence in ticks
	Logger    *log.Logger   // Progress logging; nil disables it
	Clock     []loop.Option
}

// ErrTickLimit is returned when MaxTicks elapse before the campaign ends.
var ErrTickLimit = errors.New("sim: tick limit reached")

// Result describes a finished headless run.
type Result struct {
	Summary campaign.Summary
	Steps   int
	Elapsed time.Duration
}

const progressEvery = 1000

// Run resets c and plays it with the autopilot until it ends, the tick limit
// is reached or ctx is cancelled.
func Run(ctx context.Context, c *campaign.Campaign, opts Options) (Result, error) {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Microsecond
	}
	pilot := campaign.NewAutopilot(max(1, opts.FireEvery))

	c.Reset(opts.Runtime)
	start := time.Now()
	steps := 0
	limited := false

	clock := loop.New(interval, func() bool {
		state := c.Step(pilot.Frame(c)).State
		steps++

		if opts.Logger != nil && steps%progressEvery == 0 {
			opts.Logger.Debug("progress", "steps", steps, "score", state.Score, "phase", c.Phase())
		}
		if state.GameOver {
			return false
		}
		if opts.MaxTicks > 0 && steps >= opts.MaxTicks {
			limited = true
			return false
		}
		return true
	}, opts.Clock...)

	err := clock.Run(ctx)
	res := Result{Summary: c.Summary(), Steps: steps, Elapsed: time.Since(start)}
	if err != nil {
		return res, err
	}
	if limited {
		return res, ErrTickLimit
	}
	return res, nil
}
