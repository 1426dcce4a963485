package campaign

import (
	"math"

	"github.com/vovakirdan/sky-battle/internal/core"
)

// Autopilot produces input frames for headless runs: it skips banners,
// tracks the closest enemy vertically and fires at a fixed cadence.
type Autopilot struct {
	fireEvery int
	ticks     int
}

// NewAutopilot creates an autopilot that fires every fireEvery ticks.
func NewAutopilot(fireEvery int) *Autopilot {
	return &Autopilot{fireEvery: max(1, fireEvery)}
}

// Frame returns the actions for the campaign's next step.
func (a *Autopilot) Frame(c *Campaign) core.InputFrame {
	f := core.NewInputFrame()

	switch c.Phase() {
	case PhaseBanner:
		f.Set(core.ActionConfirm)
	case PhasePaused:
		f.Set(core.ActionPause)
	case PhasePlaying:
		a.ticks++
		if a.ticks%a.fireEvery == 0 {
			f.Set(core.ActionFire)
		}

		lvl := c.Level()
		p := lvl.Player().Bounds()
		_, py := p.Center()

		target, best := math.NaN(), math.Inf(1)
		for _, e := range lvl.Enemies() {
			b := e.Bounds()
			if b.X < best {
				_, target = b.Center()
				best = b.X
			}
		}
		if math.IsNaN(target) {
			break
		}
		switch {
		case target < py-p.H/2:
			f.Set(core.ActionUp)
		case target > py+p.H/2:
			f.Set(core.ActionDown)
		}
	}
	return f
}
