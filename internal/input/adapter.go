// Package input translates semantic action frames into player commands.
//
// Terminals report key presses (and auto-repeat) but no key releases, so a
// direction stays active for a short hold window after its last press and is
// stopped when the window runs out.
package input

import "github.com/vovakirdan/sky-battle/internal/core"

// DefaultHold is the number of ticks a direction stays active after its last
// press. It covers the terminal's auto-repeat delay.
const DefaultHold = 6

// Target receives player commands. *level.Level implements it.
type Target interface {
	MoveUp()
	MoveDown()
	MoveLeft()
	MoveRight()
	StopVertical()
	StopHorizontal()
	Fire()
}

// axis tracks one movement axis.
type axis struct {
	dir  int // -1, 0, 1
	left int // ticks remaining in the hold window
}

// Adapter is created once per campaign and re-bound to every new level.
type Adapter struct {
	target Target
	hold   int
	vert   axis
	horiz  axis
}

// NewAdapter creates an adapter with the given hold window in ticks.
// Values below 1 are raised to 1.
func NewAdapter(hold int) *Adapter {
	return &Adapter{hold: max(1, hold)}
}

// Bind attaches the adapter to a new target and clears held directions.
func (a *Adapter) Bind(t Target) {
	a.target = t
	a.vert = axis{}
	a.horiz = axis{}
}

// Apply processes the actions collected during one tick.
func (a *Adapter) Apply(frame core.InputFrame) {
	if a.target == nil {
		return
	}

	a.applyAxis(&a.vert,
		frame.Has(core.ActionUp), frame.Has(core.ActionDown),
		a.target.MoveUp, a.target.MoveDown, a.target.StopVertical)
	a.applyAxis(&a.horiz,
		frame.Has(core.ActionLeft), frame.Has(core.ActionRight),
		a.target.MoveLeft, a.target.MoveRight, a.target.StopHorizontal)

	if frame.Has(core.ActionFire) {
		a.target.Fire()
	}
}

func (a *Adapter) applyAxis(ax *axis, neg, pos bool, moveNeg, movePos, stop func()) {
	switch {
	case neg && pos:
		// Opposite directions in one frame cancel out.
		if ax.dir != 0 {
			stop()
		}
		*ax = axis{}
	case neg:
		if ax.dir != -1 {
			moveNeg()
		}
		*ax = axis{dir: -1, left: a.hold}
	case pos:
		if ax.dir != 1 {
			movePos()
		}
		*ax = axis{dir: 1, left: a.hold}
	case ax.dir != 0:
		ax.left--
		if ax.left <= 0 {
			stop()
			*ax = axis{}
		}
	}
}

// Release stops all movement immediately (used when the game is paused).
func (a *Adapter) Release() {
	if a.target == nil {
		return
	}
	if a.vert.dir != 0 {
		a.target.StopVertical()
	}
	if a.horiz.dir != 0 {
		a.target.StopHorizontal()
	}
	a.vert = axis{}
	a.horiz = axis{}
}

// Direction returns the currently held direction on each axis.
func (a *Adapter) Direction() (x, y int) {
	return a.horiz.dir, a.vert.dir
}
