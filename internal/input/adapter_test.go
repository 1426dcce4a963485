package input

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/sky-battle/internal/core"
)

type recordingTarget struct {
	calls []string
}

func (r *recordingTarget) MoveUp()         { r.calls = append(r.calls, "up") }
func (r *recordingTarget) MoveDown()       { r.calls = append(r.calls, "down") }
func (r *recordingTarget) MoveLeft()       { r.calls = append(r.calls, "left") }
func (r *recordingTarget) MoveRight()      { r.calls = append(r.calls, "right") }
func (r *recordingTarget) StopVertical()   { r.calls = append(r.calls, "stop-v") }
func (r *recordingTarget) StopHorizontal() { r.calls = append(r.calls, "stop-h") }
func (r *recordingTarget) Fire()           { r.calls = append(r.calls, "fire") }

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestAdapterHoldWindow(t *testing.T) {
	target := &recordingTarget{}
	a := NewAdapter(3)
	a.Bind(target)

	a.Apply(frame(core.ActionUp))
	a.Apply(frame(core.ActionUp)) // auto-repeat does not re-issue the command
	a.Apply(frame())
	a.Apply(frame())
	if !reflect.DeepEqual(target.calls, []string{"up"}) {
		t.Fatalf("calls = %v, expected [up] while the window is open", target.calls)
	}

	a.Apply(frame())
	if !reflect.DeepEqual(target.calls, []string{"up", "stop-v"}) {
		t.Errorf("calls = %v, expected stop after the hold window", target.calls)
	}
	if x, y := a.Direction(); x != 0 || y != 0 {
		t.Errorf("Direction() = (%d, %d), expected (0, 0)", x, y)
	}
}

func TestAdapterOppositeCancel(t *testing.T) {
	target := &recordingTarget{}
	a := NewAdapter(DefaultHold)
	a.Bind(target)

	a.Apply(frame(core.ActionRight))
	a.Apply(frame(core.ActionLeft, core.ActionRight))
	if !reflect.DeepEqual(target.calls, []string{"right", "stop-h"}) {
		t.Errorf("calls = %v, expected [right stop-h]", target.calls)
	}
}

func TestAdapterDirectionChange(t *testing.T) {
	target := &recordingTarget{}
	a := NewAdapter(DefaultHold)
	a.Bind(target)

	a.Apply(frame(core.ActionUp, core.ActionLeft))
	a.Apply(frame(core.ActionDown))
	if !reflect.DeepEqual(target.calls, []string{"up", "left", "down"}) {
		t.Errorf("calls = %v", target.calls)
	}
	if x, y := a.Direction(); x != -1 || y != 1 {
		t.Errorf("Direction() = (%d, %d), expected (-1, 1)", x, y)
	}
}

func TestAdapterFire(t *testing.T) {
	target := &recordingTarget{}
	a := NewAdapter(DefaultHold)
	a.Bind(target)

	a.Apply(frame(core.ActionFire))
	a.Apply(frame(core.ActionFire))
	if !reflect.DeepEqual(target.calls, []string{"fire", "fire"}) {
		t.Errorf("calls = %v, expected one fire per frame", target.calls)
	}
}

func TestAdapterReleaseAndRebind(t *testing.T) {
	first := &recordingTarget{}
	a := NewAdapter(DefaultHold)
	a.Bind(first)

	a.Apply(frame(core.ActionDown, core.ActionRight))
	a.Release()
	if !reflect.DeepEqual(first.calls, []string{"down", "right", "stop-v", "stop-h"}) {
		t.Errorf("calls = %v", first.calls)
	}

	second := &recordingTarget{}
	a.Bind(second)
	a.Apply(frame(core.ActionDown))
	if !reflect.DeepEqual(second.calls, []string{"down"}) {
		t.Errorf("calls on rebound target = %v, expected [down]", second.calls)
	}
	if len(first.calls) != 4 {
		t.Error("old target should receive no commands after Bind")
	}
}

func TestAdapterUnbound(t *testing.T) {
	a := NewAdapter(0)
	a.Apply(frame(core.ActionFire))
	a.Release()
}
