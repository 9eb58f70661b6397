package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionStart) {
		t.Error("zero frame should not have actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) not reflected by Has")
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, -1},
		{-1, -1},
		{0, 0},
		{1, 1},
		{7, 1},
	}

	for _, tc := range tests {
		var f InputFrame
		f.SetAxis(tc.in)
		if f.Axis != tc.want {
			t.Errorf("SetAxis(%d) -> %d, expected %d", tc.in, f.Axis, tc.want)
		}
	}
}

func TestInputFrameClearActionsKeepsAxis(t *testing.T) {
	f := NewInputFrame()
	f.SetAxis(1)
	f.Set(ActionRestart)

	f.ClearActions()
	if f.Has(ActionRestart) {
		t.Error("ClearActions should drop presses")
	}
	if f.Axis != 1 {
		t.Errorf("ClearActions should keep axis, got %d", f.Axis)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.SetAxis(-1)
	f.Set(ActionMenu)

	c := f.Clone()
	f.ClearActions()

	if !c.Has(ActionMenu) || c.Axis != -1 {
		t.Errorf("clone should be independent, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	if ActionStart.String() != "Start" {
		t.Errorf("ActionStart.String() = %q", ActionStart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
