package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) should be visible through Has")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFramePan(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		dx, dy  int
	}{
		{"none", nil, 0, 0},
		{"left", []Action{ActionPanLeft}, -1, 0},
		{"down right", []Action{ActionPanDown, ActionPanRight}, 1, 1},
		{"opposites cancel", []Action{ActionPanLeft, ActionPanRight, ActionPanUp}, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			dx, dy := f.Pan()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Pan() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionStep)
	f.Click(3, 4)
	f.Clear()

	if f.Has(ActionStep) || len(f.Clicks) != 0 {
		t.Error("Clear should drop actions and clicks")
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
