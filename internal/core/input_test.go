package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should mark the action")
	}
	if f.Has(ActionStart) {
		t.Error("unrelated action should not be set")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionJump:  "Jump",
		ActionStart: "Start",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
