package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("empty frame should not report held actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionJump)
	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as held")
	}
}

func TestInputPush(t *testing.T) {
	in := NewInput()
	in.Push(KeyDown(ActionJump))
	in.Push(MouseDown(MouseLeft, 10, 20))
	in.Push(MouseMove(11, 21))

	want := []Event{
		{Kind: EventKeyDown, Action: ActionJump},
		{Kind: EventMouseDown, Button: MouseLeft, Pos: V(10, 20)},
		{Kind: EventMouseMove, Pos: V(11, 21)},
	}
	if len(in.Events) != len(want) {
		t.Fatalf("got %d events, expected %d", len(in.Events), len(want))
	}
	for i, e := range want {
		if in.Events[i] != e {
			t.Errorf("event %d = %+v, expected %+v", i, in.Events[i], e)
		}
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionLeft:   "Left",
		ActionRecall: "Recall",
		ActionQuit:   "Quit",
		Action(99):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
