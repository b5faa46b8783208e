package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFlip) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFlip)
	f.Set(ActionPause)
	if !f.Has(ActionFlip) || !f.Has(ActionPause) {
		t.Errorf("frame should have Flip and Pause, got %016b", f)
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not have Quit")
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be reported")
	}

	f.Unset(ActionFlip)
	if f.Has(ActionFlip) || !f.Has(ActionPause) {
		t.Errorf("Unset(Flip) left %016b, expected only Pause", f)
	}

	f.Clear()
	if f != 0 {
		t.Errorf("Clear() left %016b", f)
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionRestart, ActionBack)
	if !f.Has(ActionRestart) || !f.Has(ActionBack) {
		t.Errorf("InputOf() = %016b, expected Restart and Back", f)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionFlip:  "Flip",
		ActionPause: "Pause",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestRuntimeConfigDeltaTime(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DeltaTime() != 1.0/60.0 {
		t.Errorf("DeltaTime() = %v, expected 1/60", cfg.DeltaTime())
	}
	cfg.TickRate = 0
	if cfg.DeltaTime() != 1.0/60.0 {
		t.Errorf("DeltaTime() with zero rate = %v, expected 1/60 fallback", cfg.DeltaTime())
	}
}
