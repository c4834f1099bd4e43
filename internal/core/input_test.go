package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionPause)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone is dropped)", f.Len())
	}
	want := []Action{ActionUp, ActionLeft, ActionPause}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() reports wrong membership")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear() should empty the frame")
	}
	if clone.Len() != 3 {
		t.Error("Clone() must not share storage with the original")
	}
}

func TestActionClassification(t *testing.T) {
	tests := []struct {
		action     Action
		direction  bool
		difficulty int
	}{
		{ActionUp, true, -1},
		{ActionRight, true, -1},
		{ActionPause, false, -1},
		{ActionDifficulty1, false, 0},
		{ActionDifficulty4, false, 3},
		{ActionRestart, false, -1},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if got := tc.action.IsDirection(); got != tc.direction {
				t.Errorf("IsDirection() = %v, expected %v", got, tc.direction)
			}
			if got := tc.action.DifficultyIndex(); got != tc.difficulty {
				t.Errorf("DifficultyIndex() = %d, expected %d", got, tc.difficulty)
			}
		})
	}
}
