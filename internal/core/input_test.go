package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}
	if f.Has(ActionUp) {
		t.Error("zero frame should not report actions")
	}

	f.Set(ActionUp)
	f.SetClick(4, 7)

	if !f.Has(ActionUp) || !f.Has(ActionClick) {
		t.Errorf("frame should have Up and Click, got %v", f.Actions)
	}
	if f.Click != (Point{X: 4, Y: 7}) {
		t.Errorf("Click = %+v, expected (4,7)", f.Click)
	}

	f.Clear()
	if !f.Empty() || f.Click != (Point{}) {
		t.Errorf("Clear should reset everything, got %+v", f)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSelect)
	f.SetClick(1, 2)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionSelect) || !c.Has(ActionClick) || c.Click != (Point{X: 1, Y: 2}) {
		t.Errorf("clone should be independent of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:   "None",
		ActionSelect: "Select",
		ActionFinish: "Finish",
		ActionClick:  "Click",
		Action(999):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
