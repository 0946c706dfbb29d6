package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(Left) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Frame should be empty after Clear")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := FrameOf(ActionNone)
	if len(f.Actions) != 0 {
		t.Error("ActionNone should not be recorded")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero-value frame should have no actions")
	}
	f.Set(ActionUp) // Should allocate lazily, not panic
	if !f.Has(ActionUp) {
		t.Error("Set on zero-value frame should work")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"blue", ColorBlue, true},
		{"Bright-Yellow", ColorBrightYellow, true},
		{"bright yellow", ColorBrightYellow, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}

	if ColorOrange.String() != "orange" {
		t.Errorf("ColorOrange.String() = %q, expected orange", ColorOrange.String())
	}
}
