package core

import (
	"math"
	"testing"
)

func TestCollideNoOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aPos   Vec2
		bPos   Vec2
	}{
		{"far left", Vec2{-100, 0}, Vec2{0, 0}},
		{"far right", Vec2{100, 0}, Vec2{0, 0}},
		{"far above", Vec2{0, 100}, Vec2{0, 0}},
		{"far below", Vec2{0, -100}, Vec2{0, 0}},
		{"touching edges", Vec2{20, 0}, Vec2{0, 0}}, // exact contact is not overlap
	}

	size := Vec2{20, 20}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collide(tc.aPos, size, tc.bPos, size); got != SideNone {
				t.Errorf("Collide() = %v, expected None", got)
			}
		})
	}
}

func TestCollideSideClassification(t *testing.T) {
	// B is a 60x20 block at the origin; A is a 30x30 ball approaching
	// with a shallow overlap on one face.
	bSize := Vec2{60, 20}
	aSize := Vec2{30, 30}

	tests := []struct {
		name     string
		aPos     Vec2
		expected Side
	}{
		{"shallow overlap from the left", Vec2{-42, 0}, SideLeft},
		{"shallow overlap from the right", Vec2{42, 0}, SideRight},
		{"shallow overlap from above", Vec2{0, 22}, SideTop},
		{"shallow overlap from below", Vec2{0, -22}, SideBottom},
		// Overlapping a corner: 3 deep horizontally, 2 deep vertically,
		// so the vertical face wins.
		{"corner, shallower vertically", Vec2{-42, 23}, SideTop},
		// 2 deep horizontally, 10 deep vertically: horizontal face wins.
		{"corner, shallower horizontally", Vec2{-43, 15}, SideLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collide(tc.aPos, aSize, Vec2{0, 0}, bSize); got != tc.expected {
				t.Errorf("Collide(%v) = %v, expected %v", tc.aPos, got, tc.expected)
			}
		})
	}
}

func TestCollideInside(t *testing.T) {
	// Ball fully enclosed by a much larger box on both axes.
	if got := Collide(Vec2{0, 0}, Vec2{30, 30}, Vec2{0, 0}, Vec2{1000, 1000}); got != SideInside {
		t.Errorf("fully enclosed ball should classify Inside, got %v", got)
	}

	// Enclosed horizontally but overlapping a face vertically: the
	// vertical face must win over the enclosed axis.
	if got := Collide(Vec2{0, 22}, Vec2{30, 30}, Vec2{0, 0}, Vec2{1000, 20}); got != SideTop {
		t.Errorf("vertical face should beat enclosed horizontal axis, got %v", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{0.5, -0.5}.Normalize()
	if math.Abs(v.Len()-1.0) > 1e-9 {
		t.Errorf("normalized length = %f, expected 1", v.Len())
	}
	if v.X <= 0 || v.Y >= 0 {
		t.Errorf("normalize should preserve direction, got %v", v)
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %v", zero)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, -4})
	if got.X != 4 || got.Y != -2 {
		t.Errorf("Add = %v, expected {4 -2}", got)
	}

	got = Vec2{1, -2}.Scale(2.5)
	if got.X != 2.5 || got.Y != -5 {
		t.Errorf("Scale = %v, expected {2.5 -5}", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	f.Hold(ActionLeft)
	f.Press(ActionPause)

	if !f.Held(ActionLeft) {
		t.Error("ActionLeft should be held")
	}
	if f.Held(ActionRight) {
		t.Error("ActionRight should not be held")
	}
	if !f.Pressed(ActionPause) {
		t.Error("ActionPause should be pressed")
	}
	if f.Pressed(ActionLeft) {
		t.Error("holding a key does not imply a fresh press")
	}

	f.Clear()
	if f.Held(ActionLeft) || f.Pressed(ActionPause) {
		t.Error("Clear should reset all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero value must be queryable and settable without panics.
	var f InputFrame
	if f.Held(ActionLeft) || f.Pressed(ActionPause) {
		t.Error("zero frame should report nothing")
	}
	f.Hold(ActionRight)
	f.Press(ActionResume)
	if !f.Held(ActionRight) || !f.Pressed(ActionResume) {
		t.Error("zero frame should accept actions")
	}
}
