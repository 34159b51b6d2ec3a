// Package core provides fundamental types and utilities for the game:
// world-space geometry, AABB collision classification, input frames and
// the screen buffer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The world uses a y-up coordinate
// system: positive y points toward the top wall.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit-length vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Side classifies which side of a box was struck during an AABB overlap.
// Sides are named from the struck box's perspective: a ball falling onto a
// block registers Top.
type Side int

const (
	SideNone   Side = iota // No overlap
	SideLeft               // Struck the left face
	SideRight              // Struck the right face
	SideTop                // Struck the top face
	SideBottom             // Struck the bottom face
	SideInside             // Moving box enclosed on both axes, no meaningful face
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideInside:
		return "Inside"
	default:
		return "Unknown"
	}
}

// Collide tests axis-aligned bounding-box overlap between a moving box A
// (center aPos, full extents aSize) and a static box B, and classifies the
// struck side of B.
//
// Classification: the axis with the smaller penetration depth wins; a
// shallow horizontal overlap means the hit arrived from the side. If A's
// extent is enclosed by B on an axis, that axis contributes no face;
// enclosed on both axes yields SideInside. Depth ties resolve to the
// horizontal side.
func Collide(aPos, aSize, bPos, bSize Vec2) Side {
	aMinX, aMaxX := aPos.X-aSize.X/2, aPos.X+aSize.X/2
	aMinY, aMaxY := aPos.Y-aSize.Y/2, aPos.Y+aSize.Y/2
	bMinX, bMaxX := bPos.X-bSize.X/2, bPos.X+bSize.X/2
	bMinY, bMaxY := bPos.Y-bSize.Y/2, bPos.Y+bSize.Y/2

	if aMinX >= bMaxX || aMaxX <= bMinX || aMinY >= bMaxY || aMaxY <= bMinY {
		return SideNone
	}

	xSide, xDepth := SideInside, math.Inf(1)
	switch {
	case aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX:
		xSide, xDepth = SideLeft, aMaxX-bMinX
	case aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX:
		xSide, xDepth = SideRight, bMaxX-aMinX
	}

	ySide, yDepth := SideInside, math.Inf(1)
	switch {
	case aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY:
		ySide, yDepth = SideBottom, aMaxY-bMinY
	case aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY:
		ySide, yDepth = SideTop, bMaxY-aMinY
	}

	if yDepth < xDepth {
		return ySide
	}
	return xSide
}

// Rect represents an axis-aligned box in screen cells, used by the
// renderer and screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
