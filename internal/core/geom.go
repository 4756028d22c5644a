// Package core provides fundamental types and utilities for the asteroids
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns the vector rotated by the given angle in degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// DistanceTo returns the distance between two points.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Length()
}

// Forward converts a rotation in degrees into a unit heading vector.
// Rotation 0 points up (negative Y, screen coordinates).
func Forward(rotationDeg float64) Vec2 {
	return Vec2{0, -1}.Rotate(rotationDeg)
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Wrap relocates a position to the opposite field edge once it leaves the
// visible bounds by more than its radius. Positions already in range are
// returned unchanged.
func Wrap(p Vec2, width, height, radius float64) Vec2 {
	if p.X < -radius {
		p.X = width + radius
	} else if p.X > width+radius {
		p.X = -radius
	}
	if p.Y < -radius {
		p.Y = height + radius
	} else if p.Y > height+radius {
		p.Y = -radius
	}
	return p
}

// CirclesOverlap reports whether two circles touch or intersect.
// Touching exactly counts as an overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return a.DistanceTo(b) <= ra+rb
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

// Lerp linearly interpolates between start and end.
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
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
