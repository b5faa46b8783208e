// Package core provides fundamental types and utilities shared by the zigzag
// simulation and the platform layer. It contains no Bubble Tea dependency so
// the game logic stays pure and testable.
package core

import "math"

// Box is a horizontal axis-aligned box on the X/Z plane, described by its
// center and half-extents. Height is ignored: support is a top-down test.
type Box struct {
	CenterX, CenterZ float64
	HalfX, HalfZ     float64
}

// NewBox creates a box centered at (x, z) with the given half-extents.
func NewBox(x, z, halfX, halfZ float64) Box {
	return Box{CenterX: x, CenterZ: z, HalfX: halfX, HalfZ: halfZ}
}

// Contains reports whether (x, z) lies strictly inside the box.
// Points exactly on an edge are outside.
func (b Box) Contains(x, z float64) bool {
	return math.Abs(x-b.CenterX) < b.HalfX && math.Abs(z-b.CenterZ) < b.HalfZ
}

// Shrink returns the box with both half-extents multiplied by factor.
func (b Box) Shrink(factor float64) Box {
	return Box{CenterX: b.CenterX, CenterZ: b.CenterZ, HalfX: b.HalfX * factor, HalfZ: b.HalfZ * factor}
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
