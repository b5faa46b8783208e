// Package entity holds the placed objects of the zigzag world: the ball,
// the planks of the path and decorative props. Each carries a Transform
// whose world matrix is cached and rebuilt lazily after mutation.
package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a position, Euler rotation and non-uniform scale with a
// cached world matrix. The zero value is not usable; use NewTransform.
type Transform struct {
	position mgl64.Vec3
	rotation mgl64.Vec3 // pitch (X), yaw (Y), roll (Z) in radians
	scale    mgl64.Vec3
	world    mgl64.Mat4
	dirty    bool
}

// NewTransform creates a transform with the given placement.
func NewTransform(position, rotation, scale mgl64.Vec3) Transform {
	return Transform{
		position: position,
		rotation: rotation,
		scale:    scale,
		dirty:    true,
	}
}

// Position returns the current position.
func (t *Transform) Position() mgl64.Vec3 { return t.position }

// Rotation returns the current Euler rotation.
func (t *Transform) Rotation() mgl64.Vec3 { return t.rotation }

// Scale returns the current scale.
func (t *Transform) Scale() mgl64.Vec3 { return t.scale }

// SetPosition replaces the position.
func (t *Transform) SetPosition(p mgl64.Vec3) {
	t.position = p
	t.dirty = true
}

// SetRotation replaces the rotation.
func (t *Transform) SetRotation(r mgl64.Vec3) {
	t.rotation = r
	t.dirty = true
}

// SetScale replaces the scale.
func (t *Transform) SetScale(s mgl64.Vec3) {
	t.scale = s
	t.dirty = true
}

// MoveRelative offsets the position.
func (t *Transform) MoveRelative(d mgl64.Vec3) {
	t.position = t.position.Add(d)
	t.dirty = true
}

// RotateRelative offsets the rotation.
func (t *Transform) RotateRelative(d mgl64.Vec3) {
	t.rotation = t.rotation.Add(d)
	t.dirty = true
}

// ResizeRelative offsets the scale.
func (t *Transform) ResizeRelative(d mgl64.Vec3) {
	t.scale = t.scale.Add(d)
	t.dirty = true
}

// Dirty reports whether the cached world matrix is stale.
func (t *Transform) Dirty() bool { return t.dirty }

// WorldMatrix returns scale, then roll/pitch/yaw rotation, then translation
// composed into one column-major matrix. It is rebuilt only when dirty.
func (t *Transform) WorldMatrix() mgl64.Mat4 {
	if t.dirty {
		t.world = composeWorld(t.position, t.rotation, t.scale)
		t.dirty = false
	}
	return t.world
}

func composeWorld(p, r, s mgl64.Vec3) mgl64.Mat4 {
	rot := mgl64.HomogRotate3DY(r.Y()).
		Mul4(mgl64.HomogRotate3DX(r.X())).
		Mul4(mgl64.HomogRotate3DZ(r.Z()))
	return mgl64.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(rot).
		Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// TransitionToward moves Y toward targetY by rate*deltaTime. It returns true
// while still moving and false once Y has reached or passed the target, at
// which point Y is set exactly to targetY.
func (t *Transform) TransitionToward(targetY, deltaTime, rate float64) bool {
	y := t.position.Y()
	step := math.Abs(rate) * deltaTime

	switch {
	case y > targetY:
		y -= step
		if y <= targetY {
			y = targetY
		}
	case y < targetY:
		y += step
		if y >= targetY {
			y = targetY
		}
	}

	t.position[1] = y
	t.dirty = true
	return y != targetY
}
