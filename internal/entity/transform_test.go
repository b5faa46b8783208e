package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorldMatrixCache(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})

	if !tr.Dirty() {
		t.Fatal("new transform should be dirty")
	}
	m := tr.WorldMatrix()
	if tr.Dirty() {
		t.Error("WorldMatrix() should clear the dirty flag")
	}
	if got := m.Col(3); got != (mgl64.Vec4{1, 2, 3, 1}) {
		t.Errorf("translation column = %v, expected [1 2 3 1]", got)
	}

	// A write followed by a read in the same frame must not see the old matrix
	tr.SetPosition(mgl64.Vec3{4, 5, 6})
	if !tr.Dirty() {
		t.Error("SetPosition should mark dirty")
	}
	if got := tr.WorldMatrix().Col(3); got != (mgl64.Vec4{4, 5, 6, 1}) {
		t.Errorf("translation after SetPosition = %v, expected [4 5 6 1]", got)
	}

	// Recomputation is idempotent
	a := tr.WorldMatrix()
	b := tr.WorldMatrix()
	if a != b {
		t.Error("repeated WorldMatrix() calls should return the same matrix")
	}
}

func TestWorldMatrixComposition(t *testing.T) {
	// Scale is applied before rotation: a unit X vector scaled by 5 and
	// yawed 90 degrees ends up along the Z axis with length 5.
	tr := NewTransform(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{0, math.Pi / 2, 0}, mgl64.Vec3{5, 1, 1})
	p := tr.WorldMatrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1})

	if math.Abs(p.X()-10) > 1e-9 {
		t.Errorf("x = %v, expected 10", p.X())
	}
	if math.Abs(math.Abs(p.Z())-5) > 1e-9 {
		t.Errorf("|z| = %v, expected 5", math.Abs(p.Z()))
	}
}

func TestRelativeMutators(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	tr.WorldMatrix()

	tr.MoveRelative(mgl64.Vec3{1, 0, 0})
	if !tr.Dirty() {
		t.Error("MoveRelative should mark dirty")
	}
	tr.WorldMatrix()
	tr.RotateRelative(mgl64.Vec3{0, 1, 0})
	if !tr.Dirty() {
		t.Error("RotateRelative should mark dirty")
	}
	tr.WorldMatrix()
	tr.ResizeRelative(mgl64.Vec3{1, 0, 0})
	if !tr.Dirty() {
		t.Error("ResizeRelative should mark dirty")
	}

	if tr.Position() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Position() = %v", tr.Position())
	}
	if tr.Rotation() != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Rotation() = %v", tr.Rotation())
	}
	if tr.Scale() != (mgl64.Vec3{2, 1, 1}) {
		t.Errorf("Scale() = %v", tr.Scale())
	}
}

func TestTransitionTowardConverges(t *testing.T) {
	tests := []struct {
		name          string
		start, target float64
		rate, dt      float64
	}{
		{"descend into place", 1.52, -0.48, 2.2, 1.0 / 60.0},
		{"sink out of place", -0.48, -1.48, 2.2, 1.0 / 60.0},
		{"rise", 0, 3, 2.2, 1.0 / 30.0},
		{"exact multiple", 1, 0, 1, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransform(mgl64.Vec3{0, tc.start, 0}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
			bound := int(math.Ceil(math.Abs(tc.start-tc.target)/(tc.rate*tc.dt))) + 1

			calls := 0
			for tr.TransitionToward(tc.target, tc.dt, tc.rate) {
				calls++
				if calls > bound {
					t.Fatalf("did not converge within %d calls", bound)
				}
				if tr.Position().Y() == tc.target {
					t.Fatal("returned true after reaching the target")
				}
			}
			if tr.Position().Y() != tc.target {
				t.Errorf("Y = %v, expected exactly %v", tr.Position().Y(), tc.target)
			}
			if !tr.Dirty() {
				t.Error("TransitionToward should mark dirty")
			}
		})
	}
}

func TestTransitionTowardAtTarget(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	if tr.TransitionToward(2, 0.1, 2.2) {
		t.Error("TransitionToward at target should report done")
	}
}
