package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// LookToLH builds a left-handed view matrix for a camera at eye looking
// along dir. dir need not be normalized. A zero dir looks down +Z.
func LookToLH(eye, dir, up mgl64.Vec3) mgl64.Mat4 {
	if dir.Len() == 0 {
		dir = mgl64.Vec3{0, 0, 1}
	}
	z := dir.Normalize()
	x := up.Cross(z)
	if x.Len() == 0 {
		x = mgl64.Vec3{1, 0, 0}
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4{
		x.X(), y.X(), z.X(), 0,
		x.Y(), y.Y(), z.Y(), 0,
		x.Z(), y.Z(), z.Z(), 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveFovLH builds a left-handed projection that maps view depth in
// [near, far] to clip depth [0, 1].
func PerspectiveFovLH(fovY, aspect, near, far float64) mgl64.Mat4 {
	h := 1 / math.Tan(fovY/2)
	w := h / aspect
	r := far / (far - near)

	return mgl64.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}
