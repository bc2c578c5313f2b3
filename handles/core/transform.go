package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the position/rotation/scale snapshot of the manipulated object.
// The host owns it; handles only ever return modified copies.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t Transform) ObjectToWorld() mgl32.Mat4 {
	// M = T * R * S
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// HandleMatrix is the space handles are drawn in: translation and rotation, no scale.
func (t Transform) HandleMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	return translate.Mul4(t.Rotation.Mat4())
}

// EulerAngles returns the rotation as ZXY Euler angles in degrees, each in [0, 360).
func (t Transform) EulerAngles() mgl32.Vec3 {
	return QuatToEuler(t.Rotation)
}

// WithEulerAngles returns a copy of t rotated to the given ZXY Euler angles in degrees.
func (t Transform) WithEulerAngles(e mgl32.Vec3) Transform {
	t.Rotation = EulerToQuat(e)
	return t
}

// ApproxEqual compares all three components with an absolute tolerance.
func (t Transform) ApproxEqual(o Transform, eps float32) bool {
	return t.Position.ApproxEqualThreshold(o.Position, eps) &&
		t.Scale.ApproxEqualThreshold(o.Scale, eps) &&
		QuatApproxEqual(t.Rotation, o.Rotation, eps)
}
