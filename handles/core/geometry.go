package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraViewThreshold is the fade above which a non-hot handle is neither drawn nor hit-testable.
const CameraViewThreshold = 0.6

// Orientation selects how the octant of axis and plane handles is chosen.
type Orientation int

const (
	// OrientationSigned always points handles along the positive axes.
	OrientationSigned Orientation = iota
	// OrientationCamera flips each axis towards the camera.
	OrientationCamera
)

var (
	worldForward = mgl32.Vec3{0, 0, 1}
	worldUp      = mgl32.Vec3{0, 1, 0}

	cos25  = float32(math.Cos(25 * math.Pi / 180))
	cos15  = float32(math.Cos(15 * math.Pi / 180))
	cos170 = float32(math.Cos(170 * math.Pi / 180))
	cos175 = float32(math.Cos(175 * math.Pi / 180))
)

func AxisVector(i int) mgl32.Vec3 {
	var v mgl32.Vec3
	v[i] = 1
	return v
}

// Normalize returns v scaled to unit length, or fallback when v has (near) zero length.
func Normalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return fallback
	}
	return v.Mul(1 / l)
}

func InverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return mgl32.Clamp((v-a)/(b-a), 0, 1)
}

// Repeat wraps t into [0, length).
func Repeat(t, length float32) float32 {
	return t - float32(math.Floor(float64(t/length)))*length
}

func Sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// CameraViewInDrawSpace returns the normalized direction from the camera towards the handle,
// expressed in draw space. invDrawToWorld maps world to draw space, so skewed handle matrices
// still fade the right axes.
func CameraViewInDrawSpace(handleWorldPos mgl32.Vec3, invDrawToWorld mgl32.Mat4, cam CameraProjector) mgl32.Vec3 {
	var view mgl32.Vec3
	if cam.Orthographic() {
		view = cam.Forward()
	} else {
		view = handleWorldPos.Sub(cam.Position())
	}
	view = mgl32.TransformNormal(view, invDrawToWorld)
	return Normalize(view, worldForward)
}

// CameraViewLerp is 1 when the axis points (almost) straight at or away from the camera.
func CameraViewLerp(view, axis mgl32.Vec3) float32 {
	dot := view.Dot(axis)
	return float32(math.Max(
		float64(InverseLerp(cos25, cos15, dot)),
		float64(InverseLerp(cos170, cos175, dot)),
	))
}

// AxisViewLerps fills the three axis fades followed by the three plane fades (XY, YZ, ZX).
func AxisViewLerps(view mgl32.Vec3) [6]float32 {
	var lerps [6]float32
	for i := 0; i < 3; i++ {
		lerps[i] = CameraViewLerp(view, AxisVector(i))
	}
	for i := 0; i < 3; i++ {
		lerps[3+i] = PlaneViewLerp(lerps, i)
	}
	return lerps
}

// PlaneViewLerp is the fade of the plane spanned by axis i and axis (i+1)%3.
func PlaneViewLerp(lerps [6]float32, i int) float32 {
	a, b := lerps[i], lerps[(i+1)%3]
	if a > b {
		return a
	}
	return b
}

// DrawOrder sorts the axes by descending view component so the axis pointing most towards the
// camera is drawn last. Ties keep index order.
func DrawOrder(view mgl32.Vec3) [3]int {
	order := [3]int{0, 1, 2}
	if view[order[1]] > view[order[0]] {
		order[0], order[1] = order[1], order[0]
	}
	if view[order[2]] > view[order[1]] {
		order[1], order[2] = order[2], order[1]
	}
	if view[order[1]] > view[order[0]] {
		order[0], order[1] = order[1], order[0]
	}
	return order
}

func Octant(view mgl32.Vec3, orientation Orientation, i int) float32 {
	if orientation == OrientationCamera && view[i] > 0.01 {
		return -1
	}
	return 1
}

func OctantVector(view mgl32.Vec3, orientation Orientation) mgl32.Vec3 {
	return mgl32.Vec3{
		Octant(view, orientation, 0),
		Octant(view, orientation, 1),
		Octant(view, orientation, 2),
	}
}

// SnapValue rounds v to the nearest multiple of snap while incremental snapping is active.
func SnapValue(v, snap float32, active bool) float32 {
	if !active || snap <= 0 {
		return v
	}
	return float32(math.Round(float64(v/snap))) * snap
}

// CalcLineTranslation maps a pointer move from src to dst onto the screen projection of the line
// through srcPosition along dir and returns the travelled distance in world units.
func CalcLineTranslation(cam CameraProjector, src, dst mgl32.Vec2, srcPosition, dir mgl32.Vec3) float32 {
	invert := float32(1)
	if dir.Dot(cam.Forward()) < 0 {
		invert = -1
	}
	p1 := cam.WorldToScreen(srcPosition)
	p2 := cam.WorldToScreen(srcPosition.Add(dir.Mul(invert)))
	line := p2.Sub(p1)
	l2 := line.Dot(line)
	if l2 < 1e-8 {
		return 0
	}
	t0 := src.Sub(p1).Dot(line) / l2
	t1 := dst.Sub(p1).Dot(line) / l2
	return (t1 - t0) * invert
}

// AngleAxis rotates by deg degrees around axis. A zero axis yields identity.
func AngleAxis(deg float32, axis mgl32.Vec3) mgl32.Quat {
	l := axis.Len()
	if l < 1e-6 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(mgl32.DegToRad(deg), axis.Mul(1/l))
}

// LookRotation returns the rotation whose forward (+Z) is forward and whose up is as close to up
// as possible. Degenerate input yields identity.
func LookRotation(forward, up mgl32.Vec3) mgl32.Quat {
	z := Normalize(forward, mgl32.Vec3{})
	if z.Len() == 0 {
		return mgl32.QuatIdent()
	}
	x := up.Cross(z)
	if x.Len() < 1e-6 {
		x = mgl32.Vec3{0, 0, 1}.Cross(z)
		if x.Len() < 1e-6 {
			x = mgl32.Vec3{1, 0, 0}.Cross(z)
		}
	}
	x = x.Normalize()
	y := z.Cross(x)
	m := mgl32.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m).Normalize()
}

// Vec3Near compares a and b component-wise with an absolute tolerance.
func Vec3Near(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > float64(eps) {
			return false
		}
	}
	return true
}

func Vec2Near(a, b mgl32.Vec2, eps float32) bool {
	return Vec3Near(mgl32.Vec3{a[0], a[1]}, mgl32.Vec3{b[0], b[1]}, eps)
}

// QuatApproxEqual treats q and -q as the same rotation.
func QuatApproxEqual(a, b mgl32.Quat, eps float32) bool {
	d := a.Dot(b)
	if d < 0 {
		d = -d
	}
	return d >= 1-eps
}

// QuatToEuler decomposes q as R = Ry * Rx * Rz and returns (x, y, z) in degrees, each in [0, 360).
func QuatToEuler(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	r12 := mgl32.Clamp(m.At(1, 2), -1, 1)
	x := math.Asin(float64(-r12))
	var y, z float64
	if math.Abs(float64(r12)) < 0.9999 {
		y = math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2)))
		z = math.Atan2(float64(m.At(1, 0)), float64(m.At(1, 1)))
	} else {
		y = math.Atan2(float64(-m.At(2, 0)), float64(m.At(0, 0)))
	}
	return mgl32.Vec3{
		normalizeDegrees(float32(x * 180 / math.Pi)),
		normalizeDegrees(float32(y * 180 / math.Pi)),
		normalizeDegrees(float32(z * 180 / math.Pi)),
	}
}

func EulerToQuat(e mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(e[0]), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(e[1]), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(e[2]), mgl32.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

func normalizeDegrees(d float32) float32 {
	d = Repeat(d, 360)
	if d >= 360 {
		d = 0
	}
	return d
}

// DiscSectionPoints samples n points of the arc of angle degrees starting at from around normal.
func DiscSectionPoints(center, normal, from mgl32.Vec3, angle, radius float32, n int) []mgl32.Vec3 {
	points := make([]mgl32.Vec3, n)
	if n == 0 {
		return points
	}
	step := mgl32.QuatIdent()
	if n > 1 {
		step = AngleAxis(angle/float32(n-1), normal)
	}
	v := Normalize(from, mgl32.Vec3{}).Mul(radius)
	for i := range points {
		points[i] = center.Add(v)
		v = step.Rotate(v)
	}
	return points
}

// DiscTangent picks a vector in the plane of a disc with the given normal.
func DiscTangent(normal mgl32.Vec3) mgl32.Vec3 {
	t := normal.Cross(worldUp)
	if t.Dot(t) < 0.001 {
		t = normal.Cross(mgl32.Vec3{1, 0, 0})
	}
	return t
}
