package core

import "github.com/go-gl/mathgl/mgl32"

// Color is linear RGBA in [0,1].
type Color [4]float32

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) MulAlpha(a float32) Color {
	c[3] *= a
	return c
}

func (c Color) Lerp(o Color, t float32) Color {
	t = mgl32.Clamp(t, 0, 1)
	for i := range c {
		c[i] += (o[i] - c[i]) * t
	}
	return c
}

// Rect is a screen rectangle in pixels, y pointing down.
type Rect struct {
	Min, Max mgl32.Vec2
}

func (r Rect) Size() mgl32.Vec2 { return r.Max.Sub(r.Min) }

// CameraProjector maps between world space and screen pixels (origin top-left, y down).
type CameraProjector interface {
	WorldToScreen(p mgl32.Vec3) mgl32.Vec2
	ScreenToWorldRay(s mgl32.Vec2) (origin, dir mgl32.Vec3)
	Position() mgl32.Vec3
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
	Up() mgl32.Vec3
	Orthographic() bool
	// HandleSize is the world size that spans a constant number of pixels at p.
	HandleSize(p mgl32.Vec3) float32
}

// PrimitiveDrawer receives the immediate-mode primitives of one Repaint pass.
// Arcs start at from and sweep angle degrees around normal.
type PrimitiveDrawer interface {
	Line(a, b mgl32.Vec3, c Color, thickness float32)
	DottedLine(a, b mgl32.Vec3, c Color, screenSpaceSize float32)
	WireArc(center, normal, from mgl32.Vec3, angle, radius float32, c Color, thickness float32)
	WireDisc(center, normal mgl32.Vec3, radius float32, c Color, thickness float32)
	SolidDisc(center, normal mgl32.Vec3, radius float32, c Color)
	SolidArc(center, normal, from mgl32.Vec3, angle, radius float32, c Color)
	PolyLine(points []mgl32.Vec3, c Color)
	SolidRectangle(verts [4]mgl32.Vec3, face, outline Color)
	Cube(center mgl32.Vec3, rotation mgl32.Quat, size float32, c Color)
	Sphere(center mgl32.Vec3, size float32, c Color)
	Cone(center mgl32.Vec3, rotation mgl32.Quat, size float32, c Color)
	Label(rect Rect, text string, fg, bg Color)
}

// HitRegistrar collects the screen distances of hit-testable handles during Layout/MouseMove.
type HitRegistrar interface {
	AddCandidate(id HandleID, distance float32)
	Nearest() HandleID
	Reset()
}

type SnapSettings interface {
	Move() mgl32.Vec3
	Rotate() float32
	Scale() float32
	IncrementalSnapActive() bool
}

// SceneRaycaster is optional; without it ray-drag rotation is disabled.
type SceneRaycaster interface {
	Raycast(origin, dir mgl32.Vec3) (mgl32.Vec3, bool)
}

// FollowLock is optional; the host stops re-centering the handle on the object while locked.
type FollowLock interface {
	LockHandlePosition()
	UnlockHandlePosition()
}

// Services bundles the host collaborators a frame needs.
type Services struct {
	Camera CameraProjector
	Draw   PrimitiveDrawer
	Snap   SnapSettings
	Ray    SceneRaycaster
}

// StaticSnap is a fixed SnapSettings.
type StaticSnap struct {
	MoveStep    mgl32.Vec3
	RotateStep  float32
	ScaleStep   float32
	Incremental bool
}

func DefaultSnap() *StaticSnap {
	return &StaticSnap{
		MoveStep:   mgl32.Vec3{1, 1, 1},
		RotateStep: 15,
		ScaleStep:  1,
	}
}

func (s *StaticSnap) Move() mgl32.Vec3            { return s.MoveStep }
func (s *StaticSnap) Rotate() float32             { return s.RotateStep }
func (s *StaticSnap) Scale() float32              { return s.ScaleStep }
func (s *StaticSnap) IncrementalSnapActive() bool { return s.Incremental }
