package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a ready CameraProjector. Like an OpenGL view it looks along Rotation*(0,0,-1) with
// Rotation*(0,1,0) up; screen coordinates are pixels with the origin in the top-left corner.
type Camera struct {
	Pos      mgl32.Vec3
	Rotation mgl32.Quat
	Width    float32
	Height   float32
	// FovY is the vertical field of view in degrees (perspective).
	FovY  float32
	Near  float32
	Ortho bool
	// OrthoSize is half the visible height in world units (orthographic).
	OrthoSize float32
}

func NewCamera(width, height float32) *Camera {
	return &Camera{
		Pos:       mgl32.Vec3{0, 2, 20},
		Rotation:  mgl32.QuatIdent(),
		Width:     width,
		Height:    height,
		FovY:      60,
		Near:      0.01,
		OrthoSize: 5,
	}
}

// LookAt points the camera at target from its current position.
func (c *Camera) LookAt(target, up mgl32.Vec3) {
	c.Rotation = cameraRotation(target.Sub(c.Pos), up)
}

// cameraRotation maps local -Z to forward.
func cameraRotation(forward, up mgl32.Vec3) mgl32.Quat {
	return LookRotation(forward.Mul(-1), up)
}

func (c *Camera) Position() mgl32.Vec3 { return c.Pos }
func (c *Camera) Forward() mgl32.Vec3  { return c.Rotation.Rotate(mgl32.Vec3{0, 0, -1}) }
func (c *Camera) Right() mgl32.Vec3    { return c.Rotation.Rotate(mgl32.Vec3{1, 0, 0}) }
func (c *Camera) Up() mgl32.Vec3       { return c.Rotation.Rotate(mgl32.Vec3{0, 1, 0}) }
func (c *Camera) Orthographic() bool   { return c.Ortho }

func (c *Camera) aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return c.Width / c.Height
}

func (c *Camera) tanHalfFov() float32 {
	return float32(math.Tan(float64(mgl32.DegToRad(c.FovY) / 2)))
}

// pixelsPerUnit is the orthographic scale.
func (c *Camera) pixelsPerUnit() float32 {
	if c.OrthoSize <= 0 {
		return 1
	}
	return c.Height / (2 * c.OrthoSize)
}

func (c *Camera) WorldToScreen(p mgl32.Vec3) mgl32.Vec2 {
	local := c.Rotation.Conjugate().Rotate(p.Sub(c.Pos))
	if c.Ortho {
		s := c.pixelsPerUnit()
		return mgl32.Vec2{c.Width/2 + local.X()*s, c.Height/2 - local.Y()*s}
	}
	z := -local.Z()
	near := c.Near
	if near <= 0 {
		near = 1e-4
	}
	if z < near {
		z = near
	}
	t := c.tanHalfFov()
	nx := local.X() / z / (c.aspect() * t)
	ny := local.Y() / z / t
	return mgl32.Vec2{(nx + 1) * 0.5 * c.Width, (1 - ny) * 0.5 * c.Height}
}

func (c *Camera) ScreenToWorldRay(s mgl32.Vec2) (origin, dir mgl32.Vec3) {
	right, up, forward := c.Right(), c.Up(), c.Forward()
	if c.Ortho {
		ppu := c.pixelsPerUnit()
		lx := (s.X() - c.Width/2) / ppu
		ly := (c.Height/2 - s.Y()) / ppu
		return c.Pos.Add(right.Mul(lx)).Add(up.Mul(ly)), forward
	}
	// Normalized Device Coordinates
	nx := (2.0*s.X())/c.Width - 1.0
	ny := 1.0 - (2.0*s.Y())/c.Height
	t := c.tanHalfFov()
	dir = forward.Add(right.Mul(nx * c.aspect() * t)).Add(up.Mul(ny * t))
	return c.Pos, Normalize(dir, forward)
}

// HandleSize returns the world size spanning 80 pixels at the depth of p.
func (c *Camera) HandleSize(p mgl32.Vec3) float32 {
	forward := c.Forward()
	dist := p.Sub(c.Pos).Dot(forward)
	center := c.Pos.Add(forward.Mul(dist))
	s1 := c.WorldToScreen(center)
	s2 := c.WorldToScreen(center.Add(c.Right()))
	px := s2.Sub(s1).Len()
	if px < 1e-4 {
		px = 1e-4
	}
	return 80 / px
}

// NewOrthographicCamera places an orthographic camera at pos looking along forward.
func NewOrthographicCamera(width, height, orthoSize float32, pos, forward, up mgl32.Vec3) *Camera {
	c := NewCamera(width, height)
	c.Ortho = true
	c.OrthoSize = orthoSize
	c.Pos = pos
	c.Rotation = cameraRotation(forward, up)
	return c
}
