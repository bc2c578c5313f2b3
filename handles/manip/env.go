// Package manip composes the drag sub-handles into the position, rotation and scale gizmos.
package manip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/drag"
)

// Env is what every composite needs for one event.
type Env struct {
	Ctx   *core.Context
	Svc   core.Services
	Style *core.Style
}

func (e Env) frame(s *drag.Session) drag.Frame {
	return drag.Frame{Ctx: e.Ctx, Svc: e.Svc, Style: e.Style, Session: s}
}

func (e Env) moveSnap() mgl32.Vec3 {
	if e.Svc.Snap == nil {
		return mgl32.Vec3{}
	}
	return e.Svc.Snap.Move()
}

func (e Env) rotateSnap() float32 {
	if e.Svc.Snap == nil {
		return 0
	}
	return e.Svc.Snap.Rotate()
}

func (e Env) scaleSnap() float32 {
	if e.Svc.Snap == nil {
		return 0
	}
	return e.Svc.Snap.Scale()
}

func (e Env) thickness() float32 {
	if e.Style == nil {
		return 1
	}
	return e.Style.LineThickness
}

// baseAxisColor is the axis color, blended towards the static color while input is disabled.
func (e Env) baseAxisColor(i int) core.Color {
	c := e.Style.AxisColor(i)
	if e.Ctx.Disabled {
		return c.Lerp(e.Style.StaticColor, e.Style.StaticBlend)
	}
	return c
}

// viewVector is the camera view in the handle's draw space (translation and rotation only).
func viewVector(cam core.CameraProjector, position mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	draw := core.Transform{Position: position, Rotation: rotation, Scale: mgl32.Vec3{1, 1, 1}}
	return core.CameraViewInDrawSpace(position, draw.HandleMatrix().Inv(), cam)
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
