package drag

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// Frame is what a sub-handle needs to process one event.
type Frame struct {
	Ctx     *core.Context
	Svc     core.Services
	Style   *core.Style
	Session *Session
}

func (f Frame) cam() core.CameraProjector { return f.Svc.Camera }
func (f Frame) draw() core.PrimitiveDrawer { return f.Svc.Draw }

func (f Frame) snapActive() bool {
	return f.Svc.Snap != nil && f.Svc.Snap.IncrementalSnapActive()
}

func (f Frame) snap(v, step float32) float32 {
	return core.SnapValue(v, step, f.snapActive())
}

func (f Frame) thickness() float32 {
	if f.Style == nil {
		return 1
	}
	return f.Style.LineThickness
}

// color resolves the hover and hot highlight of id on top of base.
func (f Frame) color(id core.HandleID, base core.Color) core.Color {
	return f.Ctx.HandleColor(id, base, f.Style)
}

// planeHit intersects the pointer ray with the plane through point.
func (f Frame) planeHit(mouse mgl32.Vec2, point, normal mgl32.Vec3) (mgl32.Vec3, bool) {
	origin, dir := f.cam().ScreenToWorldRay(mouse)
	if hit, ok := core.RayPlane(origin, dir, point, normal); ok {
		return hit, true
	}
	if !f.cam().Orthographic() {
		return mgl32.Vec3{}, false
	}
	// Orthographic rays start on the camera plane; allow the plane to sit behind it.
	return core.RayPlane(origin, dir.Mul(-1), point, normal)
}
