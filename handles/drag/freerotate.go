package drag

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

var dimmingColor = core.Color{0, 0, 0, 0.078}

// tumbleAxis is the axis that turns the point facing the camera along the screen delta.
func tumbleAxis(cam core.CameraProjector, delta mgl32.Vec2) mgl32.Vec3 {
	motion := cam.Right().Mul(delta.X()).Sub(cam.Up().Mul(delta.Y()))
	return cam.Forward().Mul(-1).Cross(motion)
}

// FreeRotate tumbles the rotation around camera-relative axes, one degree per pixel of
// pointer motion.
type FreeRotate struct {
	ID         core.HandleID
	Rotation   mgl32.Quat
	Position   mgl32.Vec3
	Size       float32
	DrawCircle bool
	Color      core.Color
}

func (h FreeRotate) Do(f Frame, evt *core.Event) mgl32.Quat {
	ctx, s, cam := f.Ctx, f.Session, f.cam()
	rotation := h.Rotation

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		ctx.AddCandidate(evt, h.ID, core.DistanceToCircle(cam, evt.Mouse, h.Position, h.Size)+core.PickDistance)
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartPosition = h.Position
			s.StartRotation = rotation
		}
	case core.EventMouseDrag:
		if !ctx.IsDragging(evt, h.ID) {
			break
		}
		s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
		if evt.Action() && evt.Shift() && f.Svc.Ray != nil {
			origin, dir := cam.ScreenToWorldRay(s.CurrentMouse)
			if hit, ok := f.Svc.Ray.Raycast(origin, dir); ok && hit.Sub(h.Position).Len() > 1e-6 {
				rotation = core.LookRotation(hit.Sub(h.Position), mgl32.Vec3{0, 1, 0})
			}
		} else if evt.Delta.Len() > 0 {
			rotation = core.AngleAxis(evt.Delta.Len(), tumbleAxis(cam, evt.Delta)).Mul(rotation)
		}
		evt.Use()
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			rotation = s.StartRotation
		}
	case core.EventRepaint:
		d := f.draw()
		if h.DrawCircle {
			d.WireDisc(h.Position, cam.Forward(), h.Size, f.color(h.ID, h.Color), f.thickness())
		}
		if ctx.IsHovering(h.ID) || ctx.Hot() == h.ID {
			d.SolidDisc(h.Position, cam.Forward(), h.Size, dimmingColor)
		}
	}
	return rotation
}
