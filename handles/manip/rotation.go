package manip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/drag"
)

var freeRotateColor = core.Color{0, 0, 0, 0.3}

// RotationHandle is the rotate gizmo: a free-rotation sphere, three axis discs and a
// camera-facing outer disc.
type RotationHandle struct {
	IDs   core.RotationIDs
	Param RotationParam

	session drag.Session
	// activeIndex is the last axis disc that was dragged.
	activeIndex int
}

func NewRotationHandle(instance int) *RotationHandle {
	return &RotationHandle{
		IDs:   core.NewRotationIDs(instance),
		Param: DefaultRotationParam(),
	}
}

func (h *RotationHandle) Session() *drag.Session { return &h.session }

func (h *RotationHandle) ActiveAxis() int { return h.activeIndex }

// HotIndex is the RotationIDs index of the captured sub-handle, or -1.
func (h *RotationHandle) HotIndex(ctx *core.Context) int {
	for i := 0; i < 5; i++ {
		if hot := ctx.Hot(); hot != 0 && h.IDs.At(i) == hot {
			return i
		}
	}
	return -1
}

// Do processes evt and returns the new rotation.
func (h *RotationHandle) Do(env Env, evt *core.Event, rotation mgl32.Quat, position mgl32.Vec3) mgl32.Quat {
	ctx, cam, style := env.Ctx, env.Svc.Camera, env.Style
	f := env.frame(&h.session)
	param := h.Param

	camForward := cam.Forward()
	size := cam.HandleSize(position)
	hot := ctx.Hot()
	isHot := h.IDs.Has(hot)

	// Free rotation first: it has the lowest priority.
	if !ctx.Disabled && param.ShouldShow(4) && (hot == h.IDs.XYZ || !isHot) {
		rotation = drag.FreeRotate{
			ID:         h.IDs.XYZ,
			Rotation:   rotation,
			Position:   position,
			Size:       size * param.XYZSize,
			DrawCircle: param.DisplayXYZCircle,
			Color:      freeRotateColor,
		}.Do(f, evt)
	}

	for i := 0; i < 3; i++ {
		id := h.IDs.At(i)
		if !param.ShouldShow(i) || isHot && id != hot {
			continue
		}
		if id == hot {
			h.activeIndex = i
		}
		rotation = drag.Disc{
			ID:            id,
			Rotation:      rotation,
			Position:      position,
			Axis:          rotation.Rotate(core.AxisVector(i)),
			Size:          size * param.AxisSize[i],
			Snap:          env.rotateSnap(),
			CutoffPlane:   true,
			EnableRayDrag: param.EnableRayDrag,
			ShowHotArc:    true,
			Color:         env.baseAxisColor(i),
			FillColor:     style.RotationPieColor(),
		}.Do(f, evt)
	}

	if isHot && evt.TypeFor() == core.EventRepaint {
		env.Svc.Draw.WireDisc(position, camForward, size*param.AxisSize[0], style.DisabledColor, env.thickness())
	}

	if !ctx.Disabled && param.ShouldShow(3) && (hot == h.IDs.CameraAxis || !isHot) {
		rotation = drag.Disc{
			ID:            h.IDs.CameraAxis,
			Rotation:      rotation,
			Position:      position,
			Axis:          camForward,
			Size:          size * param.CameraAxisSize,
			EnableRayDrag: param.EnableRayDrag,
			ShowHotArc:    true,
			Color:         style.CenterColor,
			FillColor:     style.RotationPieColor(),
		}.Do(f, evt)
	}
	return rotation
}
