package manip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/drag"
)

const freeMoveSizeFactor = 0.15

var (
	nextAxis  = [3]int{1, 2, 0}
	prevAxis  = [3]int{2, 0, 1}
	prevPlane = [3]int{5, 3, 4}
)

// PositionHandle is the translate gizmo: three arrows, three planar quads and an optional
// camera-facing free-move square.
type PositionHandle struct {
	IDs   core.PositionIDs
	Param PositionParam

	session     drag.Session
	axisOctant  mgl32.Vec3
	planeOctant mgl32.Vec3
	freeMove    bool
}

func NewPositionHandle(instance int) *PositionHandle {
	return &PositionHandle{
		IDs:         core.NewPositionIDs(instance),
		Param:       DefaultPositionParam(),
		axisOctant:  mgl32.Vec3{1, 1, 1},
		planeOctant: mgl32.Vec3{1, 1, 1},
	}
}

// Session is the drag state of the last gesture captured by this handle.
func (h *PositionHandle) Session() *drag.Session { return &h.session }

// AxisOctant and PlaneOctant are the per-axis sides the arrows and quads are drawn on.
func (h *PositionHandle) AxisOctant() mgl32.Vec3  { return h.axisOctant }
func (h *PositionHandle) PlaneOctant() mgl32.Vec3 { return h.planeOctant }

// HotIndex is the PositionIDs index of the captured sub-handle, or -1.
func (h *PositionHandle) HotIndex(ctx *core.Context) int {
	for i := 0; i < 7; i++ {
		if hot := ctx.Hot(); hot != 0 && h.IDs.At(i) == hot {
			return i
		}
	}
	return -1
}

// Do processes evt and returns the new position.
func (h *PositionHandle) Do(env Env, evt *core.Event, position mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	ctx, cam, style := env.Ctx, env.Svc.Camera, env.Style
	f := env.frame(&h.session)
	param := h.Param

	view := viewVector(cam, position, rotation)
	size := cam.HandleSize(position)
	lerps := core.AxisViewLerps(view)
	move := env.moveSnap()

	hot := ctx.Hot()
	isHot := h.IDs.Has(hot)
	axisOffset, planeOffset, planeSize := param.AxisOffset, param.PlaneOffset, param.PlaneSize
	if isHot {
		axisOffset = mgl32.Vec3{}
		planeOffset = mgl32.Vec3{}
		planeSize = planeSize.Add(param.PlaneOffset)
	}

	if !ctx.Dragging() {
		h.axisOctant = core.OctantVector(view, param.AxesOrientation)
		h.planeOctant = core.OctantVector(view, param.PlaneOrientation)
		h.freeMove = evt.Shift()
	}

	for i := 0; i < 3; i++ {
		id := h.IDs.At(3 + i)
		if !param.ShouldShow(3+i) || isHot && id != hot {
			continue
		}
		lerp := lerps[3+i]
		if isHot {
			lerp = 0
		}
		if lerp > core.CameraViewThreshold {
			continue
		}
		offset := planeOffset.Mul(size)
		offset[prevAxis[i]] = 0
		planar := max(planeSize[i], planeSize[nextAxis[i]])
		position = h.planar(env, f, evt, id, i, position, offset, rotation, size*planar, lerp, move)
	}

	// Arrows after the planes so they win ties.
	for _, i := range core.DrawOrder(view) {
		if !param.ShouldShow(i) {
			continue
		}
		id := h.IDs.At(i)
		thisHot := isHot && id == hot
		lerp := lerps[i]
		if thisHot {
			lerp = 0
		}
		if lerp > core.CameraViewThreshold {
			continue
		}
		color := style.FadedAxisColor(ctx, env.baseAxisColor(i), lerp, id)
		if isHot && !thisHot {
			color = style.DisabledColor
		}
		if isHot && (hot == h.IDs.At(prevPlane[i]) || hot == h.IDs.At(3+i)) {
			color = style.ActiveAxisColor
		}
		dir := rotation.Rotate(core.AxisVector(i)).Mul(h.axisOctant[i])
		position = drag.Slider1D{
			ID:        id,
			Position:  position,
			Offset:    dir.Mul(axisOffset[i] * size),
			Direction: dir,
			Size:      size * param.AxisSize[i],
			Snap:      move[i],
			Color:     color,
		}.Do(f, evt)
	}

	showFree := param.Handles&PositionXYZ != 0 || h.freeMove
	if showFree && (hot == h.IDs.XYZ || !isHot) {
		position = drag.FreeMove{
			ID:       h.IDs.XYZ,
			Position: position,
			Rotation: rotation,
			Size:     size * freeMoveSizeFactor,
			Snap:     move,
			Color:    style.CenterColor,
		}.Do(f, evt)
	}
	return position
}

// planar draws and drives the quad spanning axis i and axis i+1. The quad sits in the plane
// octant, half its size away from the center so the three quads never overlap.
func (h *PositionHandle) planar(env Env, f drag.Frame, evt *core.Event, id core.HandleID, i int,
	position, offset mgl32.Vec3, rotation mgl32.Quat, handleSize, lerp float32, move mgl32.Vec3) mgl32.Vec3 {
	ctx, style := env.Ctx, env.Style
	a1, a2, an := i, nextAxis[i], (i+2)%3

	base := style.AxisColor(an)
	if ctx.Disabled {
		base = style.StaticColor
	}
	color := style.FadedAxisColor(ctx, base, lerp, id)
	faceOpacity := float32(0.1)
	switch {
	case ctx.Hot() == id:
		faceOpacity = 0.8
	case ctx.IsHovering(id):
		faceOpacity = 0.4
	}
	color = ctx.HandleColor(id, color, style)

	octant := h.planeOctant
	octant[an] = 0
	positionOffset := rotation.Rotate(mulElem(offset, octant))
	handleOffset := rotation.Rotate(octant.Mul(handleSize * 0.5))
	axis1 := rotation.Rotate(core.AxisVector(a1))
	axis2 := rotation.Rotate(core.AxisVector(a2))
	normal := rotation.Rotate(core.AxisVector(an))

	if evt.TypeFor() == core.EventRepaint {
		center := position.Add(positionOffset).Add(handleOffset)
		half := handleSize * 0.5
		verts := [4]mgl32.Vec3{
			center.Add(axis1.Add(axis2).Mul(half)),
			center.Add(axis2.Sub(axis1).Mul(half)),
			center.Sub(axis1.Add(axis2).Mul(half)),
			center.Add(axis1.Sub(axis2).Mul(half)),
		}
		env.Svc.Draw.SolidRectangle(verts, color.MulAlpha(faceOpacity), core.Color{})
	}

	return drag.Slider2D{
		ID:       id,
		Position: position,
		Offset:   handleOffset.Add(positionOffset),
		Normal:   normal,
		Dir1:     axis1,
		Dir2:     axis2,
		Size:     handleSize * 0.5,
		Snap:     mgl32.Vec2{move[a1], move[a2]},
		Color:    color,
	}.Do(f, evt)
}
