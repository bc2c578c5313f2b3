package manip

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/drag"
)

// ScaleHandle is the scale gizmo: three cube-capped axes and a uniform center cube.
//
// InitialScale and Multiplier are reset on every MouseDown, so the center cube and the axes
// share one drag origin per gesture. The center cube sets scale to InitialScale*Multiplier.
type ScaleHandle struct {
	IDs   core.ScaleIDs
	Param ScaleParam

	InitialScale mgl32.Vec3
	Multiplier   float32

	session drag.Session
	octant  mgl32.Vec3
}

func NewScaleHandle(instance int) *ScaleHandle {
	return &ScaleHandle{
		IDs:          core.NewScaleIDs(instance),
		Param:        DefaultScaleParam(),
		InitialScale: mgl32.Vec3{1, 1, 1},
		Multiplier:   1,
		octant:       mgl32.Vec3{1, 1, 1},
	}
}

func (h *ScaleHandle) Session() *drag.Session { return &h.session }

// HotIndex is the ScaleIDs index of the captured sub-handle, or -1.
func (h *ScaleHandle) HotIndex(ctx *core.Context) int {
	for i := 0; i < 4; i++ {
		if hot := ctx.Hot(); hot != 0 && h.IDs.At(i) == hot {
			return i
		}
	}
	return -1
}

// Do processes evt and returns the new scale.
func (h *ScaleHandle) Do(env Env, evt *core.Event, scale, position mgl32.Vec3, rotation mgl32.Quat) mgl32.Vec3 {
	ctx, cam, style := env.Ctx, env.Svc.Camera, env.Style
	f := env.frame(&h.session)
	param := h.Param
	constrain := param.ConstrainProportions

	view := viewVector(cam, position, rotation)
	size := cam.HandleSize(position)
	lerps := core.AxisViewLerps(view)

	hot := ctx.Hot()
	isHot := h.IDs.Has(hot)
	centerHot := hot == h.IDs.XYZ

	// While hot the line runs from the center to the cap, so the offset folds into the length.
	axisOffset, lineScale := param.AxisOffset, param.AxisLineScale
	if isHot {
		lineScale = lineScale.Add(axisOffset)
		axisOffset = mgl32.Vec3{}
	}

	if evt.Type == core.EventMouseDown {
		h.InitialScale = scale
		if scale == (mgl32.Vec3{}) {
			h.InitialScale = mgl32.Vec3{1, 1, 1}
		}
		h.Multiplier = 1
	}
	if !ctx.Dragging() {
		h.octant = core.OctantVector(view, param.Orientation)
	}

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

		color := env.baseAxisColor(i)
		if constrain {
			color = style.ConstrainProportionsColor
		}
		color = style.FadedAxisColor(ctx, color, lerp, id)
		if isHot && !thisHot {
			color = style.DisabledColor
			if constrain {
				color = style.SelectedColor
			}
		}
		if centerHot {
			color = style.SelectedColor
		}

		sizeIndex := i
		if constrain {
			sizeIndex = 0
		}
		scale = drag.ScaleAxis{
			ID:                   id,
			Scale:                scale,
			Index:                i,
			Position:             position,
			Direction:            rotation.Rotate(core.AxisVector(i).Mul(h.octant[i])),
			Rotation:             rotation,
			Size:                 size * param.AxisSize[sizeIndex],
			Snap:                 env.scaleSnap(),
			Offset:               axisOffset[i],
			LineScale:            lineScale[sizeIndex],
			ConstrainProportions: constrain,
			Color:                color,
		}.Do(f, evt)
	}

	if param.ShouldShow(3) && (centerHot || !isHot) {
		color := style.CenterColor
		if constrain {
			color = style.ConstrainProportionsColor
		}
		m := drag.ScaleValue{
			ID:       h.IDs.XYZ,
			Value:    h.Multiplier,
			Position: position,
			Rotation: rotation,
			Size:     size * param.XYZSize,
			Snap:     env.scaleSnap(),
			Color:    color,
		}.Do(f, evt)
		if m != h.Multiplier {
			h.Multiplier = m
			scale = h.InitialScale.Mul(m)
		}
	}
	return scale
}
