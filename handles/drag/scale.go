package drag

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// HoverExtraScale enlarges cube caps under the pointer.
const HoverExtraScale = 1.05

// ScaleAxis scales one component of Scale (or all of them with ConstrainProportions) by
// dragging a cube along Direction.
type ScaleAxis struct {
	ID        core.HandleID
	Scale     mgl32.Vec3
	Index     int
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Rotation  mgl32.Quat
	Size      float32
	Snap      float32
	// Offset moves the whole slider out along Direction, in multiples of Size.
	Offset    float32
	LineScale float32

	ConstrainProportions bool
	Color                core.Color
}

func (h ScaleAxis) Do(f Frame, evt *core.Event) mgl32.Vec3 {
	ctx, s, cam := f.Ctx, f.Session, f.cam()
	scale := h.Scale

	drawLength := float32(1)
	if ctx.Hot() == h.ID && s.Handle == h.ID {
		drawLength = s.Distance
	}
	positionOffset := h.Direction.Mul(h.Size * h.Offset)
	start := h.Position.Add(positionOffset)
	cubePos := h.Position.Add(h.Direction.Mul(h.Size * drawLength * h.LineScale)).Add(positionOffset)

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		d := min(core.DistanceToLine(cam, evt.Mouse, start, cubePos), core.DistanceToCube(cam, evt.Mouse, cubePos, h.Size*0.1))
		ctx.AddCandidate(evt, h.ID, d)
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartScale = scale
			s.StartPosition = h.Position
			s.Distance = 1
		}
	case core.EventMouseDrag:
		if ctx.IsDragging(evt, h.ID) {
			s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
			ratio := float32(1)
			if h.Size != 0 {
				ratio += core.CalcLineTranslation(cam, s.StartMouse, s.CurrentMouse, s.StartPosition, h.Direction) / h.Size
			}
			ratio = f.snap(ratio, h.Snap)
			s.Distance = ratio
			if h.ConstrainProportions {
				scale = s.StartScale.Mul(ratio)
			} else {
				scale = s.StartScale
				scale[h.Index] = s.StartScale[h.Index] * ratio
			}
			evt.Use()
		}
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			scale = s.StartScale
		}
	case core.EventRepaint:
		c := f.color(h.ID, h.Color)
		capSize := h.Size * 0.1
		if ctx.IsHovering(h.ID) {
			capSize *= HoverExtraScale
		}
		lineEnd := h.Position.Add(h.Direction.Mul(h.Size*drawLength*h.LineScale - capSize*0.5)).Add(positionOffset)
		d := f.draw()
		// Draw the farther primitive first.
		if cam.Forward().Dot(h.Direction) < 0 {
			d.Line(start, lineEnd, c, f.thickness())
			d.Cube(cubePos, h.Rotation, capSize, c)
		} else {
			d.Cube(cubePos, h.Rotation, capSize, c)
			d.Line(start, lineEnd, c, f.thickness())
		}
	}
	return scale
}

// ScaleValue drags a scalar multiplier with a cube cap; right and up increase it.
type ScaleValue struct {
	ID       core.HandleID
	Value    float32
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Size     float32
	Snap     float32
	Color    core.Color
}

func (h ScaleValue) Do(f Frame, evt *core.Event) float32 {
	ctx, s := f.Ctx, f.Session
	value := h.Value
	capSize := h.Size * 0.15

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		ctx.AddCandidate(evt, h.ID, core.DistanceToCube(f.cam(), evt.Mouse, h.Position, capSize))
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartValue = value
			s.ValueDrag = 0
			s.Distance = 1
		}
	case core.EventMouseDrag:
		if ctx.IsDragging(evt, h.ID) {
			s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
			s.ValueDrag += s.niceMouseDelta(evt.Delta) * 0.01
			value = (f.snap(s.ValueDrag, h.Snap) + 1) * s.StartValue
			if s.StartValue != 0 {
				s.Distance = value / s.StartValue
			}
			evt.Use()
		}
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			value = s.StartValue
		}
	case core.EventRepaint:
		if ctx.IsHovering(h.ID) {
			capSize *= HoverExtraScale
		}
		f.draw().Cube(h.Position, h.Rotation, capSize, f.color(h.ID, h.Color))
	}
	return value
}
