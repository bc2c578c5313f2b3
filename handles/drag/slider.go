package drag

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// Slider1D moves a point along one direction. The cap is an arrow drawn at Position+Offset.
type Slider1D struct {
	ID        core.HandleID
	Position  mgl32.Vec3
	Offset    mgl32.Vec3
	Direction mgl32.Vec3
	Size      float32
	Snap      float32
	Color     core.Color
}

func (h Slider1D) Do(f Frame, evt *core.Event) mgl32.Vec3 {
	ctx, s := f.Ctx, f.Session
	position := h.Position
	capPos := h.Position.Add(h.Offset)

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		ctx.AddCandidate(evt, h.ID, arrowDistance(f.cam(), evt.Mouse, capPos, h.Direction, h.Size))
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartPosition = position
		}
	case core.EventMouseDrag:
		if ctx.IsDragging(evt, h.ID) {
			s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
			dist := core.CalcLineTranslation(f.cam(), s.StartMouse, s.CurrentMouse, s.StartPosition, h.Direction)
			s.Distance = f.snap(dist, h.Snap)
			position = s.StartPosition.Add(h.Direction.Mul(s.Distance))
			evt.Use()
		}
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			position = s.StartPosition
		}
	case core.EventRepaint:
		drawArrow(f, capPos, h.Direction, h.Size, f.color(h.ID, h.Color))
	}
	return position
}

func arrowDistance(cam core.CameraProjector, mouse mgl32.Vec2, pos, dir mgl32.Vec3, size float32) float32 {
	line := core.DistanceToLine(cam, mouse, pos, pos.Add(dir.Mul(size*0.9)))
	cone := core.DistanceToCircle(cam, mouse, pos.Add(dir.Mul(size)), size*0.2)
	return min(line, cone)
}

func drawArrow(f Frame, pos, dir mgl32.Vec3, size float32, c core.Color) {
	d := f.draw()
	d.Line(pos, pos.Add(dir.Mul(size*0.9)), c, f.thickness())
	d.Cone(pos.Add(dir.Mul(size)), core.LookRotation(dir, f.cam().Up()), size*0.2, c)
}

// Slider2D moves a point inside the plane spanned by Dir1 and Dir2. Offset places the
// rectangle cap relative to Position; Size is its half extent.
type Slider2D struct {
	ID       core.HandleID
	Position mgl32.Vec3
	Offset   mgl32.Vec3
	Normal   mgl32.Vec3
	Dir1     mgl32.Vec3
	Dir2     mgl32.Vec3
	Size     float32
	Snap     mgl32.Vec2
	Color    core.Color
}

func (h Slider2D) Do(f Frame, evt *core.Event) mgl32.Vec3 {
	ctx, s := f.Ctx, f.Session
	position := h.Position
	center := h.Position.Add(h.Offset)

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		d := core.DistanceToQuad(f.cam(), evt.Mouse, center, h.Dir1.Mul(h.Size), h.Dir2.Mul(h.Size))
		ctx.AddCandidate(evt, h.ID, d)
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartPosition = position
			s.StartAxis = h.Normal
			anchor, ok := f.planeHit(evt.Mouse, position, h.Normal)
			if !ok {
				anchor = position
			}
			s.StartAnchor = anchor
		}
	case core.EventMouseDrag:
		if ctx.IsDragging(evt, h.ID) {
			s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
			if hit, ok := f.planeHit(s.CurrentMouse, s.StartPosition, s.StartAxis); ok {
				delta := hit.Sub(s.StartAnchor)
				d1 := f.snap(delta.Dot(h.Dir1), h.Snap.X())
				d2 := f.snap(delta.Dot(h.Dir2), h.Snap.Y())
				position = s.StartPosition.Add(h.Dir1.Mul(d1)).Add(h.Dir2.Mul(d2))
			}
			evt.Use()
		}
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			position = s.StartPosition
		}
	case core.EventRepaint:
		f.draw().PolyLine(rectangle(center, h.Dir1.Mul(h.Size), h.Dir2.Mul(h.Size)), f.color(h.ID, h.Color))
	}
	return position
}

// FreeMove drags a point in the camera-facing plane through its start position.
// Size is the half extent of the camera-facing rectangle cap.
type FreeMove struct {
	ID       core.HandleID
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Size     float32
	Snap     mgl32.Vec3
	Color    core.Color
}

func (h FreeMove) Do(f Frame, evt *core.Event) mgl32.Vec3 {
	ctx, s, cam := f.Ctx, f.Session, f.cam()
	position := h.Position

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		d := core.DistanceToQuad(cam, evt.Mouse, position, cam.Right().Mul(h.Size), cam.Up().Mul(h.Size))
		ctx.AddCandidate(evt, h.ID, d)
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			s.StartPosition = position
			s.StartRotation = h.Rotation
			s.StartAxis = cam.Forward()
			anchor, ok := f.planeHit(evt.Mouse, position, s.StartAxis)
			if !ok {
				anchor = position
			}
			s.StartAnchor = anchor
		}
	case core.EventMouseDrag:
		if ctx.IsDragging(evt, h.ID) {
			s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
			if hit, ok := f.planeHit(s.CurrentMouse, s.StartPosition, s.StartAxis); ok {
				local := s.StartRotation.Conjugate().Rotate(hit.Sub(s.StartAnchor))
				for i := 0; i < 3; i++ {
					local[i] = f.snap(local[i], h.Snap[i])
				}
				position = s.StartPosition.Add(s.StartRotation.Rotate(local))
			}
			evt.Use()
		}
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			position = s.StartPosition
		}
	case core.EventRepaint:
		f.draw().PolyLine(rectangle(position, cam.Right().Mul(h.Size), cam.Up().Mul(h.Size)), f.color(h.ID, h.Color))
	}
	return position
}

// rectangle returns the closed outline of center±a±b.
func rectangle(center, a, b mgl32.Vec3) []mgl32.Vec3 {
	return []mgl32.Vec3{
		center.Add(a).Add(b),
		center.Add(a).Sub(b),
		center.Sub(a).Sub(b),
		center.Sub(a).Add(b),
		center.Add(a).Add(b),
	}
}
