package drag

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

const (
	maxSnapMarkers         = 360 / 5
	snapMajorMarkerStep    = 45
	snapMarkerSize         = 0.1
	snapMajorMarkerSize    = 0.2
	discGrabZoneScale      = 0.3
	discDegreesPerSizeUnit = 30
)

// Disc rotates around Axis by dragging along the circle of radius Size. With CutoffPlane only
// the half facing the camera is drawn and hit-tested.
type Disc struct {
	ID       core.HandleID
	Rotation mgl32.Quat
	Position mgl32.Vec3
	Axis     mgl32.Vec3
	Size     float32
	Snap     float32

	CutoffPlane   bool
	EnableRayDrag bool
	ShowHotArc    bool

	Color     core.Color
	FillColor core.Color
}

func (h Disc) Do(f Frame, evt *core.Event) mgl32.Quat {
	ctx, s, cam := f.Ctx, f.Session, f.cam()
	rotation := h.Rotation
	camForward := cam.Forward()

	cutoff := h.CutoffPlane
	if abs(camForward.Dot(h.Axis)) > 0.999 {
		cutoff = false
	}
	halfFrom := core.Normalize(h.Axis.Cross(camForward), core.DiscTangent(h.Axis))

	switch evt.TypeFor() {
	case core.EventLayout, core.EventMouseMove:
		var d float32
		if cutoff {
			d = core.DistanceToArc(cam, evt.Mouse, h.Position, h.Axis, halfFrom, 180, h.Size)
		} else {
			d = core.DistanceToDisc(cam, evt.Mouse, h.Position, h.Axis, h.Size)
		}
		ctx.AddCandidate(evt, h.ID, d*discGrabZoneScale)
	case core.EventMouseDown:
		if ctx.TryCapture(evt, h.ID) {
			s.begin(ctx, h.ID, evt.Mouse)
			if cutoff {
				s.StartAnchor = core.ClosestPointToArc(cam, evt.Mouse, h.Position, h.Axis, halfFrom, 180, h.Size)
			} else {
				s.StartAnchor = core.ClosestPointToDisc(cam, evt.Mouse, h.Position, h.Axis, h.Size)
			}
			s.StartPosition = h.Position
			s.StartRotation = rotation
			s.StartAxis = h.Axis
			s.Distance = 0
		}
	case core.EventMouseDrag:
		if !ctx.IsDragging(evt, h.ID) {
			break
		}
		s.CurrentMouse = s.CurrentMouse.Add(evt.Delta)
		if evt.Action() && evt.Shift() && h.EnableRayDrag && f.Svc.Ray != nil {
			if r, ok := h.lookAtHit(f, s.CurrentMouse, rotation); ok {
				rotation = r
			}
		} else {
			direction := core.Normalize(h.Axis.Cross(h.Position.Sub(s.StartAnchor)), mgl32.Vec3{})
			dist := float32(0)
			if h.Size != 0 {
				dist = core.CalcLineTranslation(cam, s.StartMouse, s.CurrentMouse, s.StartAnchor, direction) / h.Size * discDegreesPerSizeUnit
			}
			s.Distance = f.snap(dist, h.Snap)
			rotation = core.AngleAxis(-s.Distance, s.StartAxis).Mul(s.StartRotation)
		}
		evt.Use()
	case core.EventMouseUp:
		ctx.TryRelease(evt, h.ID)
	case core.EventKeyDown:
		if ctx.TryCancel(evt, h.ID) {
			rotation = s.StartRotation
		}
	case core.EventRepaint:
		h.repaint(f, cutoff, halfFrom)
	}
	return rotation
}

// lookAtHit turns the forward axis towards the scene point under the pointer, projected onto
// the rotation plane.
func (h Disc) lookAtHit(f Frame, mouse mgl32.Vec2, rotation mgl32.Quat) (mgl32.Quat, bool) {
	axis := core.Normalize(h.Axis, mgl32.Vec3{})
	if axis.Dot(rotation.Rotate(mgl32.Vec3{0, 0, 1})) >= 0.999 {
		return rotation, false
	}
	origin, dir := f.cam().ScreenToWorldRay(mouse)
	hit, ok := f.Svc.Ray.Raycast(origin, dir)
	if !ok {
		return rotation, false
	}
	look := hit.Sub(h.Position)
	projected := look.Sub(axis.Mul(look.Dot(axis)))
	if projected.Len() < 1e-6 {
		return rotation, false
	}
	return core.LookRotation(projected, rotation.Rotate(mgl32.Vec3{0, 1, 0})), true
}

func (h Disc) repaint(f Frame, cutoff bool, halfFrom mgl32.Vec3) {
	ctx, s, d := f.Ctx, f.Session, f.draw()
	color := f.color(h.ID, h.Color)
	hot := ctx.Hot() == h.ID && s.Handle == h.ID

	if hot {
		from := core.Normalize(s.StartAnchor.Sub(h.Position), halfFrom)
		d.Line(h.Position, h.Position.Add(from.Mul(h.Size)), h.FillColor, f.thickness())
		angle := -core.Sign(s.Distance) * core.Repeat(abs(s.Distance), 360)
		to := core.AngleAxis(angle, h.Axis).Rotate(from)
		d.Line(h.Position, h.Position.Add(to.Mul(h.Size)), h.FillColor, f.thickness())

		fill := h.FillColor.MulAlpha(0.2)
		revolutions := int(abs(s.Distance) / 360)
		for i := 0; i < revolutions; i++ {
			d.SolidDisc(h.Position, h.Axis, h.Size, fill)
		}
		d.SolidArc(h.Position, h.Axis, from, angle, h.Size, fill)

		if f.snapActive() && h.Snap > 0 {
			h.snapMarkers(f, snapMarkerSize, h.Snap, from)
			h.snapMarkers(f, snapMajorMarkerSize, snapMajorMarkerStep, from)
		}
	}

	switch {
	case h.ShowHotArc && hot, !hot && !cutoff:
		d.WireDisc(h.Position, h.Axis, h.Size, color, f.thickness())
	case !hot && cutoff:
		d.WireArc(h.Position, h.Axis, halfFrom, 180, h.Size, color, f.thickness())
	}
}

// snapMarkers draws radial ticks every step degrees around from, fading out towards the ends
// when there are more than maxSnapMarkers of them.
func (h Disc) snapMarkers(f Frame, markerSize, step float32, from mgl32.Vec3) {
	iterations := int(math.Floor(float64(360 / step)))
	fading := iterations > maxSnapMarkers
	limited := min(iterations, maxSnapMarkers)
	count := int(math.Round(float64(limited) * 0.5))

	color := f.Style.ActiveAxisColor
	for i := -count; i < count; i++ {
		u := core.AngleAxis(float32(i)*step, h.Axis).Rotate(from)
		start := h.Position.Add(u.Mul((1 - markerSize) * h.Size))
		end := h.Position.Add(u.Mul(h.Size))
		if fading && limited > 1 {
			x := abs(float32(i)/float32(limited-1)-0.5) * 2
			color = color.WithAlpha(1 - f.Style.Fade(x))
		}
		f.draw().Line(start, end, color, f.thickness())
	}
}
