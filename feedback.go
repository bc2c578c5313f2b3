package gizmo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

const (
	markerScale    = 0.15
	tickScale      = 0.1
	guideLength    = 50
	guideDashSize  = 5
	arcThickness   = 3
	maxTicks       = 256
	maxGridMarkers = 64
	maxScaleArcs   = 128
)

var feedbackWhite = core.Color{1, 1, 1, 1}

// drawFeedback draws the guides of the live gesture around current.
func (c *Controller) drawFeedback(current core.Transform) {
	if c.svc.Draw == nil || c.svc.Camera == nil {
		return
	}
	switch c.active.mode {
	case ModeTranslate:
		c.translateFeedback(c.active.start.Position, current)
	case ModeRotate:
		c.rotateFeedback(current)
	case ModeScale:
		c.scaleFeedback(current)
	}
}

func (c *Controller) snapActive() bool {
	return c.svc.Snap != nil && c.svc.Snap.IncrementalSnapActive()
}

func (c *Controller) moveSnap() mgl32.Vec3 {
	if c.svc.Snap == nil {
		return mgl32.Vec3{}
	}
	return c.svc.Snap.Move()
}

// changedAxes reports which components differ between a and b.
func changedAxes(a, b mgl32.Vec3) (axes [3]bool, n int) {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			axes[i] = true
			n++
		}
	}
	return axes, n
}

// changedOffset is the travel along the single changed axis, or the full distance otherwise.
func changedOffset(a, b mgl32.Vec3) float32 {
	axes, n := changedAxes(a, b)
	if n == 1 {
		for i, ok := range axes {
			if ok {
				return float32(math.Abs(float64(a[i] - b[i])))
			}
		}
	}
	return a.Sub(b).Len()
}

func (c *Controller) translateFeedback(start mgl32.Vec3, current core.Transform) {
	draw, cam, style := c.svc.Draw, c.svc.Camera, c.style
	pos := current.Position
	axes, n := changedAxes(start, pos)
	if n == 0 {
		return
	}

	markerSize := cam.HandleSize(start) * markerScale
	draw.Line(start, pos, style.ActiveAxisColor, style.LineThickness)
	draw.Sphere(start, markerSize, style.ActiveAxisColor)
	draw.Sphere(pos, markerSize, style.ActiveAxisColor)

	switch n {
	case 1:
		axis := 0
		for i, ok := range axes {
			if ok {
				axis = i
			}
		}
		c.axisGuide(start, pos, axis, current.Rotation)
	case 2:
		c.planeGuide(start, pos, axes, markerSize)
	case 3:
		c.freeGuide(start, pos)
	}
	c.label(pos, fmt.Sprintf("%.2f", changedOffset(start, pos)))
}

// axisGuide draws the dotted direction guide and, while snapping, a tick every
// UnitSnapSpacing move steps.
func (c *Controller) axisGuide(start, pos mgl32.Vec3, axis int, rotation mgl32.Quat) {
	draw, cam, style := c.svc.Draw, c.svc.Camera, c.style
	dir := pos.Sub(start)
	unit := core.Normalize(dir, mgl32.Vec3{})
	draw.DottedLine(start, start.Add(unit.Mul(guideLength)), style.DottedAxisColor, guideDashSize)

	if !c.snapActive() {
		return
	}
	step := c.moveSnap()[axis] * style.UnitSnapSpacing
	if step <= 0 {
		return
	}
	count := min(int(dir.Len()/step), maxTicks)
	tickDir := rotation.Rotate(core.AxisVector(0))
	if axis == 0 {
		tickDir = rotation.Rotate(core.AxisVector(2))
	}
	half := tickDir.Mul(cam.HandleSize(start) * tickScale)
	for i := 1; i <= count; i++ {
		p := start.Add(unit.Mul(float32(i) * step))
		draw.Line(p.Add(half), p.Sub(half), style.ActiveAxisColor, style.LineThickness)
	}
}

// planeGuide fills the rectangle spanned by the two changed axes and, while snapping, lays a
// marker grid over it.
func (c *Controller) planeGuide(start, pos mgl32.Vec3, axes [3]bool, markerSize float32) {
	draw, style := c.svc.Draw, c.style
	var pair []int
	for i, ok := range axes {
		if ok {
			pair = append(pair, i)
		}
	}
	a1, a2 := pair[0], pair[1]

	p2, p4 := start, start
	p2[a1] = pos[a1]
	p4[a2] = pos[a2]

	if c.snapActive() {
		move := c.moveSnap()
		off1 := move[a1] * style.UnitSnapSpacing
		off2 := move[a2] * style.UnitSnapSpacing
		if off1 > 0 && off2 > 0 {
			n1, s1 := gridCount(pos[a1]-start[a1], off1)
			n2, s2 := gridCount(pos[a2]-start[a2], off2)
			for i := -1; i <= n1; i++ {
				for j := -1; j <= n2; j++ {
					p := start
					p[a1] += s1 * off1 * float32(i)
					p[a2] += s2 * off2 * float32(j)
					draw.Sphere(p, markerSize, style.PlaneColor)
				}
			}
		}
	}
	draw.SolidRectangle([4]mgl32.Vec3{start, p2, pos, p4}, style.PlaneColor, style.PlaneColor)
}

// gridCount is the number of snap steps covered by delta and its direction.
func gridCount(delta, offset float32) (int, float32) {
	n := int(math.Round(math.Abs(float64(delta / offset))))
	return min(n, maxGridMarkers), core.Sign(delta)
}

// freeGuide draws the XZ footprint of the move and the XY wall above it.
func (c *Controller) freeGuide(start, pos mgl32.Vec3) {
	draw, col := c.svc.Draw, c.style.PlaneColor
	floor := [4]mgl32.Vec3{
		start,
		{pos.X(), start.Y(), start.Z()},
		{pos.X(), start.Y(), pos.Z()},
		{start.X(), start.Y(), pos.Z()},
	}
	draw.SolidRectangle(floor, col, col)
	wall := [4]mgl32.Vec3{
		{pos.X(), start.Y(), pos.Z()},
		pos,
		{start.X(), pos.Y(), pos.Z()},
		{start.X(), start.Y(), pos.Z()},
	}
	draw.SolidRectangle(wall, col, col)
}

// rotateFeedback draws the radius from the center to the dragged angle and labels it.
func (c *Controller) rotateFeedback(current core.Transform) {
	idx := c.rotation.HotIndex(c.ctx)
	if idx < 0 || idx > 3 {
		// free rotation has no grabbed point on a circle
		return
	}
	s := c.rotation.Session()
	pos := current.Position
	from := s.StartAnchor.Sub(pos)
	dist := s.Distance
	d := -core.Sign(dist) * core.Repeat(float32(math.Abs(float64(dist))), 360)
	to := core.AngleAxis(d, s.StartAxis).Rotate(from)

	c.svc.Draw.Line(pos, pos.Add(to), feedbackWhite, c.style.LineThickness)
	c.label(pos.Add(to), fmt.Sprintf("%.2f", dist))
}

// scaleFeedback labels the uniform multiplier and draws camera-facing arcs, two per unit of
// multiplier, spaced by the start scale.
func (c *Controller) scaleFeedback(current core.Transform) {
	draw, cam, style := c.svc.Draw, c.svc.Camera, c.style
	h := c.scale
	pos := current.Position
	c.label(pos, fmt.Sprintf("%.2f", h.Multiplier))

	spacing := h.InitialScale.Len()
	arcs := min(int(h.Multiplier)*2, maxScaleArcs)
	boundsRadius := float32(-1)
	if c.bounds != nil {
		boundsRadius = c.bounds.BoundsSize().Len() / 2
	}
	for i := 1; i < arcs; i++ {
		col := style.ActiveAxisColor
		radius := spacing * float32(i)
		if boundsRadius >= 0 && radius > boundsRadius-0.2 && radius <= boundsRadius+0.8 {
			col = feedbackWhite
		}
		draw.WireArc(pos, cam.Forward(), cam.Right(), 30+float32(i)*5, radius, col, arcThickness)
	}
}
