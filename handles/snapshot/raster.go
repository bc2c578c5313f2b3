// Package snapshot rasterizes the primitives of one Repaint pass into an image. It is a debug
// drawer: shapes are flat 2D projections without depth testing.
package snapshot

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gekko3d/gizmo/handles/core"
)

const (
	circleSegments = 48
	labelInset     = 2
	minStroke      = 1
)

// Raster implements core.PrimitiveDrawer over an RGBA canvas. Drawing happens at Supersample
// times the output size and Image scales the result down.
type Raster struct {
	Camera core.CameraProjector
	Face   font.Face

	width, height int
	ss            int
	canvas        *image.RGBA
	z             *vector.Rasterizer
}

// New creates a transparent width x height raster. supersample below 1 is treated as 1.
func New(cam core.CameraProjector, width, height, supersample int) *Raster {
	ss := max(supersample, 1)
	r := &Raster{
		Camera: cam,
		Face:   basicfont.Face7x13,
		width:  width,
		height: height,
		ss:     ss,
		canvas: image.NewRGBA(image.Rect(0, 0, width*ss, height*ss)),
		z:      vector.NewRasterizer(width*ss, height*ss),
	}
	return r
}

// Fill paints the whole canvas with c.
func (r *Raster) Fill(c core.Color) {
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
}

// Clear resets the canvas to transparent.
func (r *Raster) Clear() {
	clear(r.canvas.Pix)
}

// Image returns the canvas at output size.
func (r *Raster) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.ss == 1 {
		copy(dst.Pix, r.canvas.Pix)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), r.canvas, r.canvas.Bounds(), draw.Src, nil)
	return dst
}

func toNRGBA(c core.Color) color.NRGBA {
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

// screen projects p into canvas pixels.
func (r *Raster) screen(p mgl32.Vec3) mgl32.Vec2 {
	return r.Camera.WorldToScreen(p).Mul(float32(r.ss))
}

func (r *Raster) screenAll(points []mgl32.Vec3) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(points))
	for i, p := range points {
		out[i] = r.screen(p)
	}
	return out
}

// fill paints the polygon pts in canvas pixels.
func (r *Raster) fill(c core.Color, pts []mgl32.Vec2) {
	if len(pts) < 3 || c[3] <= 0 {
		return
	}
	r.z.Reset(r.canvas.Bounds().Dx(), r.canvas.Bounds().Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(pts[0].X(), pts[0].Y())
	for _, p := range pts[1:] {
		r.z.LineTo(p.X(), p.Y())
	}
	r.z.ClosePath()
	r.z.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{})
}

// stroke paints the segment a-b as a quad width canvas pixels wide.
func (r *Raster) stroke(a, b mgl32.Vec2, width float32, c core.Color) {
	d := b.Sub(a)
	l := d.Len()
	if l < 1e-3 {
		return
	}
	n := mgl32.Vec2{-d.Y(), d.X()}.Mul(max(width, minStroke) * float32(r.ss) / (2 * l))
	r.fill(c, []mgl32.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func (r *Raster) strokePath(pts []mgl32.Vec2, width float32, c core.Color) {
	for i := 1; i < len(pts); i++ {
		r.stroke(pts[i-1], pts[i], width, c)
	}
}

func (r *Raster) Line(a, b mgl32.Vec3, c core.Color, thickness float32) {
	r.stroke(r.screen(a), r.screen(b), thickness, c)
}

// DottedLine alternates dashes and gaps of screenSpaceSize output pixels.
func (r *Raster) DottedLine(a, b mgl32.Vec3, c core.Color, screenSpaceSize float32) {
	sa, sb := r.screen(a), r.screen(b)
	d := sb.Sub(sa)
	l := d.Len()
	dash := max(screenSpaceSize, 1) * float32(r.ss)
	if l < 1e-3 {
		return
	}
	dir := d.Mul(1 / l)
	for t := float32(0); t < l; t += 2 * dash {
		end := min(t+dash, l)
		r.stroke(sa.Add(dir.Mul(t)), sa.Add(dir.Mul(end)), minStroke, c)
	}
}

func arcSegments(angle float32) int {
	n := int(math.Ceil(float64(abs32(angle)) / 360 * circleSegments))
	return max(n, 2) + 1
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func (r *Raster) WireArc(center, normal, from mgl32.Vec3, angle, radius float32, c core.Color, thickness float32) {
	pts := core.DiscSectionPoints(center, normal, from, angle, radius, arcSegments(angle))
	r.strokePath(r.screenAll(pts), thickness, c)
}

func (r *Raster) WireDisc(center, normal mgl32.Vec3, radius float32, c core.Color, thickness float32) {
	r.WireArc(center, normal, core.DiscTangent(normal), 360, radius, c, thickness)
}

func (r *Raster) SolidDisc(center, normal mgl32.Vec3, radius float32, c core.Color) {
	pts := core.DiscSectionPoints(center, normal, core.DiscTangent(normal), 360, radius, circleSegments)
	r.fill(c, r.screenAll(pts))
}

func (r *Raster) SolidArc(center, normal, from mgl32.Vec3, angle, radius float32, c core.Color) {
	pts := core.DiscSectionPoints(center, normal, from, angle, radius, arcSegments(angle))
	r.fill(c, append([]mgl32.Vec2{r.screen(center)}, r.screenAll(pts)...))
}

func (r *Raster) PolyLine(points []mgl32.Vec3, c core.Color) {
	r.strokePath(r.screenAll(points), minStroke, c)
}

func (r *Raster) SolidRectangle(verts [4]mgl32.Vec3, face, outline core.Color) {
	pts := r.screenAll(verts[:])
	r.fill(face, pts)
	r.strokePath(append(pts, pts[0]), minStroke, outline)
}

var cubeFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}}},
}

// viewDir is the direction from the camera towards p.
func (r *Raster) viewDir(p mgl32.Vec3) mgl32.Vec3 {
	if r.Camera.Orthographic() {
		return r.Camera.Forward()
	}
	return p.Sub(r.Camera.Position())
}

// Cube fills the faces turned towards the camera; they never overlap on screen.
func (r *Raster) Cube(center mgl32.Vec3, rotation mgl32.Quat, size float32, c core.Color) {
	half := size / 2
	view := r.viewDir(center)
	for _, f := range cubeFaces {
		if rotation.Rotate(f.normal).Dot(view) >= 0 {
			continue
		}
		pts := make([]mgl32.Vec2, 4)
		for i, corner := range f.corners {
			pts[i] = r.screen(center.Add(rotation.Rotate(corner.Mul(half))))
		}
		r.fill(c, pts)
	}
}

// Sphere fills the screen circle of a sphere of diameter size.
func (r *Raster) Sphere(center mgl32.Vec3, size float32, c core.Color) {
	sc := r.screen(center)
	rad := r.screen(center.Add(r.Camera.Right().Mul(size / 2))).Sub(sc).Len()
	if rad < 0.5 {
		rad = 0.5
	}
	pts := make([]mgl32.Vec2, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = sc.Add(mgl32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}.Mul(rad))
	}
	r.fill(c, pts)
}

// Cone points along the +Z of rotation. center is the middle of a cone of height size.
func (r *Raster) Cone(center mgl32.Vec3, rotation mgl32.Quat, size float32, c core.Color) {
	axis := rotation.Rotate(mgl32.Vec3{0, 0, 1})
	apex := center.Add(axis.Mul(size * 0.7))
	base := center.Sub(axis.Mul(size * 0.3))
	ring := core.DiscSectionPoints(base, axis, rotation.Rotate(mgl32.Vec3{1, 0, 0}), 360, size*0.5, circleSegments)
	ringPts := r.screenAll(ring)
	r.fill(c, ringPts)
	sa := r.screen(apex)
	for i := 1; i < len(ringPts); i++ {
		r.fill(c, []mgl32.Vec2{sa, ringPts[i-1], ringPts[i]})
	}
}

// Label fills rect with bg and scales the text to the rect height minus the inset.
func (r *Raster) Label(rect core.Rect, text string, fg, bg core.Color) {
	ss := float32(r.ss)
	lo, hi := rect.Min.Mul(ss), rect.Max.Mul(ss)
	r.fill(bg, []mgl32.Vec2{lo, {hi.X(), lo.Y()}, hi, {lo.X(), hi.Y()}})
	if text == "" {
		return
	}

	m := r.Face.Metrics()
	w := font.MeasureString(r.Face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(toNRGBA(fg)),
		Face: r.Face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	inset := labelInset * ss
	target := image.Rect(
		int(lo.X()+inset), int(lo.Y()+inset),
		int(hi.X()-inset), int(hi.Y()-inset),
	)
	if target.Empty() {
		return
	}
	draw.NearestNeighbor.Scale(r.canvas, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}

var _ core.PrimitiveDrawer = (*Raster)(nil)
