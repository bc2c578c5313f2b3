package core

import "github.com/go-gl/mathgl/mgl32"

type PrimitiveKind int

const (
	PrimitiveLine PrimitiveKind = iota
	PrimitiveDottedLine
	PrimitiveWireArc
	PrimitiveWireDisc
	PrimitiveSolidDisc
	PrimitiveSolidArc
	PrimitivePolyLine
	PrimitiveRect
	PrimitiveCube
	PrimitiveSphere
	PrimitiveCone
	PrimitiveLabel
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveLine:
		return "line"
	case PrimitiveDottedLine:
		return "dotted-line"
	case PrimitiveWireArc:
		return "wire-arc"
	case PrimitiveWireDisc:
		return "wire-disc"
	case PrimitiveSolidDisc:
		return "solid-disc"
	case PrimitiveSolidArc:
		return "solid-arc"
	case PrimitivePolyLine:
		return "polyline"
	case PrimitiveRect:
		return "rect"
	case PrimitiveCube:
		return "cube"
	case PrimitiveSphere:
		return "sphere"
	case PrimitiveCone:
		return "cone"
	case PrimitiveLabel:
		return "label"
	}
	return "unknown"
}

// Primitive is one recorded draw call.
// For Line: P1 is Start, P2 is End. For arcs and discs: P1 is the center, Normal the axis
// and P2 the start direction.
type Primitive struct {
	Kind      PrimitiveKind
	Color     Color
	Outline   Color
	P1, P2    mgl32.Vec3
	Normal    mgl32.Vec3
	Rotation  mgl32.Quat
	Points    []mgl32.Vec3
	Angle     float32
	Size      float32
	Thickness float32
	Rect      Rect
	Text      string
}

// DrawList is a PrimitiveDrawer that records every call of a frame.
type DrawList struct {
	Items []Primitive
}

func NewDrawList() *DrawList {
	return &DrawList{}
}

func (d *DrawList) Reset() { d.Items = d.Items[:0] }

// Count returns how many primitives of kind were recorded.
func (d *DrawList) Count(kind PrimitiveKind) int {
	n := 0
	for _, it := range d.Items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the primitives of kind in draw order.
func (d *DrawList) Filter(kind PrimitiveKind) []Primitive {
	var out []Primitive
	for _, it := range d.Items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

func (d *DrawList) add(p Primitive) { d.Items = append(d.Items, p) }

func (d *DrawList) Line(a, b mgl32.Vec3, c Color, thickness float32) {
	d.add(Primitive{Kind: PrimitiveLine, P1: a, P2: b, Color: c, Thickness: thickness})
}

func (d *DrawList) DottedLine(a, b mgl32.Vec3, c Color, screenSpaceSize float32) {
	d.add(Primitive{Kind: PrimitiveDottedLine, P1: a, P2: b, Color: c, Size: screenSpaceSize})
}

func (d *DrawList) WireArc(center, normal, from mgl32.Vec3, angle, radius float32, c Color, thickness float32) {
	d.add(Primitive{Kind: PrimitiveWireArc, P1: center, Normal: normal, P2: from, Angle: angle, Size: radius, Color: c, Thickness: thickness})
}

func (d *DrawList) WireDisc(center, normal mgl32.Vec3, radius float32, c Color, thickness float32) {
	d.add(Primitive{Kind: PrimitiveWireDisc, P1: center, Normal: normal, Size: radius, Color: c, Thickness: thickness})
}

func (d *DrawList) SolidDisc(center, normal mgl32.Vec3, radius float32, c Color) {
	d.add(Primitive{Kind: PrimitiveSolidDisc, P1: center, Normal: normal, Size: radius, Color: c})
}

func (d *DrawList) SolidArc(center, normal, from mgl32.Vec3, angle, radius float32, c Color) {
	d.add(Primitive{Kind: PrimitiveSolidArc, P1: center, Normal: normal, P2: from, Angle: angle, Size: radius, Color: c})
}

func (d *DrawList) PolyLine(points []mgl32.Vec3, c Color) {
	pts := make([]mgl32.Vec3, len(points))
	copy(pts, points)
	d.add(Primitive{Kind: PrimitivePolyLine, Points: pts, Color: c})
}

func (d *DrawList) SolidRectangle(verts [4]mgl32.Vec3, face, outline Color) {
	d.add(Primitive{Kind: PrimitiveRect, Points: verts[:], Color: face, Outline: outline})
}

func (d *DrawList) Cube(center mgl32.Vec3, rotation mgl32.Quat, size float32, c Color) {
	d.add(Primitive{Kind: PrimitiveCube, P1: center, Rotation: rotation, Size: size, Color: c})
}

func (d *DrawList) Sphere(center mgl32.Vec3, size float32, c Color) {
	d.add(Primitive{Kind: PrimitiveSphere, P1: center, Size: size, Color: c})
}

func (d *DrawList) Cone(center mgl32.Vec3, rotation mgl32.Quat, size float32, c Color) {
	d.add(Primitive{Kind: PrimitiveCone, P1: center, Rotation: rotation, Size: size, Color: c})
}

func (d *DrawList) Label(rect Rect, text string, fg, bg Color) {
	d.add(Primitive{Kind: PrimitiveLabel, Rect: rect, Text: text, Color: fg, Outline: bg})
}

// Replay sends the recorded primitives to another drawer.
func (d *DrawList) Replay(to PrimitiveDrawer) {
	for _, p := range d.Items {
		switch p.Kind {
		case PrimitiveLine:
			to.Line(p.P1, p.P2, p.Color, p.Thickness)
		case PrimitiveDottedLine:
			to.DottedLine(p.P1, p.P2, p.Color, p.Size)
		case PrimitiveWireArc:
			to.WireArc(p.P1, p.Normal, p.P2, p.Angle, p.Size, p.Color, p.Thickness)
		case PrimitiveWireDisc:
			to.WireDisc(p.P1, p.Normal, p.Size, p.Color, p.Thickness)
		case PrimitiveSolidDisc:
			to.SolidDisc(p.P1, p.Normal, p.Size, p.Color)
		case PrimitiveSolidArc:
			to.SolidArc(p.P1, p.Normal, p.P2, p.Angle, p.Size, p.Color)
		case PrimitivePolyLine:
			to.PolyLine(p.Points, p.Color)
		case PrimitiveRect:
			var v [4]mgl32.Vec3
			copy(v[:], p.Points)
			to.SolidRectangle(v, p.Color, p.Outline)
		case PrimitiveCube:
			to.Cube(p.P1, p.Rotation, p.Size, p.Color)
		case PrimitiveSphere:
			to.Sphere(p.P1, p.Size, p.Color)
		case PrimitiveCone:
			to.Cone(p.P1, p.Rotation, p.Size, p.Color)
		case PrimitiveLabel:
			to.Label(p.Rect, p.Text, p.Color, p.Outline)
		}
	}
}
