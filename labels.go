package gizmo

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gekko3d/gizmo/handles/core"
)

const labelPadding = 2

// LabelFace is the face labels are measured with. Drawers that render labels should use the
// same face so the text fits its box.
var LabelFace font.Face = basicfont.Face7x13

var labelBackground = core.Color{0, 0, 0, 0.5}

// LabelSize is the pixel size of a label box holding text at an integer font scale.
func LabelSize(text string, scale int) mgl32.Vec2 {
	if scale < 1 {
		scale = 1
	}
	var width fixed.Int26_6 = font.MeasureString(LabelFace, text)
	m := LabelFace.Metrics()
	height := m.Ascent + m.Descent
	return mgl32.Vec2{
		float32(width.Ceil()*scale + 2*labelPadding),
		float32(height.Ceil()*scale + 2*labelPadding),
	}
}

// LabelRect places a label box with its top-left corner on the screen image of world.
func LabelRect(cam core.CameraProjector, world mgl32.Vec3, text string, scale int) core.Rect {
	p := cam.WorldToScreen(world)
	return core.Rect{Min: p, Max: p.Add(LabelSize(text, scale))}
}

func (c *Controller) label(world mgl32.Vec3, text string) {
	r := LabelRect(c.svc.Camera, world, text, c.style.FontScale)
	c.svc.Draw.Label(r, text, c.style.TextColor, labelBackground)
}
