package core

import (
	"github.com/tanema/gween/ease"
)

// Style holds the colors and sizes shared by all composites of a controller. Setters on the
// controller mutate it; the next frame picks the change up.
type Style struct {
	XAxisColor        Color
	YAxisColor        Color
	ZAxisColor        Color
	CenterColor       Color
	SelectedColor     Color
	PreselectionColor Color
	DisabledColor     Color
	StaticColor       Color
	StaticBlend       float32

	ActiveAxisColor           Color
	PlaneColor                Color
	DottedAxisColor           Color
	TextColor                 Color
	ConstrainProportionsColor Color

	FontScale       int
	UnitSnapSpacing float32
	LineThickness   float32

	// MarkerFade shapes the alpha falloff of rotation snap markers.
	MarkerFade ease.TweenFunc
}

func DefaultStyle() *Style {
	return &Style{
		XAxisColor:        Color{219 / 255.0, 62 / 255.0, 29 / 255.0, 0.93},
		YAxisColor:        Color{154 / 255.0, 243 / 255.0, 72 / 255.0, 0.93},
		ZAxisColor:        Color{58 / 255.0, 122 / 255.0, 248 / 255.0, 0.93},
		CenterColor:       Color{0.8, 0.8, 0.8, 0.93},
		SelectedColor:     Color{246 / 255.0, 242 / 255.0, 50 / 255.0, 0.89},
		PreselectionColor: Color{201 / 255.0, 200 / 255.0, 144 / 255.0, 0.89},
		DisabledColor:     Color{0.5, 0.5, 0.5, 0.5},
		StaticColor:       Color{0.5, 0.5, 0.5, 0},
		StaticBlend:       0.6,

		ActiveAxisColor:           Color{0.44, 0.737, 0.83, 1},
		PlaneColor:                Color{0.44, 0.737, 0.83, 0.3},
		DottedAxisColor:           Color{0.44, 0.737, 0.83, 0.5},
		TextColor:                 Color{1, 1, 1, 1},
		ConstrainProportionsColor: Color{190 / 255.0, 190 / 255.0, 190 / 255.0, 1},

		FontScale:       2,
		UnitSnapSpacing: 4,
		LineThickness:   1,
		MarkerFade:      ease.InOutSine,
	}
}

func (s *Style) AxisColor(i int) Color {
	switch i {
	case 0:
		return s.XAxisColor
	case 1:
		return s.YAxisColor
	case 2:
		return s.ZAxisColor
	}
	return s.CenterColor
}

// RotationPieColor fills the swept sector of a rotation drag.
func (s *Style) RotationPieColor() Color {
	return s.PlaneColor.WithAlpha(1)
}

// Fade applies the ease curve to x in [0,1].
func (s *Style) Fade(x float32) float32 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if s.MarkerFade == nil {
		return x * x * (3 - 2*x)
	}
	return s.MarkerFade(x, 0, 1, 1)
}

// FadedAxisColor lerps col towards transparent by fade, except for the hot or hovered handle.
func (s *Style) FadedAxisColor(ctx *Context, col Color, fade float32, id HandleID) Color {
	if id != 0 && (id == ctx.Hot() || id == ctx.Nearest()) {
		fade = 0
	}
	return col.Lerp(Color{}, fade)
}
