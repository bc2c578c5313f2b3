package gizmo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gekko3d/gizmo/handles/core"
)

// hotAxisThreshold is the smallest component change that marks an axis as dragged.
const hotAxisThreshold = 1e-4

// Axes is a set of x, y and z bits.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AxesNone Axes = 0
	AxesAll       = AxisX | AxisY | AxisZ
)

func (a Axes) Has(i int) bool { return a&(1<<uint(i)) != 0 }

func (a Axes) String() string {
	var b strings.Builder
	for i, name := range [3]string{"X", "Y", "Z"} {
		if a.Has(i) {
			b.WriteString(name)
		}
	}
	return b.String()
}

// Indices lists the axes of the set in x, y, z order.
func (a Axes) Indices() []int {
	var out []int
	for i := 0; i < 3; i++ {
		if a.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// anchorAxis is the world axis the fields float next to for a hot-axis set. Plane sets use
// their upper axis so the fields sit above the plane handle.
func anchorAxis(a Axes) (mgl32.Vec3, bool) {
	switch a {
	case AxisX:
		return core.AxisVector(0), true
	case AxisY, AxisX | AxisY, AxesAll:
		return core.AxisVector(1), true
	case AxisZ, AxisX | AxisZ, AxisY | AxisZ:
		return core.AxisVector(2), true
	}
	return mgl32.Vec3{}, false
}

// NumericFields is the text state of the x, y and z fields that float next to the handle.
// The fields shown are the axes changed by the last drag.
type NumericFields struct {
	log core.Logger

	hot    Axes
	start  mgl32.Vec3
	values mgl32.Vec3
	text   [3]string
}

func NewNumericFields(log core.Logger) *NumericFields {
	n := &NumericFields{log: core.LoggerOr(log)}
	n.Show(mgl32.Vec3{})
	return n
}

func (n *NumericFields) HotAxes() Axes { return n.hot }

// Visible lists the fields to show, in axis order.
func (n *NumericFields) Visible() []int { return n.hot.Indices() }

// Reset hides every field, e.g. after a selection change or undo.
func (n *NumericFields) Reset() { n.hot = AxesNone }

// Begin records the value at the start of a drag.
func (n *NumericFields) Begin(v mgl32.Vec3) {
	n.start = v
	n.Show(v)
}

// Track updates the text to v and, once a component moved, the hot-axis set.
func (n *NumericFields) Track(v mgl32.Vec3) {
	var changed Axes
	for i := 0; i < 3; i++ {
		if math.Abs(float64(v[i]-n.start[i])) > hotAxisThreshold {
			changed |= 1 << uint(i)
		}
	}
	if changed != AxesNone {
		n.hot = changed
	}
	n.Show(v)
}

// Show sets the displayed values without touching the hot-axis set.
func (n *NumericFields) Show(v mgl32.Vec3) {
	n.values = v
	for i := range n.text {
		n.text[i] = formatNumber(v[i])
	}
}

func (n *NumericFields) Text(axis int) string   { return n.text[axis] }
func (n *NumericFields) Value(axis int) float32 { return n.values[axis] }

// Submit evaluates text for axis. On failure the field reverts to its last valid value and the
// error wraps ErrInvalidNumber.
func (n *NumericFields) Submit(axis int, text string) (float32, error) {
	if axis < 0 || axis > 2 {
		return 0, fmt.Errorf("axis %d out of range", axis)
	}
	v, err := EvaluateNumber(text)
	if err != nil {
		n.text[axis] = formatNumber(n.values[axis])
		n.log.Warnf("rejected %s field input %q: %v", Axes(1<<uint(axis)), text, err)
		return n.values[axis], err
	}
	n.values[axis] = v
	n.text[axis] = formatNumber(v)
	return v, nil
}

// Anchor is the screen point next to the hot axis tip where the fields are laid out. The offset
// is halved when the camera looks at the handle from behind the origin.
func (n *NumericFields) Anchor(cam core.CameraProjector, handlePos mgl32.Vec3) (mgl32.Vec2, bool) {
	axis, ok := anchorAxis(n.hot)
	if !ok || cam == nil {
		return mgl32.Vec2{}, false
	}
	offset := axis.Mul(cam.HandleSize(handlePos))
	if handlePos.Dot(cam.Position().Sub(handlePos)) < 0 {
		offset = offset.Mul(0.5)
	}
	return cam.WorldToScreen(handlePos.Add(offset)), true
}

func formatNumber(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// EvaluateNumber parses a plain number or evaluates an expression in a sandboxed zygomys
// environment. Prefix forms like "(* 2 1.5)" and infix forms like "2 * 1.5" are accepted.
func EvaluateNumber(text string) (float32, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("empty input: %w", ErrInvalidNumber)
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return finite(text, f)
	}

	src := s
	if !strings.HasPrefix(s, "(") {
		src = "{" + s + "}"
	}
	env := zygo.NewZlispSandbox()
	defer env.Stop()
	if err := env.LoadString(src); err != nil {
		return 0, fmt.Errorf("failed to parse %q: %w: %w", text, ErrInvalidNumber, err)
	}
	res, err := env.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate %q: %w: %w", text, ErrInvalidNumber, err)
	}
	switch v := res.(type) {
	case *zygo.SexpInt:
		return finite(text, float64(v.Val))
	case *zygo.SexpFloat:
		return finite(text, v.Val)
	}
	return 0, fmt.Errorf("%q evaluates to %T: %w", text, res, ErrInvalidNumber)
}

func finite(text string, f float64) (float32, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%q is not finite: %w", text, ErrInvalidNumber)
	}
	return float32(f), nil
}
