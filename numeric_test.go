package gizmo

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/handles/core"
)

func TestEvaluateNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float32
		err  bool
	}{
		{in: "2.5", want: 2.5},
		{in: "  -3 ", want: -3},
		{in: "1e3", want: 1000},
		{in: "(+ 1 2)", want: 3},
		{in: "(* 2 1.5)", want: 3},
		{in: "", err: true},
		{in: "NaN", err: true},
		{in: "abc", err: true},
		{in: "(+ 1", err: true},
		{in: `"text"`, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := EvaluateNumber(tt.in)
			if tt.err {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidNumber), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestNumericFields_HotAxes(t *testing.T) {
	n := NewNumericFields(nil)
	n.Begin(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, AxesNone, n.HotAxes())
	assert.Empty(t, n.Visible())

	steps := []struct {
		v    mgl32.Vec3
		want Axes
	}{
		{v: mgl32.Vec3{1.00005, 2, 3}, want: AxesNone},
		{v: mgl32.Vec3{1.5, 2, 3}, want: AxisX},
		{v: mgl32.Vec3{1.5, 2, 3.5}, want: AxisX | AxisZ},
		{v: mgl32.Vec3{1, 2, 3}, want: AxisX | AxisZ},
		{v: mgl32.Vec3{0, 0, 0}, want: AxesAll},
	}
	for _, s := range steps {
		n.Track(s.v)
		assert.Equal(t, s.want, n.HotAxes(), "after %v", s.v)
	}
	assert.Equal(t, []int{0, 1, 2}, n.Visible())
	assert.Equal(t, "0", n.Text(1))

	n.Reset()
	assert.Equal(t, AxesNone, n.HotAxes())
}

func TestAxes_String(t *testing.T) {
	assert.Equal(t, "X", AxisX.String())
	assert.Equal(t, "XZ", (AxisX | AxisZ).String())
	assert.Equal(t, "YZ", (AxisY | AxisZ).String())
	assert.Equal(t, "XYZ", AxesAll.String())
	assert.Equal(t, "", AxesNone.String())
}

func TestNumericFields_SubmitKeepsLastValid(t *testing.T) {
	n := NewNumericFields(nil)
	n.Show(mgl32.Vec3{1, 2, 3})

	v, err := n.Submit(2, "(+ 4 0.5)")
	require.NoError(t, err)
	assert.Equal(t, float32(4.5), v)
	assert.Equal(t, "4.5", n.Text(2))

	v, err = n.Submit(2, "four")
	assert.True(t, errors.Is(err, ErrInvalidNumber))
	assert.Equal(t, float32(4.5), v)
	assert.Equal(t, "4.5", n.Text(2))
	assert.Equal(t, float32(4.5), n.Value(2))

	_, err = n.Submit(5, "1")
	assert.Error(t, err)
}

func TestNumericFields_Anchor(t *testing.T) {
	cam := core.NewOrthographicCamera(800, 600, 3, mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	tests := []struct {
		name   string
		hot    mgl32.Vec3
		handle mgl32.Vec3
		want   mgl32.Vec2
	}{
		{name: "x tip", hot: mgl32.Vec3{1, 0, 0}, want: mgl32.Vec2{480, 300}},
		{name: "xy plane uses y", hot: mgl32.Vec3{1, 1, 0}, want: mgl32.Vec2{400, 220}},
		{name: "free move uses y", hot: mgl32.Vec3{1, 1, 1}, want: mgl32.Vec2{400, 220}},
		{name: "behind the origin halves the offset", hot: mgl32.Vec3{1, 0, 0}, handle: mgl32.Vec3{0, 0, 11}, want: mgl32.Vec2{440, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNumericFields(nil)
			n.Begin(mgl32.Vec3{})
			n.Track(tt.hot)
			p, ok := n.Anchor(cam, tt.handle)
			require.True(t, ok)
			assert.InDelta(t, tt.want.X(), p.X(), 1e-3)
			assert.InDelta(t, tt.want.Y(), p.Y(), 1e-3)
		})
	}
}
