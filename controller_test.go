package gizmo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/gizmo/handles/core"
)

// host plays the role of the editor: it owns the target and applies every result.
type host struct {
	cam    *core.Camera
	snap   *core.StaticSnap
	draw   *core.DrawList
	sink   *ChangeLog
	c      *Controller
	target core.Transform
}

// newHost looks along -Z with 100 pixels per unit and the world origin at (400,300).
func newHost(opts ...Option) *host {
	h := &host{
		cam:    core.NewOrthographicCamera(800, 600, 3, mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}),
		snap:   core.DefaultSnap(),
		draw:   core.NewDrawList(),
		sink:   &ChangeLog{},
		target: core.NewTransform(),
	}
	svc := core.Services{Camera: h.cam, Draw: h.draw, Snap: h.snap}
	h.c = NewController(svc, append([]Option{WithSink(h.sink)}, opts...)...)
	h.c.Context().Strict = true
	return h
}

func (h *host) send(evt core.Event) Result {
	if evt.Type == core.EventRepaint {
		h.draw.Reset()
	}
	res := h.c.Handle(&evt, h.target)
	h.target = res.Transform
	return res
}

// grab hovers p and presses the left button on it.
func (h *host) grab(t *testing.T, p mgl32.Vec2) {
	t.Helper()
	h.send(core.Event{Type: core.EventLayout, Mouse: p})
	res := h.send(core.Event{Type: core.EventMouseDown, Mouse: p, Button: core.MouseLeft})
	require.True(t, res.Dragging, "nothing captured at %v", p)
}

func (h *host) dragBy(p, d mgl32.Vec2) Result {
	return h.send(core.Event{Type: core.EventMouseDrag, Mouse: p.Add(d), Delta: d})
}

func (h *host) release(p mgl32.Vec2) Result {
	return h.send(core.Event{Type: core.EventMouseUp, Mouse: p, Button: core.MouseLeft})
}

func (h *host) labels() []string {
	var out []string
	for _, p := range h.draw.Filter(core.PrimitiveLabel) {
		out = append(out, p.Text)
	}
	return out
}

func TestController_TranslateCommitsOnce(t *testing.T) {
	h := newHost()
	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)
	assert.Empty(t, h.sink.Changes)

	h.dragBy(mouse, mgl32.Vec2{237, 0})
	res := h.dragBy(mouse.Add(mgl32.Vec2{237, 0}), mgl32.Vec2{10, 0})
	assert.True(t, res.Changed)
	assert.InDelta(t, 2.47, h.target.Position.X(), 1e-4)
	assert.Zero(t, h.target.Position.Y())

	res = h.release(mouse.Add(mgl32.Vec2{247, 0}))
	assert.False(t, res.Dragging)
	assert.Equal(t, []Phase{PhaseDrag, PhaseDrag, PhaseCommit}, h.sink.Phases())

	commit, ok := h.sink.Last()
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, commit.Gesture)
	for _, c := range h.sink.Changes {
		assert.Equal(t, commit.Gesture, c.Gesture)
		assert.Equal(t, ModeTranslate, c.Mode)
		assert.Equal(t, h.c.PositionHandle().IDs.X, c.Handle)
		assert.Equal(t, core.NewTransform(), c.Start)
	}
	assert.InDelta(t, 2.47, commit.Value.Position.X(), 1e-4)

	assert.Equal(t, AxisX, h.c.Fields().HotAxes())
	assert.InDelta(t, 2.47, h.c.Fields().Value(0), 1e-4)
}

func TestController_ReleaseCommitsUnappliedDrag(t *testing.T) {
	h := newHost()
	start := h.target
	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)

	move := core.Event{Type: core.EventMouseDrag, Mouse: mouse.Add(mgl32.Vec2{200, 0}), Delta: mgl32.Vec2{200, 0}}
	res := h.c.Handle(&move, start)
	require.InDelta(t, 2, res.Transform.Position.X(), 1e-4)

	release := core.Event{Type: core.EventMouseUp, Mouse: move.Mouse, Button: core.MouseLeft}
	res = h.c.Handle(&release, start)
	assert.False(t, res.Dragging)
	assert.True(t, res.Changed)
	assert.InDelta(t, 2, res.Transform.Position.X(), 1e-4)

	commit, ok := h.sink.Last()
	require.True(t, ok)
	assert.Equal(t, PhaseCommit, commit.Phase)
	assert.InDelta(t, 2, commit.Value.Position.X(), 1e-4)
	assert.Equal(t, start, commit.Start)
}

func TestController_EscapeCancels(t *testing.T) {
	h := newHost()
	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)
	h.dragBy(mouse, mgl32.Vec2{100, 0})
	require.InDelta(t, 1, h.target.Position.X(), 1e-4)

	res := h.send(core.Event{Type: core.EventKeyDown, Key: core.KeyEscape})
	assert.True(t, res.Used)
	assert.False(t, res.Dragging)
	assert.Equal(t, mgl32.Vec3{}, h.target.Position)
	assert.Equal(t, []Phase{PhaseDrag, PhaseCancel}, h.sink.Phases())

	h.send(core.Event{Type: core.EventLayout, Mouse: mouse})
	assert.Equal(t, core.HandleID(0), h.c.Context().Hot())
	h.release(mouse)
	assert.Len(t, h.sink.Changes, 2)
}

func TestController_SetModeRefusedWhileDragging(t *testing.T) {
	h := newHost()
	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)

	err := h.c.SetMode(ModeScale)
	assert.True(t, errors.Is(err, ErrDragInProgress), "got %v", err)
	assert.Equal(t, ModeTranslate, h.c.Mode())

	h.release(mouse)
	require.NoError(t, h.c.SetMode(ModeScale))
	assert.Equal(t, ModeScale, h.c.Mode())
	assert.True(t, errors.Is(h.c.SetMode(Mode(7)), ErrUnknownMode))
}

func TestController_TranslateFeedback(t *testing.T) {
	h := newHost()
	h.snap.Incremental = true
	h.c.SetUnitSnapSpacing(1)
	style := h.c.Style()

	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)
	h.dragBy(mouse, mgl32.Vec2{237, 0})
	require.Equal(t, mgl32.Vec3{2, 0, 0}, h.target.Position)

	h.send(core.Event{Type: core.EventRepaint})

	dotted := h.draw.Filter(core.PrimitiveDottedLine)
	require.Len(t, dotted, 1)
	assert.Equal(t, mgl32.Vec3{}, dotted[0].P1)
	assert.True(t, core.Vec3Near(dotted[0].P2, mgl32.Vec3{50, 0, 0}, 1e-4))
	assert.Equal(t, style.DottedAxisColor, dotted[0].Color)

	var markers int
	for _, s := range h.draw.Filter(core.PrimitiveSphere) {
		if s.Color == style.ActiveAxisColor {
			markers++
			assert.InDelta(t, 0.12, s.Size, 1e-5)
		}
	}
	assert.Equal(t, 2, markers)

	var ticks []float32
	for _, l := range h.draw.Filter(core.PrimitiveLine) {
		if l.P1.Z() != 0 && l.P1.X() == l.P2.X() {
			ticks = append(ticks, l.P1.X())
			assert.InDelta(t, 0.08, l.P1.Z(), 1e-5)
		}
	}
	assert.Equal(t, []float32{1, 2}, ticks)
	assert.Equal(t, []string{"2.00"}, h.labels())
}

func TestController_PlanarFeedbackGrid(t *testing.T) {
	h := newHost()
	h.snap.Incremental = true
	h.c.SetUnitSnapSpacing(1)
	style := h.c.Style()

	mouse := mgl32.Vec2{410, 290}
	h.grab(t, mouse)
	require.Equal(t, h.c.PositionHandle().IDs.XY, h.c.Context().Hot())
	h.dragBy(mouse, mgl32.Vec2{160, 60})
	require.True(t, core.Vec3Near(h.target.Position, mgl32.Vec3{2, -1, 0}, 1e-4), "got %v", h.target.Position)

	h.send(core.Event{Type: core.EventRepaint})

	var grid int
	for _, s := range h.draw.Filter(core.PrimitiveSphere) {
		if s.Color == style.PlaneColor {
			grid++
		}
	}
	// Two steps along x and one along y, plus one marker before the start on each side.
	assert.Equal(t, 4*3, grid)

	var rects int
	for _, r := range h.draw.Filter(core.PrimitiveRect) {
		if r.Color == style.PlaneColor {
			rects++
			assert.Equal(t, []mgl32.Vec3{{}, {2, 0, 0}, {2, -1, 0}, {0, -1, 0}}, r.Points)
		}
	}
	assert.Equal(t, 1, rects)
	assert.Len(t, h.labels(), 1)
}

func TestController_RotateFeedback(t *testing.T) {
	h := newHost(WithMode(ModeRotate))
	h.snap.Incremental = true

	mouse := mgl32.Vec2{456.5685, 243.4315}
	h.grab(t, mouse)
	require.Equal(t, h.c.RotationHandle().IDs.Z, h.c.Context().Hot())
	h.dragBy(mouse, mgl32.Vec2{20, 20})
	require.True(t, core.QuatApproxEqual(core.AngleAxis(-15, mgl32.Vec3{0, 0, 1}), h.target.Rotation, 1e-5))

	h.send(core.Event{Type: core.EventRepaint})
	var radius []core.Primitive
	for _, l := range h.draw.Filter(core.PrimitiveLine) {
		if l.Color == feedbackWhite {
			radius = append(radius, l)
		}
	}
	require.Len(t, radius, 1)
	assert.Equal(t, mgl32.Vec3{}, radius[0].P1)
	assert.InDelta(t, 0.8, radius[0].P2.Len(), 1e-3)
	// The radius follows the grabbed point clockwise on screen.
	anchor := h.c.RotationHandle().Session().StartAnchor
	assert.Less(t, radius[0].P2.Y(), anchor.Y())
	assert.Equal(t, []string{"15.00"}, h.labels())
}

func TestController_ScaleFeedback(t *testing.T) {
	h := newHost(WithMode(ModeScale))
	mouse := mgl32.Vec2{400, 300}
	h.grab(t, mouse)
	require.Equal(t, h.c.ScaleHandle().IDs.XYZ, h.c.Context().Hot())
	h.dragBy(mouse, mgl32.Vec2{150, 0})
	require.True(t, core.Vec3Near(h.target.Scale, mgl32.Vec3{2.5, 2.5, 2.5}, 1e-4), "got %v", h.target.Scale)

	h.send(core.Event{Type: core.EventRepaint})
	arcs := h.draw.Filter(core.PrimitiveWireArc)
	require.Len(t, arcs, 3)
	spacing := mgl32.Vec3{1, 1, 1}.Len()
	for i, a := range arcs {
		assert.InDelta(t, spacing*float32(i+1), a.Size, 1e-4)
		assert.Equal(t, float32(35+5*i), a.Angle)
		assert.Equal(t, h.c.Style().ActiveAxisColor, a.Color)
	}
	assert.Equal(t, []string{"2.50"}, h.labels())
}

type fixedBounds mgl32.Vec3

func (b fixedBounds) BoundsSize() mgl32.Vec3 { return mgl32.Vec3(b) }

func TestController_ScaleFeedbackHighlightsBounds(t *testing.T) {
	// Bounds diagonal of 2*sqrt(12) puts the second arc (radius 2*sqrt(3)) on the bounds.
	h := newHost(WithMode(ModeScale), WithBounds(fixedBounds{4, 4, 4}))
	mouse := mgl32.Vec2{400, 300}
	h.grab(t, mouse)
	h.dragBy(mouse, mgl32.Vec2{150, 0})
	h.send(core.Event{Type: core.EventRepaint})

	arcs := h.draw.Filter(core.PrimitiveWireArc)
	require.Len(t, arcs, 3)
	assert.Equal(t, h.c.Style().ActiveAxisColor, arcs[0].Color)
	assert.Equal(t, feedbackWhite, arcs[1].Color)
	assert.Equal(t, h.c.Style().ActiveAxisColor, arcs[2].Color)
}

func TestController_SharedContext(t *testing.T) {
	ctx := core.NewContext(nil)
	ctx.Strict = true
	a := newHost(WithContext(ctx))
	b := newHost(WithContext(ctx), WithInstance(1))
	b.target.Position = mgl32.Vec3{0, -2, 0}

	send := func(evt core.Event) {
		BeginEvent(ctx, &evt)
		ra := a.c.Handle(&evt, a.target)
		a.target = ra.Transform
		rb := b.c.Handle(&evt, b.target)
		b.target = rb.Transform
	}

	mouse := mgl32.Vec2{470, 300}
	send(core.Event{Type: core.EventLayout, Mouse: mouse})
	require.Equal(t, a.c.PositionHandle().IDs.X, ctx.Nearest())
	send(core.Event{Type: core.EventMouseDown, Mouse: mouse, Button: core.MouseLeft})
	send(core.Event{Type: core.EventMouseDrag, Mouse: mouse.Add(mgl32.Vec2{100, 0}), Delta: mgl32.Vec2{100, 0}})
	send(core.Event{Type: core.EventMouseUp, Mouse: mouse, Button: core.MouseLeft})

	assert.Equal(t, []Phase{PhaseDrag, PhaseCommit}, a.sink.Phases())
	assert.Empty(t, b.sink.Changes)
	assert.Equal(t, mgl32.Vec3{0, -2, 0}, b.target.Position)
}

func TestController_SubmitField(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		axis  int
		text  string
		check func(t *testing.T, tr core.Transform)
	}{
		{
			name: "position expression",
			mode: ModeTranslate, axis: 1, text: "(+ 1 2)",
			check: func(t *testing.T, tr core.Transform) {
				assert.Equal(t, mgl32.Vec3{0, 3, 0}, tr.Position)
			},
		},
		{
			name: "rotation in degrees",
			mode: ModeRotate, axis: 1, text: "90",
			check: func(t *testing.T, tr core.Transform) {
				assert.InDelta(t, 90, tr.EulerAngles().Y(), 1e-3)
				assert.True(t, core.QuatApproxEqual(core.AngleAxis(90, mgl32.Vec3{0, 1, 0}), tr.Rotation, 1e-5))
			},
		},
		{
			name: "scale component",
			mode: ModeScale, axis: 2, text: "0.25",
			check: func(t *testing.T, tr core.Transform) {
				assert.Equal(t, mgl32.Vec3{1, 1, 0.25}, tr.Scale)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost(WithMode(tt.mode))
			require.NoError(t, h.c.SubmitField(tt.axis, tt.text, &h.target))
			tt.check(t, h.target)

			c, ok := h.sink.Last()
			require.True(t, ok)
			assert.Equal(t, PhaseCommit, c.Phase)
			assert.Equal(t, h.target, c.Value)
			assert.Equal(t, core.NewTransform(), c.Start)
		})
	}
}

func TestController_SubmitFieldErrors(t *testing.T) {
	h := newHost()
	require.NoError(t, h.c.SubmitField(0, "4", &h.target))

	err := h.c.SubmitField(0, "abc", &h.target)
	assert.True(t, errors.Is(err, ErrInvalidNumber), "got %v", err)
	assert.Equal(t, float32(4), h.target.Position.X())
	assert.Equal(t, "4", h.c.Fields().Text(0))

	assert.True(t, errors.Is(h.c.SubmitField(0, "1", nil), ErrNoTarget))
	assert.Error(t, h.c.SubmitField(3, "1", &h.target))

	h.target = core.NewTransform()
	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)
	err = h.c.SubmitField(1, "1", &h.target)
	assert.True(t, errors.Is(err, ErrDragInProgress), "got %v", err)
	assert.Len(t, h.sink.Changes, 1)
}

func TestController_FieldAnchor(t *testing.T) {
	h := newHost()
	_, ok := h.c.FieldAnchor(h.target)
	assert.False(t, ok, "no fields before a drag")

	mouse := mgl32.Vec2{470, 300}
	h.grab(t, mouse)
	h.dragBy(mouse, mgl32.Vec2{50, 0})
	h.release(mouse.Add(mgl32.Vec2{50, 0}))

	p, ok := h.c.FieldAnchor(core.NewTransform())
	require.True(t, ok)
	assert.InDelta(t, 480, p.X(), 1e-3)
	assert.InDelta(t, 300, p.Y(), 1e-3)
}

func TestController_LogsUnderComponentName(t *testing.T) {
	var out bytes.Buffer
	h := newHost(WithLogger(core.NewWriterLogger("editor", false, &out, &out)))
	require.NoError(t, h.c.SetMode(ModeRotate))
	assert.Contains(t, out.String(), "[editor/gizmo] INFO: gizmo mode translate -> rotate")
}
