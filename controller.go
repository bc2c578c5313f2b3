// Package gizmo is the manipulation overlay: it routes host events to the position, rotation
// or scale handle of one selected object, proposes the resulting edits to a CommitSink and draws
// the drag feedback (guides, markers and labels) on top of the handles.
package gizmo

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/handles/core"
	"github.com/gekko3d/gizmo/handles/manip"
)

type Mode int

const (
	ModeTranslate Mode = iota
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	}
	return "unknown"
}

// ParseMode accepts the names returned by Mode.String, plus "move" and "position" for translate.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translate", "move", "position":
		return ModeTranslate, nil
	case "rotate", "rotation":
		return ModeRotate, nil
	case "scale":
		return ModeScale, nil
	}
	return ModeTranslate, fmt.Errorf("failed to parse mode %q: %w", s, ErrUnknownMode)
}

// BoundsSource reports the world-space bounds size of the target. The scale feedback
// highlights the arc closest to the bounds when one is set.
type BoundsSource interface {
	BoundsSize() mgl32.Vec3
}

type Option func(*Controller)

func WithLogger(l core.Logger) Option {
	return func(c *Controller) { c.log = core.LoggerOr(l) }
}

func WithSink(s CommitSink) Option {
	return func(c *Controller) {
		if s != nil {
			c.sink = s
		}
	}
}

func WithStyle(s *core.Style) Option {
	return func(c *Controller) {
		if s != nil {
			c.style = s
		}
	}
}

// WithContext shares an interaction context between controllers of one viewport. Combine with
// WithInstance so their handle ids differ. The host then calls BeginEvent once per event before
// handing it to the controllers.
func WithContext(ctx *core.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
			c.sharedCtx = true
		}
	}
}

func WithInstance(i int) Option {
	return func(c *Controller) { c.instance = i }
}

func WithBounds(b BoundsSource) Option {
	return func(c *Controller) { c.bounds = b }
}

func WithMode(m Mode) Option {
	return func(c *Controller) { c.mode = m }
}

// Result is the outcome of one Handle call.
type Result struct {
	Transform core.Transform
	// Changed reports whether Transform differs from the target passed to Handle.
	Changed bool
	// Dragging reports whether a gesture of this controller is still live.
	Dragging bool
	// Used reports whether a handle consumed the event.
	Used bool
}

// gesture is the controller's view of the drag in progress.
type gesture struct {
	id     uuid.UUID
	handle core.HandleID
	mode   Mode
	start  core.Transform
	last   core.Transform
}

// Controller drives the handles of one target. It is not safe for concurrent use.
type Controller struct {
	svc      core.Services
	ctx      *core.Context
	style    *core.Style
	log      core.Logger
	sink     CommitSink
	bounds   BoundsSource
	mode     Mode
	instance int

	sharedCtx bool

	position *manip.PositionHandle
	rotation *manip.RotationHandle
	scale    *manip.ScaleHandle
	fields   *NumericFields

	active *gesture
}

func NewController(svc core.Services, opts ...Option) *Controller {
	c := &Controller{
		svc:   svc,
		style: core.DefaultStyle(),
		log:   core.NewNopLogger(),
		sink:  nopSink{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = core.Named(c.log, "gizmo")
	if c.ctx == nil {
		c.ctx = core.NewContext(c.log)
	}
	c.position = manip.NewPositionHandle(c.instance)
	c.rotation = manip.NewRotationHandle(c.instance)
	c.scale = manip.NewScaleHandle(c.instance)
	c.fields = NewNumericFields(c.log)
	return c
}

func (c *Controller) Context() *core.Context                { return c.ctx }
func (c *Controller) Style() *core.Style                    { return c.style }
func (c *Controller) Mode() Mode                            { return c.mode }
func (c *Controller) Fields() *NumericFields                { return c.fields }
func (c *Controller) PositionHandle() *manip.PositionHandle { return c.position }
func (c *Controller) RotationHandle() *manip.RotationHandle { return c.rotation }
func (c *Controller) ScaleHandle() *manip.ScaleHandle       { return c.scale }

// Dragging reports whether this controller owns the current gesture.
func (c *Controller) Dragging() bool { return c.active != nil }

// SetMode switches the active tool. It is refused while any handle of the context is dragging.
func (c *Controller) SetMode(m Mode) error {
	if m < ModeTranslate || m > ModeScale {
		return fmt.Errorf("failed to set mode %d: %w", m, ErrUnknownMode)
	}
	if c.ctx.Dragging() {
		return fmt.Errorf("failed to set mode %s: %w", m, ErrDragInProgress)
	}
	if m != c.mode {
		c.log.Infof("gizmo mode %s -> %s", c.mode, m)
		c.mode = m
		c.fields.Reset()
	}
	return nil
}

func (c *Controller) SetActiveAxisColor(col core.Color) { c.style.ActiveAxisColor = col }

// SetPlaneColor also changes the rotation pie fill, which is derived from it.
func (c *Controller) SetPlaneColor(col core.Color) { c.style.PlaneColor = col }

func (c *Controller) SetDottedAxisColor(col core.Color) { c.style.DottedAxisColor = col }
func (c *Controller) SetTextColor(col core.Color)       { c.style.TextColor = col }

func (c *Controller) SetFontScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	c.style.FontScale = scale
}

// SetUnitSnapSpacing sets how many move-snap steps lie between two translate tick marks.
func (c *Controller) SetUnitSnapSpacing(spacing float32) {
	if spacing <= 0 {
		spacing = core.DefaultStyle().UnitSnapSpacing
	}
	c.style.UnitSnapSpacing = spacing
}

// BeginEvent settles the capture state of ctx and clears the previous hit test before evt is
// dispatched to handles.
func BeginEvent(ctx *core.Context, evt *core.Event) {
	ctx.Reconcile(evt)
	ctx.BeginHitTest(evt)
}

func (c *Controller) env() manip.Env {
	return manip.Env{Ctx: c.ctx, Svc: c.svc, Style: c.style}
}

// owns reports whether id is a sub-handle of the active tool.
func (c *Controller) owns(id core.HandleID) bool {
	switch c.mode {
	case ModeTranslate:
		return c.position.IDs.Has(id)
	case ModeRotate:
		return c.rotation.IDs.Has(id)
	case ModeScale:
		return c.scale.IDs.Has(id)
	}
	return false
}

// component is the vector the numeric fields show for the active tool.
func (c *Controller) component(t core.Transform) mgl32.Vec3 {
	switch c.mode {
	case ModeRotate:
		return t.EulerAngles()
	case ModeScale:
		return t.Scale
	}
	return t.Position
}

// Handle processes one host event for target and returns the edited transform. The host applies
// Result.Transform (or the changes it received through the sink) before the next event.
func (c *Controller) Handle(evt *core.Event, target core.Transform) Result {
	if evt == nil {
		return Result{Transform: target, Dragging: c.active != nil}
	}
	if !c.sharedCtx {
		BeginEvent(c.ctx, evt)
	}

	if c.active != nil && !c.owns(c.ctx.Hot()) {
		// The capture state was repaired before this event: nothing will release the gesture.
		c.log.Warnf("gizmo gesture %s lost its handle, restoring start value", c.active.id)
		restored := c.cancel(target)
		return Result{Transform: restored, Changed: restored != target, Used: evt.IsUsed()}
	}

	out := target
	env := c.env()
	switch c.mode {
	case ModeTranslate:
		out.Position = c.position.Do(env, evt, target.Position, target.Rotation)
	case ModeRotate:
		out.Rotation = c.rotation.Do(env, evt, target.Rotation, target.Position)
	case ModeScale:
		out.Scale = c.scale.Do(env, evt, target.Scale, target.Position, target.Rotation)
	}

	hot := c.ctx.Hot()
	if c.active == nil && hot != 0 && c.owns(hot) && !c.ctx.Gesture().Cancelled {
		c.begin(hot, target)
	}

	if g := c.active; g != nil {
		switch {
		case c.ctx.Gesture().Cancelled:
			out = c.cancel(out)
		case hot == 0:
			// hosts may ignore drag results until release
			if out == target {
				out = g.last
			}
			c.commit(out)
		case out != g.last:
			g.last = out
			c.fields.Track(c.component(out))
			c.sink.ProposeChange(Change{Gesture: g.id, Handle: g.handle, Mode: g.mode, Phase: PhaseDrag, Value: out, Start: g.start})
		}
	}

	if evt.Type == core.EventRepaint && c.active != nil {
		c.drawFeedback(target)
	}

	return Result{
		Transform: out,
		Changed:   out != target,
		Dragging:  c.active != nil,
		Used:      evt.IsUsed(),
	}
}

func (c *Controller) begin(hot core.HandleID, start core.Transform) {
	c.active = &gesture{
		id:     c.ctx.Gesture().ID,
		handle: hot,
		mode:   c.mode,
		start:  start,
		last:   start,
	}
	c.fields.Begin(c.component(start))
	c.log.Debugf("gizmo %s gesture %s started on handle %d", c.mode, c.active.id, hot)
}

func (c *Controller) commit(value core.Transform) {
	g := c.active
	c.active = nil
	c.sink.ProposeChange(Change{Gesture: g.id, Handle: g.handle, Mode: g.mode, Phase: PhaseCommit, Value: value, Start: g.start})
	c.log.Debugf("gizmo %s gesture %s committed", g.mode, g.id)
}

// cancel ends the gesture and returns current with the edited component put back to its start.
func (c *Controller) cancel(current core.Transform) core.Transform {
	g := c.active
	c.active = nil
	switch g.mode {
	case ModeTranslate:
		current.Position = g.start.Position
	case ModeRotate:
		current.Rotation = g.start.Rotation
	case ModeScale:
		current.Scale = g.start.Scale
	}
	c.fields.Show(c.component(current))
	c.sink.ProposeChange(Change{Gesture: g.id, Handle: g.handle, Mode: g.mode, Phase: PhaseCancel, Value: current, Start: g.start})
	c.log.Debugf("gizmo %s gesture %s cancelled", g.mode, g.id)
	return current
}

// SubmitField writes a numeric field of the active tool into target: a position component,
// an Euler angle in degrees or a scale component. The edit is proposed as a one-step commit.
func (c *Controller) SubmitField(axis int, text string, target *core.Transform) error {
	if target == nil {
		return fmt.Errorf("failed to submit field %d: %w", axis, ErrNoTarget)
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("failed to submit field %d: axis out of range", axis)
	}
	if c.ctx.Dragging() {
		return fmt.Errorf("failed to submit field %d: %w", axis, ErrDragInProgress)
	}
	c.fields.Show(c.component(*target))
	v, err := c.fields.Submit(axis, text)
	if err != nil {
		return fmt.Errorf("failed to submit field %d: %w", axis, err)
	}

	start := *target
	switch c.mode {
	case ModeTranslate:
		target.Position[axis] = v
	case ModeRotate:
		e := target.EulerAngles()
		e[axis] = v
		*target = target.WithEulerAngles(e)
	case ModeScale:
		target.Scale[axis] = v
	}
	c.sink.ProposeChange(Change{Gesture: uuid.New(), Mode: c.mode, Phase: PhaseCommit, Value: *target, Start: start})
	c.log.Debugf("gizmo %s field %d set to %g", c.mode, axis, v)
	return nil
}

// FieldAnchor is the screen point the floating numeric fields are laid out from.
func (c *Controller) FieldAnchor(target core.Transform) (mgl32.Vec2, bool) {
	return c.fields.Anchor(c.svc.Camera, target.Position)
}
