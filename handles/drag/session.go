// Package drag implements the sub-handles that turn pointer motion into constrained
// position, rotation and scale values.
package drag

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/handles/core"
)

// Session is the state of one drag gesture, from capture to release or cancel.
type Session struct {
	Gesture core.Gesture
	Handle  core.HandleID

	StartMouse   mgl32.Vec2
	CurrentMouse mgl32.Vec2

	StartPosition mgl32.Vec3
	StartRotation mgl32.Quat
	StartScale    mgl32.Vec3
	// StartAnchor is the grabbed point: plane hit for sliders, arc point for discs.
	StartAnchor mgl32.Vec3
	StartAxis   mgl32.Vec3
	StartValue  float32

	// Distance is the last snapped travel: world units for sliders, degrees for discs.
	Distance  float32
	ValueDrag float32
	useYSign  bool
}

// begin resets s for a gesture that ctx has just captured for id.
func (s *Session) begin(ctx *core.Context, id core.HandleID, mouse mgl32.Vec2) {
	*s = Session{
		Gesture:       ctx.Gesture(),
		Handle:        id,
		StartMouse:    mouse,
		CurrentMouse:  mouse,
		StartRotation: mgl32.QuatIdent(),
	}
}

// ID is the gesture id shared with the commit sink.
func (s *Session) ID() uuid.UUID { return s.Gesture.ID }

// Owns reports whether the session belongs to the gesture currently held by ctx.
func (s *Session) Owns(ctx *core.Context) bool {
	return ctx.Hot() != 0 && s.Handle == ctx.Hot() && s.Gesture.ID == ctx.Gesture().ID
}

// niceMouseDelta folds a 2D pointer delta into a signed 1D amount: right and up are positive.
// The dominant axis sticks until the other clearly takes over.
func (s *Session) niceMouseDelta(delta mgl32.Vec2) float32 {
	dx, dy := delta.X(), -delta.Y()
	ax, ay := abs(dx), abs(dy)
	if m := max(ax, ay); m > 0 && abs(ax-ay)/m > 0.1 {
		s.useYSign = ay > ax
	}
	if s.useYSign {
		return core.Sign(dy) * delta.Len()
	}
	return core.Sign(dx) * delta.Len()
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
