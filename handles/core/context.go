package core

import (
	"github.com/google/uuid"
)

// Gesture is the capture state of the current drag.
type Gesture struct {
	ID        uuid.UUID
	Owner     HandleID
	Active    bool
	Cancelled bool
}

// Context is the interaction state shared by all handles of one viewport. It replaces a
// process-wide hot control: whoever holds the Context decides which handles compete.
type Context struct {
	Hits HitRegistrar
	Lock FollowLock
	Log  Logger
	// Strict panics on inconsistent capture state instead of repairing it.
	Strict bool
	// Disabled draws every handle in the static color and ignores input.
	Disabled bool

	hot     HandleID
	gesture Gesture
}

func NewContext(log Logger) *Context {
	return &Context{
		Hits: NewNearestHit(),
		Log:  LoggerOr(log),
	}
}

func (c *Context) logger() Logger {
	return LoggerOr(c.Log)
}

// Hot is the handle that owns the current drag, or 0.
func (c *Context) Hot() HandleID { return c.hot }

// Dragging reports whether any handle owns a drag.
func (c *Context) Dragging() bool { return c.hot != 0 }

func (c *Context) Nearest() HandleID {
	if c.Hits == nil {
		return 0
	}
	return c.Hits.Nearest()
}

func (c *Context) Gesture() Gesture { return c.gesture }

// IsHovering reports whether id is under the pointer and free to be captured.
func (c *Context) IsHovering(id HandleID) bool {
	return c.Nearest() == id && (c.hot == 0 || c.hot == id)
}

// HandleColor picks the draw color of a sub-handle: highlighted while hot, preselected on hover.
func (c *Context) HandleColor(id HandleID, base Color, style *Style) Color {
	if c.Disabled {
		return base.Lerp(style.StaticColor, style.StaticBlend)
	}
	if c.hot == id {
		return style.ActiveAxisColor
	}
	if c.hot == 0 && c.Nearest() == id {
		return style.PreselectionColor
	}
	return base
}

func newGestureID() uuid.UUID {
	return uuid.New()
}
