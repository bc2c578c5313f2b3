package core

import "github.com/go-gl/mathgl/mgl32"

type EventType int

const (
	EventLayout EventType = iota
	EventMouseMove
	EventMouseDown
	EventMouseDrag
	EventMouseUp
	EventKeyDown
	EventRepaint
	// EventUsed is reported for events a handle has already consumed.
	EventUsed
)

func (t EventType) String() string {
	switch t {
	case EventLayout:
		return "Layout"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseDrag:
		return "MouseDrag"
	case EventMouseUp:
		return "MouseUp"
	case EventKeyDown:
		return "KeyDown"
	case EventRepaint:
		return "Repaint"
	case EventUsed:
		return "Used"
	}
	return "Unknown"
}

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	// ModAction is Ctrl, or Cmd on macOS.
	ModAction
)

type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyOther
)

const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// Event is one host input or frame event. Mouse is in screen pixels, y down.
type Event struct {
	Type   EventType
	Mouse  mgl32.Vec2
	Delta  mgl32.Vec2
	Button int
	Mods   Modifiers
	Key    Key

	used bool
}

// Use consumes the event; handles processed afterwards see EventUsed.
func (e *Event) Use() { e.used = true }

func (e *Event) IsUsed() bool { return e.used }

// TypeFor is the type a handle should react to.
func (e *Event) TypeFor() EventType {
	if e.used {
		return EventUsed
	}
	return e.Type
}

func (e *Event) Shift() bool  { return e.Mods&ModShift != 0 }
func (e *Event) Alt() bool    { return e.Mods&ModAlt != 0 }
func (e *Event) Action() bool { return e.Mods&ModAction != 0 }

// IsHitTest reports whether handles register hit distances for this event.
func (e *Event) IsHitTest() bool {
	t := e.TypeFor()
	return t == EventLayout || t == EventMouseMove
}
