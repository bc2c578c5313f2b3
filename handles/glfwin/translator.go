// Package glfwin feeds GLFW window input to the handles as core events.
package glfwin

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo/handles/core"
)

// Translator queues the core events produced by GLFW callbacks until the host drains them.
// GLFW calls back on the main thread from PollEvents, so no locking is needed.
type Translator struct {
	mouse    mgl32.Vec2
	hasMouse bool
	pressed  [3]bool
	mods     core.Modifiers
	queue    []core.Event
}

func NewTranslator() *Translator {
	return &Translator{}
}

// Attach installs the cursor, button and key callbacks on w.
func (t *Translator) Attach(w *glfw.Window) {
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		t.CursorPos(x, y)
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, m glfw.ModifierKey) {
		t.MouseButton(b, a, m)
	})
	w.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, _ int, a glfw.Action, m glfw.ModifierKey) {
		t.Key(k, a, m)
	})
}

// Mouse is the last known cursor position in window pixels.
func (t *Translator) Mouse() mgl32.Vec2 { return t.mouse }

func (t *Translator) Mods() core.Modifiers { return t.mods }

func (t *Translator) push(e core.Event) {
	e.Mods = t.mods
	t.queue = append(t.queue, e)
}

func (t *Translator) CursorPos(x, y float64) {
	p := mgl32.Vec2{float32(x), float32(y)}
	if !t.hasMouse {
		t.mouse, t.hasMouse = p, true
	}
	delta := p.Sub(t.mouse)
	t.mouse = p
	for b, down := range t.pressed {
		if down {
			t.push(core.Event{Type: core.EventMouseDrag, Mouse: p, Delta: delta, Button: b})
			return
		}
	}
	t.push(core.Event{Type: core.EventMouseMove, Mouse: p})
}

func (t *Translator) MouseButton(b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	button, ok := Button(b)
	if !ok {
		return
	}
	t.mods = Modifiers(mods)
	switch action {
	case glfw.Press:
		t.pressed[button] = true
		// A fresh hit test right before the press picks the handle under the cursor.
		t.push(core.Event{Type: core.EventLayout, Mouse: t.mouse})
		t.push(core.Event{Type: core.EventMouseDown, Mouse: t.mouse, Button: button})
	case glfw.Release:
		t.pressed[button] = false
		t.push(core.Event{Type: core.EventMouseUp, Mouse: t.mouse, Button: button})
	}
}

func (t *Translator) Key(k glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	t.mods = Modifiers(mods)
	if m := modifierOf(k); m != 0 {
		// GLFW reports the modifier state from before the key changed.
		if action == glfw.Release {
			t.mods &^= m
		} else {
			t.mods |= m
		}
		return
	}
	if action != glfw.Press {
		return
	}
	key := core.KeyOther
	if k == glfw.KeyEscape {
		key = core.KeyEscape
	}
	t.push(core.Event{Type: core.EventKeyDown, Mouse: t.mouse, Key: key})
}

// Drain returns the queued events and clears the queue.
func (t *Translator) Drain() []core.Event {
	out := t.queue
	t.queue = nil
	return out
}

// Frame is one frame's event stream: a Layout pass, the queued input and a Repaint.
func (t *Translator) Frame() []core.Event {
	out := make([]core.Event, 0, len(t.queue)+2)
	out = append(out, core.Event{Type: core.EventLayout, Mouse: t.mouse, Mods: t.mods})
	out = append(out, t.Drain()...)
	return append(out, core.Event{Type: core.EventRepaint, Mouse: t.mouse, Mods: t.mods})
}

// Button maps the GLFW buttons the handles care about.
func Button(b glfw.MouseButton) (int, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	}
	return 0, false
}

func actionMod() glfw.ModifierKey {
	if runtime.GOOS == "darwin" {
		return glfw.ModSuper
	}
	return glfw.ModControl
}

// Modifiers converts GLFW modifier bits. The action modifier is Cmd on macOS and Ctrl elsewhere.
func Modifiers(m glfw.ModifierKey) core.Modifiers {
	var out core.Modifiers
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&actionMod() != 0 {
		out |= core.ModAction
	}
	return out
}

func modifierOf(k glfw.Key) core.Modifiers {
	switch k {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return core.ModShift
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return core.ModAlt
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		if runtime.GOOS != "darwin" {
			return core.ModAction
		}
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		if runtime.GOOS == "darwin" {
			return core.ModAction
		}
	}
	return 0
}
