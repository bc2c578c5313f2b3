package core

import "fmt"

// AddCandidate registers the screen distance of id while the event is a hit-test pass.
func (c *Context) AddCandidate(evt *Event, id HandleID, distance float32) {
	if c.Disabled || c.Hits == nil || !evt.IsHitTest() {
		return
	}
	c.Hits.AddCandidate(id, distance)
}

// TryCapture makes id hot when the left button goes down on it without Alt.
func (c *Context) TryCapture(evt *Event, id HandleID) bool {
	if c.Disabled || evt.TypeFor() != EventMouseDown || c.hot != 0 {
		return false
	}
	if c.Nearest() != id || evt.Button != MouseLeft || evt.Alt() {
		return false
	}
	c.hot = id
	c.gesture = Gesture{ID: newGestureID(), Owner: id, Active: true}
	if c.Lock != nil {
		c.Lock.LockHandlePosition()
	}
	evt.Use()
	c.logger().Debugf("handle %d captured, gesture %s", id, c.gesture.ID)
	return true
}

// TryRelease ends the drag of id on MouseUp of the left or middle button.
func (c *Context) TryRelease(evt *Event, id HandleID) bool {
	if evt.TypeFor() != EventMouseUp || c.hot != id || c.hot == 0 {
		return false
	}
	if evt.Button != MouseLeft && evt.Button != MouseMiddle {
		return false
	}
	c.logger().Debugf("handle %d released, gesture %s", id, c.gesture.ID)
	c.hot = 0
	c.gesture = Gesture{}
	if c.Lock != nil {
		c.Lock.UnlockHandlePosition()
	}
	evt.Use()
	return true
}

// TryCancel marks the drag of id cancelled on Escape. The handle stays hot until the next
// event reaches Reconcile so that this event can still report the start value.
func (c *Context) TryCancel(evt *Event, id HandleID) bool {
	if evt.TypeFor() != EventKeyDown || evt.Key != KeyEscape || c.hot != id || c.hot == 0 {
		return false
	}
	if c.gesture.Cancelled {
		return false
	}
	c.gesture.Cancelled = true
	if c.Lock != nil {
		c.Lock.UnlockHandlePosition()
	}
	evt.Use()
	c.logger().Debugf("handle %d cancelled, gesture %s", id, c.gesture.ID)
	return true
}

// IsDragging reports whether id should apply this event as drag motion.
func (c *Context) IsDragging(evt *Event, id HandleID) bool {
	return evt.TypeFor() == EventMouseDrag && c.hot == id && id != 0 && !c.gesture.Cancelled
}

// Reconcile runs before an event is dispatched to handles. It discards a cancelled gesture and,
// on Layout, repairs a hot handle without a live gesture (or the reverse).
func (c *Context) Reconcile(evt *Event) {
	if c.gesture.Cancelled {
		c.hot = 0
		c.gesture = Gesture{}
		return
	}
	if evt.Type != EventLayout {
		return
	}
	live := c.gesture.Active
	if (c.hot != 0) == live && (!live || c.gesture.Owner == c.hot) {
		return
	}
	msg := fmt.Sprintf("inconsistent capture state: hot=%d gesture owner=%d active=%t", c.hot, c.gesture.Owner, live)
	if c.Strict {
		panic(msg)
	}
	c.logger().Warnf("%s, resetting", msg)
	if c.hot != 0 && c.Lock != nil {
		c.Lock.UnlockHandlePosition()
	}
	c.hot = 0
	c.gesture = Gesture{}
}

// BeginHitTest clears the previous nearest handle before a Layout or MouseMove pass.
func (c *Context) BeginHitTest(evt *Event) {
	if c.Hits != nil && evt.IsHitTest() {
		c.Hits.Reset()
	}
}
