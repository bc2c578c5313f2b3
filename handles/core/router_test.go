package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLock struct {
	locks, unlocks int
}

func (l *countingLock) LockHandlePosition()   { l.locks++ }
func (l *countingLock) UnlockHandlePosition() { l.unlocks++ }

// layout runs a hit-test pass that registers id at distance.
func layout(ctx *Context, id HandleID, distance float32) {
	evt := &Event{Type: EventLayout}
	ctx.Reconcile(evt)
	ctx.BeginHitTest(evt)
	ctx.AddCandidate(evt, id, distance)
}

func TestNearestHit(t *testing.T) {
	h := NewNearestHit()
	h.AddCandidate(1, 3)
	h.AddCandidate(2, 1)
	h.AddCandidate(3, 1)
	h.AddCandidate(4, 6)
	assert.Equal(t, HandleID(3), h.Nearest(), "later candidates win ties")

	h.Reset()
	h.AddCandidate(4, PickDistance+0.1)
	assert.Equal(t, HandleID(0), h.Nearest())
}

func TestContext_CaptureReleaseLifecycle(t *testing.T) {
	lock := &countingLock{}
	ctx := NewContext(nil)
	ctx.Lock = lock
	ctx.Strict = true
	const id HandleID = 42

	layout(ctx, id, 0)

	down := &Event{Type: EventMouseDown, Button: MouseLeft}
	require.True(t, ctx.TryCapture(down, id))
	assert.True(t, down.IsUsed())
	assert.Equal(t, id, ctx.Hot())
	assert.NotEqual(t, uuid.Nil, ctx.Gesture().ID)
	assert.Equal(t, 1, lock.locks)

	drag := &Event{Type: EventMouseDrag, Delta: mgl32.Vec2{3, 0}}
	assert.True(t, ctx.IsDragging(drag, id))
	assert.False(t, ctx.IsDragging(drag, id+1))

	// Right button up does not release.
	assert.False(t, ctx.TryRelease(&Event{Type: EventMouseUp, Button: MouseRight}, id))
	assert.True(t, ctx.TryRelease(&Event{Type: EventMouseUp, Button: MouseLeft}, id))
	assert.Equal(t, HandleID(0), ctx.Hot())
	assert.False(t, ctx.Gesture().Active)
	assert.Equal(t, 1, lock.unlocks)

	// Middle button also releases.
	layout(ctx, id, 0)
	require.True(t, ctx.TryCapture(&Event{Type: EventMouseDown, Button: MouseLeft}, id))
	assert.True(t, ctx.TryRelease(&Event{Type: EventMouseUp, Button: MouseMiddle}, id))
}

func TestContext_CaptureRequirements(t *testing.T) {
	tests := []struct {
		name    string
		evt     Event
		nearest HandleID
	}{
		{"not nearest", Event{Type: EventMouseDown, Button: MouseLeft}, 7},
		{"right button", Event{Type: EventMouseDown, Button: MouseRight}, 1},
		{"alt held", Event{Type: EventMouseDown, Button: MouseLeft, Mods: ModAlt}, 1},
		{"not a mouse down", Event{Type: EventMouseDrag, Button: MouseLeft}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(nil)
			layout(ctx, tt.nearest, 0)
			evt := tt.evt
			assert.False(t, ctx.TryCapture(&evt, 1))
			assert.Equal(t, HandleID(0), ctx.Hot())
		})
	}
}

func TestContext_UsedEventIsIgnored(t *testing.T) {
	ctx := NewContext(nil)
	layout(ctx, 1, 0)
	evt := &Event{Type: EventMouseDown, Button: MouseLeft}
	evt.Use()
	assert.Equal(t, EventUsed, evt.TypeFor())
	assert.False(t, ctx.TryCapture(evt, 1))
}

func TestContext_EscapeCancelsOnNextEvent(t *testing.T) {
	lock := &countingLock{}
	ctx := NewContext(nil)
	ctx.Lock = lock
	const id HandleID = 9

	layout(ctx, id, 1)
	require.True(t, ctx.TryCapture(&Event{Type: EventMouseDown, Button: MouseLeft}, id))

	esc := &Event{Type: EventKeyDown, Key: KeyEscape}
	require.True(t, ctx.TryCancel(esc, id))
	assert.Equal(t, id, ctx.Hot(), "hot survives the cancelling event")
	assert.True(t, ctx.Gesture().Cancelled)
	assert.Equal(t, 1, lock.unlocks)
	assert.False(t, ctx.IsDragging(&Event{Type: EventMouseDrag}, id))

	next := &Event{Type: EventMouseDrag}
	ctx.Reconcile(next)
	assert.Equal(t, HandleID(0), ctx.Hot())
	assert.Equal(t, Gesture{}, ctx.Gesture())
	assert.Equal(t, 1, lock.unlocks)
}

func TestContext_ReconcileSelfHeals(t *testing.T) {
	ctx := NewContext(nil)
	ctx.hot = 5
	ctx.Reconcile(&Event{Type: EventMouseMove})
	assert.Equal(t, HandleID(5), ctx.Hot(), "only layout repairs")

	ctx.Reconcile(&Event{Type: EventLayout})
	assert.Equal(t, HandleID(0), ctx.Hot())

	ctx.gesture = Gesture{ID: uuid.New(), Owner: 3, Active: true}
	ctx.Reconcile(&Event{Type: EventLayout})
	assert.Equal(t, Gesture{}, ctx.Gesture())
}

func TestContext_ReconcileStrictPanics(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Strict = true
	ctx.hot = 5
	assert.Panics(t, func() { ctx.Reconcile(&Event{Type: EventLayout}) })
}

func TestContext_HandleColor(t *testing.T) {
	style := DefaultStyle()
	ctx := NewContext(nil)
	base := style.XAxisColor

	layout(ctx, 1, 0)
	assert.Equal(t, style.PreselectionColor, ctx.HandleColor(1, base, style))
	assert.Equal(t, base, ctx.HandleColor(2, base, style))

	require.True(t, ctx.TryCapture(&Event{Type: EventMouseDown, Button: MouseLeft}, 1))
	assert.Equal(t, style.ActiveAxisColor, ctx.HandleColor(1, base, style))
}

func TestStyle_FadedAxisColor(t *testing.T) {
	style := DefaultStyle()
	ctx := NewContext(nil)
	c := Color{1, 0, 0, 1}
	assert.Equal(t, Color{}, style.FadedAxisColor(ctx, c, 1, 3))
	assert.Equal(t, Color{0.5, 0, 0, 0.5}, style.FadedAxisColor(ctx, c, 0.5, 3))

	layout(ctx, 3, 0)
	assert.Equal(t, c, style.FadedAxisColor(ctx, c, 1, 3), "hovered handles never fade")
}

func TestStyle_Fade(t *testing.T) {
	style := DefaultStyle()
	assert.Equal(t, float32(0), style.Fade(0))
	assert.Equal(t, float32(1), style.Fade(1))
	assert.InDelta(t, 0.5, style.Fade(0.5), 1e-5)
	assert.Less(t, style.Fade(0.25), style.Fade(0.75))
	assert.Equal(t, Color{0.44, 0.737, 0.83, 1}, style.RotationPieColor())
}
