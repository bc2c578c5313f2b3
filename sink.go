package gizmo

import (
	"github.com/google/uuid"

	"github.com/gekko3d/gizmo/handles/core"
)

type Phase int

const (
	// PhaseDrag is a provisional value while the pointer moves.
	PhaseDrag Phase = iota
	// PhaseCommit settles a gesture. It is proposed exactly once per released drag.
	PhaseCommit
	// PhaseCancel restores the start value after Escape or a repaired capture state.
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDrag:
		return "drag"
	case PhaseCommit:
		return "commit"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// Change is one proposed edit of the target transform.
type Change struct {
	Gesture uuid.UUID
	Handle  core.HandleID
	Mode    Mode
	Phase   Phase
	Value   core.Transform
	Start   core.Transform
}

// CommitSink receives the edits of the controller. The host decides how to apply and record
// them, e.g. merging drag phases into one undo step per gesture.
type CommitSink interface {
	ProposeChange(c Change)
}

// CommitFunc adapts a function to CommitSink.
type CommitFunc func(c Change)

func (f CommitFunc) ProposeChange(c Change) { f(c) }

// ChangeLog records every proposed change.
type ChangeLog struct {
	Changes []Change
}

func (l *ChangeLog) ProposeChange(c Change) { l.Changes = append(l.Changes, c) }

// Phases returns the phase of every recorded change in order.
func (l *ChangeLog) Phases() []Phase {
	out := make([]Phase, len(l.Changes))
	for i, c := range l.Changes {
		out[i] = c.Phase
	}
	return out
}

// Last returns the most recent change, if any.
func (l *ChangeLog) Last() (Change, bool) {
	if len(l.Changes) == 0 {
		return Change{}, false
	}
	return l.Changes[len(l.Changes)-1], true
}

type nopSink struct{}

func (nopSink) ProposeChange(Change) {}
