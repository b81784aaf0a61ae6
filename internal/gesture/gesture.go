// Package gesture turns raw single-pointer samples (mouse or first touch) into tap, pan and
// long-press gestures and dispatches them to registered handlers.
package gesture

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Defaults used when a Config field is zero.
const (
	DefaultMoveThreshold     = 10.0 // pixels
	DefaultLongPressDuration = 500 * time.Millisecond
)

// Phase is the stage of a continuous gesture.
type Phase uint8

const (
	PhaseBegan Phase = iota + 1
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Sample is the pointer state for one frame. Pos is in window pixels, top-left origin.
type Sample struct {
	Down bool
	Pos  mgl32.Vec2
}

// Config tunes recognition.
type Config struct {
	// MoveThreshold is how far in pixels the pointer may travel from the press point before
	// the press becomes a pan.
	MoveThreshold float32
	// LongPressDuration is how long the pointer must be held still to start a long-press.
	LongPressDuration time.Duration
}

func (c Config) withDefaults() Config {
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = DefaultMoveThreshold
	}
	if c.LongPressDuration <= 0 {
		c.LongPressDuration = DefaultLongPressDuration
	}
	return c
}

// Tap is a press and release without enough movement or hold time to become anything else.
type Tap struct {
	Pos mgl32.Vec2
}

// LongPress is a press held still for at least LongPressDuration. Pos tracks the pointer.
type LongPress struct {
	Phase Phase
	Pos   mgl32.Vec2
}

// Pan is a press that moved past the move threshold. Handlers receive the same *Pan for the
// whole gesture, so a translation reset by one event is seen by the next.
type Pan struct {
	Phase       Phase
	Pos         mgl32.Vec2
	translation mgl32.Vec2
}

// Translation returns the pointer movement in pixels accumulated since the pan began or
// since the last SetTranslation.
func (p *Pan) Translation() mgl32.Vec2 {
	return p.translation
}

// SetTranslation replaces the accumulated translation, typically with zero after consuming it.
func (p *Pan) SetTranslation(t mgl32.Vec2) {
	p.translation = t
}
