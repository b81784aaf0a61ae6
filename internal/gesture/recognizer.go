package gesture

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies which gesture an Event belongs to.
type Kind uint8

const (
	KindTap Kind = iota + 1
	KindPan
	KindLongPress
)

// Event is one recognizer output. Pan is set only for KindPan.
type Event struct {
	Kind  Kind
	Phase Phase
	Pos   mgl32.Vec2
	Pan   *Pan
}

type state uint8

const (
	stateIdle state = iota
	statePressed
	statePanning
	stateLongPressing
	// stateIgnoring swallows the rest of a press after Cancel.
	stateIgnoring
)

// Recognizer is the per-pointer state machine:
//
//	idle -> pressed -> tap (released in place)
//	                -> panning (moved past MoveThreshold) -> ended
//	                -> long-pressing (held LongPressDuration) -> ended
//
// It is driven once per frame by Update and is not safe for concurrent use.
type Recognizer struct {
	cfg   Config
	state state
	start mgl32.Vec2
	last  mgl32.Vec2
	held  time.Duration
	pan   *Pan
}

// NewRecognizer returns an idle recognizer. Zero config fields take the package defaults.
func NewRecognizer(cfg Config) *Recognizer {
	return &Recognizer{cfg: cfg.withDefaults()}
}

// Update feeds the pointer sample for a frame that lasted dt and returns the gestures it
// produced, in order.
func (r *Recognizer) Update(s Sample, dt time.Duration) []Event {
	switch {
	case s.Down && r.state == stateIdle:
		r.state = statePressed
		r.start, r.last = s.Pos, s.Pos
		r.held = 0
		return nil
	case !s.Down && r.state == stateIdle:
		return nil
	case !s.Down:
		return r.release(s.Pos)
	}
	return r.hold(s.Pos, dt)
}

func (r *Recognizer) hold(pos mgl32.Vec2, dt time.Duration) []Event {
	moved := pos != r.last
	var events []Event
	switch r.state {
	case statePressed:
		r.held += dt
		if pos.Sub(r.start).Len() > r.cfg.MoveThreshold {
			r.state = statePanning
			r.pan = &Pan{Phase: PhaseBegan, Pos: pos, translation: pos.Sub(r.start)}
			events = append(events, r.panEvent())
		} else if r.held >= r.cfg.LongPressDuration {
			r.state = stateLongPressing
			events = append(events, Event{Kind: KindLongPress, Phase: PhaseBegan, Pos: pos})
		}
	case statePanning:
		if moved {
			r.pan.Phase = PhaseChanged
			r.pan.Pos = pos
			r.pan.translation = r.pan.translation.Add(pos.Sub(r.last))
			events = append(events, r.panEvent())
		}
	case stateLongPressing:
		if moved {
			events = append(events, Event{Kind: KindLongPress, Phase: PhaseChanged, Pos: pos})
		}
	}
	r.last = pos
	return events
}

// release ends the press. Movement in the release frame is reported as a final Changed
// event first, so handlers that only act on Changed still see the whole drag.
func (r *Recognizer) release(pos mgl32.Vec2) []Event {
	var events []Event
	if r.state == statePanning || r.state == stateLongPressing {
		events = r.hold(pos, 0)
	}
	switch r.state {
	case statePressed:
		events = append(events, Event{Kind: KindTap, Pos: pos})
	case statePanning:
		r.pan.Phase = PhaseEnded
		events = append(events, r.panEvent())
	case stateLongPressing:
		events = append(events, Event{Kind: KindLongPress, Phase: PhaseEnded, Pos: pos})
	}
	r.reset()
	return events
}

// Cancel aborts an in-progress pan or long-press with PhaseCancelled, e.g. when the window
// loses focus. The rest of the current press is ignored.
func (r *Recognizer) Cancel() []Event {
	var ev Event
	switch r.state {
	case statePanning:
		r.pan.Phase = PhaseCancelled
		ev = r.panEvent()
	case stateLongPressing:
		ev = Event{Kind: KindLongPress, Phase: PhaseCancelled, Pos: r.last}
	case stateIdle, stateIgnoring:
		return nil
	}
	r.reset()
	r.state = stateIgnoring
	if ev.Kind == 0 {
		return nil
	}
	return []Event{ev}
}

// Active reports whether a press is in progress.
func (r *Recognizer) Active() bool {
	return r.state != stateIdle
}

func (r *Recognizer) panEvent() Event {
	return Event{Kind: KindPan, Phase: r.pan.Phase, Pos: r.pan.Pos, Pan: r.pan}
}

func (r *Recognizer) reset() {
	r.state = stateIdle
	r.held = 0
	r.pan = nil
}
