package gesture

import (
	"slices"
	"time"
)

type tapHandler struct {
	id uint32
	fn func(Tap)
}

type panHandler struct {
	id uint32
	fn func(*Pan)
}

type longPressHandler struct {
	id uint32
	fn func(LongPress)
}

type handlerRegistry struct {
	tap       []tapHandler
	pan       []panHandler
	longPress []longPressHandler
	nextID    uint32
}

// Handle allows removing a registered gesture handler.
type Handle struct {
	id   uint32
	reg  *handlerRegistry
	kind Kind
}

// Remove unregisters the handler. Removing twice, or a zero Handle, is a no-op.
func (h Handle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case KindTap:
		h.reg.tap = removeHandler(h.reg.tap, func(x tapHandler) bool { return x.id == h.id })
	case KindPan:
		h.reg.pan = removeHandler(h.reg.pan, func(x panHandler) bool { return x.id == h.id })
	case KindLongPress:
		h.reg.longPress = removeHandler(h.reg.longPress, func(x longPressHandler) bool { return x.id == h.id })
	}
}

func removeHandler[T any](s []T, match func(T) bool) []T {
	for i := range s {
		if match(s[i]) {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// Router recognizes gestures from pointer samples and calls the registered handlers in
// registration order. It applies no filtering of its own.
type Router struct {
	rec      *Recognizer
	handlers handlerRegistry
}

// NewRouter returns a router with no handlers.
func NewRouter(cfg Config) *Router {
	return &Router{rec: NewRecognizer(cfg)}
}

// OnTap registers fn for taps.
func (r *Router) OnTap(fn func(Tap)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.tap = append(r.handlers.tap, tapHandler{id: id, fn: fn})
	return Handle{id: id, reg: &r.handlers, kind: KindTap}
}

// OnPan registers fn for every phase of a pan.
func (r *Router) OnPan(fn func(*Pan)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.pan = append(r.handlers.pan, panHandler{id: id, fn: fn})
	return Handle{id: id, reg: &r.handlers, kind: KindPan}
}

// OnLongPress registers fn for every phase of a long-press.
func (r *Router) OnLongPress(fn func(LongPress)) Handle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.longPress = append(r.handlers.longPress, longPressHandler{id: id, fn: fn})
	return Handle{id: id, reg: &r.handlers, kind: KindLongPress}
}

// Update feeds one frame of pointer input. Call once per frame.
func (r *Router) Update(s Sample, dt time.Duration) {
	r.dispatch(r.rec.Update(s, dt))
}

// Cancel aborts the gesture in progress, if any.
func (r *Router) Cancel() {
	r.dispatch(r.rec.Cancel())
}

// dispatch calls handlers from a snapshot of each list, so a handler may remove itself or
// another handler without skipping anyone for the event in flight.
func (r *Router) dispatch(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case KindTap:
			for _, h := range slices.Clone(r.handlers.tap) {
				h.fn(Tap{Pos: ev.Pos})
			}
		case KindPan:
			for _, h := range slices.Clone(r.handlers.pan) {
				h.fn(ev.Pan)
			}
		case KindLongPress:
			for _, h := range slices.Clone(r.handlers.longPress) {
				h.fn(LongPress{Phase: ev.Phase, Pos: ev.Pos})
			}
		}
	}
}
