package gesture

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRouterDispatchesInRegistrationOrder(t *testing.T) {
	r := NewRouter(Config{})
	var got []string
	r.OnTap(func(Tap) { got = append(got, "first") })
	r.OnTap(func(Tap) { got = append(got, "second") })

	r.Update(down(5, 5), frame)
	r.Update(up(5, 5), frame)

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("got %v", got)
	}
}

func TestRouterTapPosition(t *testing.T) {
	r := NewRouter(Config{})
	var tap Tap
	r.OnTap(func(t Tap) { tap = t })
	r.Update(down(7, 9), frame)
	r.Update(up(8, 9), frame)
	if tap.Pos != (mgl32.Vec2{8, 9}) {
		t.Errorf("tap at %v, want (8,9)", tap.Pos)
	}
}

func TestHandleRemove(t *testing.T) {
	r := NewRouter(Config{})
	taps, pans, presses := 0, 0, 0
	th := r.OnTap(func(Tap) { taps++ })
	ph := r.OnPan(func(*Pan) { pans++ })
	lh := r.OnLongPress(func(LongPress) { presses++ })

	th.Remove()
	ph.Remove()
	lh.Remove()
	th.Remove()
	Handle{}.Remove()

	for _, s := range seq([]Sample{down(0, 0), up(0, 0), down(0, 0), down(50, 0), up(50, 0)},
		hold(0, 0, 40), []Sample{up(0, 0)}) {
		r.Update(s, frame)
	}
	if taps+pans+presses != 0 {
		t.Errorf("removed handlers fired: taps=%d pans=%d presses=%d", taps, pans, presses)
	}
}

func TestRemoveKeepsOtherHandlers(t *testing.T) {
	r := NewRouter(Config{})
	var got []int
	a := r.OnTap(func(Tap) { got = append(got, 1) })
	r.OnTap(func(Tap) { got = append(got, 2) })
	a.Remove()

	r.Update(down(0, 0), frame)
	r.Update(up(0, 0), frame)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("got %v, want [2]", got)
	}
}

func TestRouterPanResetIsVisibleToNextEvent(t *testing.T) {
	r := NewRouter(Config{})
	var seen []mgl32.Vec2
	r.OnPan(func(p *Pan) {
		seen = append(seen, p.Translation())
		if p.Phase == PhaseChanged {
			p.SetTranslation(mgl32.Vec2{})
		}
	})
	for _, s := range []Sample{down(0, 0), down(20, 0), down(25, 0), down(27, 0), up(27, 0)} {
		r.Update(s, frame)
	}
	want := []mgl32.Vec2{{20, 0}, {25, 0}, {2, 0}, {0, 0}}
	if len(seen) != len(want) {
		t.Fatalf("seen %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("event %d translation = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestRouterPanChangedSumsToTotalDrag(t *testing.T) {
	r := NewRouter(Config{})
	var sum mgl32.Vec2
	r.OnPan(func(p *Pan) {
		if p.Phase == PhaseChanged {
			sum = sum.Add(p.Translation())
			p.SetTranslation(mgl32.Vec2{})
		}
	})
	// The last 20 px arrive with the release sample.
	for _, s := range []Sample{down(0, 0), down(15, 0), down(30, -5), up(50, -5)} {
		r.Update(s, frame)
	}
	if sum != (mgl32.Vec2{50, -5}) {
		t.Errorf("sum of Changed translations = %v, want (50,-5)", sum)
	}
}

func TestHandlerCanRemoveItselfDuringDispatch(t *testing.T) {
	r := NewRouter(Config{})
	var got []string
	var first Handle
	first = r.OnTap(func(Tap) {
		got = append(got, "first")
		first.Remove()
	})
	r.OnTap(func(Tap) { got = append(got, "second") })
	r.OnTap(func(Tap) { got = append(got, "third") })

	for i := 0; i < 2; i++ {
		r.Update(down(0, 0), frame)
		r.Update(up(0, 0), frame)
	}
	want := []string{"first", "second", "third", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHandlerRemovedDuringDispatchStillSeesCurrentEvent(t *testing.T) {
	r := NewRouter(Config{})
	calls := 0
	var second Handle
	r.OnLongPress(func(lp LongPress) {
		if lp.Phase == PhaseBegan {
			second.Remove()
		}
	})
	second = r.OnLongPress(func(LongPress) { calls++ })

	for _, s := range seq(hold(0, 0, 40), []Sample{up(0, 0)}) {
		r.Update(s, frame)
	}
	if calls != 1 {
		t.Errorf("removed handler calls = %d, want 1 (the event in flight only)", calls)
	}
}

func TestRouterCancel(t *testing.T) {
	r := NewRouter(Config{})
	var phases []Phase
	r.OnLongPress(func(lp LongPress) { phases = append(phases, lp.Phase) })
	for _, s := range hold(3, 3, 40) {
		r.Update(s, frame)
	}
	r.Cancel()
	r.Update(up(3, 3), frame)
	if len(phases) != 2 || phases[0] != PhaseBegan || phases[1] != PhaseCancelled {
		t.Errorf("phases = %v", phases)
	}
}
