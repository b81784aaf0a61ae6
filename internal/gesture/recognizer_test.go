package gesture

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const frame = 16 * time.Millisecond

func down(x, y float32) Sample { return Sample{Down: true, Pos: mgl32.Vec2{x, y}} }
func up(x, y float32) Sample   { return Sample{Pos: mgl32.Vec2{x, y}} }

type step struct {
	kind  Kind
	phase Phase
}

func run(r *Recognizer, samples ...Sample) []step {
	var out []step
	for _, s := range samples {
		for _, ev := range r.Update(s, frame) {
			out = append(out, step{ev.Kind, ev.Phase})
		}
	}
	return out
}

// hold returns n frames of the pointer resting at (x, y).
func hold(x, y float32, n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = down(x, y)
	}
	return out
}

func seq(parts ...[]Sample) []Sample {
	var out []Sample
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestRecognizer(t *testing.T) {
	longFrames := int(DefaultLongPressDuration/frame) + 2

	tests := []struct {
		name    string
		samples []Sample
		want    []step
	}{
		{
			name:    "tap",
			samples: []Sample{down(100, 100), down(100, 100), up(100, 100)},
			want:    []step{{KindTap, 0}},
		},
		{
			name:    "jitter inside threshold is still a tap",
			samples: []Sample{down(100, 100), down(104, 103), down(97, 98), up(97, 98)},
			want:    []step{{KindTap, 0}},
		},
		{
			name:    "pan",
			samples: []Sample{down(100, 100), down(115, 100), down(130, 100), up(130, 100)},
			want:    []step{{KindPan, PhaseBegan}, {KindPan, PhaseChanged}, {KindPan, PhaseEnded}},
		},
		{
			name:    "pan released after moving",
			samples: []Sample{down(100, 100), down(130, 100), up(150, 100)},
			want:    []step{{KindPan, PhaseBegan}, {KindPan, PhaseChanged}, {KindPan, PhaseEnded}},
		},
		{
			name:    "long press released after moving",
			samples: seq(hold(50, 50, longFrames), []Sample{up(70, 50)}),
			want:    []step{{KindLongPress, PhaseBegan}, {KindLongPress, PhaseChanged}, {KindLongPress, PhaseEnded}},
		},
		{
			name:    "pan holding still emits nothing",
			samples: []Sample{down(0, 0), down(0, 20), down(0, 20), down(0, 20), up(0, 20)},
			want:    []step{{KindPan, PhaseBegan}, {KindPan, PhaseEnded}},
		},
		{
			name:    "long press",
			samples: seq(hold(50, 50, longFrames), []Sample{up(50, 50)}),
			want:    []step{{KindLongPress, PhaseBegan}, {KindLongPress, PhaseEnded}},
		},
		{
			name:    "long press then move",
			samples: seq(hold(50, 50, longFrames), []Sample{down(90, 50), up(90, 50)}),
			want:    []step{{KindLongPress, PhaseBegan}, {KindLongPress, PhaseChanged}, {KindLongPress, PhaseEnded}},
		},
		{
			name:    "pan never becomes a long press",
			samples: seq([]Sample{down(0, 0)}, hold(0, 40, longFrames), []Sample{up(0, 40)}),
			want:    []step{{KindPan, PhaseBegan}, {KindPan, PhaseEnded}},
		},
		{
			name:    "hover emits nothing",
			samples: []Sample{up(0, 0), up(10, 10), up(40, 40)},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(NewRecognizer(Config{}), tt.samples...)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPanTranslationAccumulates(t *testing.T) {
	r := NewRecognizer(Config{})
	r.Update(down(100, 100), frame)

	evs := r.Update(down(112, 95), frame)
	if len(evs) != 1 || evs[0].Phase != PhaseBegan {
		t.Fatalf("events = %+v", evs)
	}
	p := evs[0].Pan
	if got := p.Translation(); got != (mgl32.Vec2{12, -5}) {
		t.Errorf("began translation = %v, want (12,-5)", got)
	}

	evs = r.Update(down(120, 95), frame)
	if evs[0].Pan != p {
		t.Fatal("pan pointer changed during gesture")
	}
	if got := p.Translation(); got != (mgl32.Vec2{20, -5}) {
		t.Errorf("translation = %v, want (20,-5)", got)
	}

	p.SetTranslation(mgl32.Vec2{})
	r.Update(down(123, 99), frame)
	if got := p.Translation(); got != (mgl32.Vec2{3, 4}) {
		t.Errorf("translation after reset = %v, want (3,4)", got)
	}
}

func TestReleaseFrameMovementReachesTranslation(t *testing.T) {
	r := NewRecognizer(Config{})
	r.Update(down(0, 0), frame)
	p := r.Update(down(30, 0), frame)[0].Pan
	p.SetTranslation(mgl32.Vec2{})

	evs := r.Update(up(50, 10), frame)
	if len(evs) != 2 || evs[0].Phase != PhaseChanged || evs[1].Phase != PhaseEnded {
		t.Fatalf("release events = %+v", evs)
	}
	if evs[0].Pos != (mgl32.Vec2{50, 10}) || evs[1].Pos != (mgl32.Vec2{50, 10}) {
		t.Errorf("positions = %v, %v, want (50,10)", evs[0].Pos, evs[1].Pos)
	}
	if got := p.Translation(); got != (mgl32.Vec2{20, 10}) {
		t.Errorf("translation = %v, want (20,10)", got)
	}
	if r.Active() {
		t.Error("recognizer still active after release")
	}
}

func TestLongPressDurationIsConfigurable(t *testing.T) {
	r := NewRecognizer(Config{LongPressDuration: 3 * frame})
	got := run(r, down(0, 0), down(0, 0), down(0, 0))
	if len(got) != 0 {
		t.Fatalf("began early: %v", got)
	}
	got = run(r, down(0, 0))
	if len(got) != 1 || got[0] != (step{KindLongPress, PhaseBegan}) {
		t.Errorf("got %v, want long press began", got)
	}
}

func TestMoveThresholdIsConfigurable(t *testing.T) {
	r := NewRecognizer(Config{MoveThreshold: 50})
	got := run(r, down(0, 0), down(40, 0), up(40, 0))
	if len(got) != 1 || got[0].kind != KindTap {
		t.Errorf("got %v, want tap", got)
	}
}

func TestCancel(t *testing.T) {
	r := NewRecognizer(Config{})
	run(r, down(0, 0), down(30, 0))

	evs := r.Cancel()
	if len(evs) != 1 || evs[0].Kind != KindPan || evs[0].Phase != PhaseCancelled {
		t.Fatalf("Cancel() = %+v", evs)
	}
	// The rest of the press is swallowed, including the release.
	if got := run(r, down(60, 0), up(60, 0)); len(got) != 0 {
		t.Errorf("events after cancel: %v", got)
	}
	if r.Active() {
		t.Error("recognizer still active after release")
	}
	if got := run(r, down(0, 0), up(0, 0)); len(got) != 1 || got[0].kind != KindTap {
		t.Errorf("next press = %v, want tap", got)
	}
}

func TestCancelWhenIdle(t *testing.T) {
	r := NewRecognizer(Config{})
	if evs := r.Cancel(); evs != nil {
		t.Errorf("Cancel() on idle = %+v", evs)
	}
	if r.Active() {
		t.Error("idle recognizer became active")
	}
}
