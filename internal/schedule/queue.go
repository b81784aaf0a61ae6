// Package schedule runs one-shot callbacks after a delay, measured on a clock that only
// moves when the frame loop advances it.
package schedule

import (
	"container/heap"
	"time"
)

type sleeper struct {
	due time.Duration
	seq uint64
	fn  func()
}

type sleepers []sleeper

func (s sleepers) Len() int { return len(s) }
func (s sleepers) Less(i, j int) bool {
	if s[i].due != s[j].due {
		return s[i].due < s[j].due
	}
	return s[i].seq < s[j].seq
}
func (s sleepers) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s *sleepers) Push(x any)   { *s = append(*s, x.(sleeper)) }
func (s *sleepers) Pop() any {
	old := *s
	n := len(old)
	x := old[n-1]
	old[n-1] = sleeper{}
	*s = old[:n-1]
	return x
}

// Queue holds pending callbacks. Posted callbacks cannot be cancelled.
// Not safe for concurrent use; post and advance from the main loop.
type Queue struct {
	now     time.Duration
	seq     uint64
	pending sleepers
}

// New returns an empty queue with its clock at zero.
func New() *Queue {
	return &Queue{}
}

// After posts fn to run once the clock has advanced by delay. A non-positive delay runs fn
// on the next Advance.
func (q *Queue) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	heap.Push(&q.pending, sleeper{due: q.now + delay, seq: q.seq, fn: fn})
}

// Advance moves the clock forward by dt and runs every callback that is due, earliest first;
// callbacks due at the same time run in the order they were posted. A callback posted while
// advancing runs in the same call if it is already due. Returns the number of callbacks run.
func (q *Queue) Advance(dt time.Duration) int {
	if dt > 0 {
		q.now += dt
	}
	ran := 0
	for len(q.pending) > 0 && q.pending[0].due <= q.now {
		s := heap.Pop(&q.pending).(sleeper)
		s.fn()
		ran++
	}
	return ran
}

// Len returns the number of callbacks still waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Now returns the queue clock.
func (q *Queue) Now() time.Duration {
	return q.now
}
