package internal

import (
	"container/heap"
	"time"
)

// timerEntry is a repeating callback scheduled on a clock.
type timerEntry struct {
	at     time.Duration // next deadline, relative to the clock's origin
	period time.Duration
	fn     func()

	seq   uint64 // insertion order, breaks ties between equal deadlines
	index int    // position in the heap, -1 when not scheduled
}

type timerQueue []*timerEntry

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	e := x.(*timerEntry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// TimerHeap orders repeating timers by deadline. Entries know their own
// position, so removal is O(log n) without a lookup.
type TimerHeap struct {
	queue timerQueue
	seq   uint64
}

func NewTimerHeap() *TimerHeap {
	return &TimerHeap{}
}

func (h *TimerHeap) Len() int { return h.queue.Len() }

// Schedule adds fn to run at `at`, then every period after that.
func (h *TimerHeap) Schedule(at, period time.Duration, fn func()) *timerEntry {
	e := &timerEntry{at: at, period: period, fn: fn, index: -1}
	h.Insert(e)
	return e
}

func (h *TimerHeap) Insert(e *timerEntry) {
	if e.index >= 0 {
		return
	}

	h.seq++
	e.seq = h.seq
	heap.Push(&h.queue, e)
}

func (h *TimerHeap) Remove(e *timerEntry) {
	if e.index < 0 {
		return
	}
	heap.Remove(&h.queue, e.index)
}

// Peek returns the entry with the nearest deadline, or nil.
func (h *TimerHeap) Peek() *timerEntry {
	if len(h.queue) == 0 {
		return nil
	}
	return h.queue[0]
}

// Fire reschedules e one period later and runs it. When skipMissed is set,
// a deadline that is still behind now is moved past it instead of firing
// again for every missed period.
func (h *TimerHeap) Fire(e *timerEntry, now time.Duration, skipMissed bool) {
	h.Remove(e)

	next := e.at + e.period
	if skipMissed && next <= now {
		next = now + e.period
	}
	e.at = next

	// rescheduled before running so fn can cancel itself
	h.Insert(e)
	e.fn()
}

// Drain fires every entry due at now, earliest first.
func (h *TimerHeap) Drain(now time.Duration, skipMissed bool) {
	for {
		e := h.Peek()
		if e == nil || e.at > now {
			return
		}
		h.Fire(e, now, skipMissed)
	}
}
