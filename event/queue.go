package event

import (
	"sync/atomic"

	"github.com/lixenwraith/stackmatch/parameter"
)

// slot holds one queued event; ready is set once the producer finished writing it
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a bounded FIFO of game events
// Push is safe from several goroutines; Drain, Consume and Clear belong to the game loop
//
// A full queue refuses new events instead of overwriting queued ones: completion
// events must reach their handlers in the order they were raised
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	head    atomic.Uint64 // Next slot to read, advanced by the consumer only
	tail    atomic.Uint64 // Next slot to reserve
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, false if the queue is full
func (q *EventQueue) Push(ev GameEvent) bool {
	for {
		tail := q.tail.Load()
		if tail-q.head.Load() >= parameter.EventQueueSize {
			q.dropped.Add(1)
			return false
		}
		if q.tail.CompareAndSwap(tail, tail+1) {
			s := &q.slots[tail&parameter.EventBufferMask]
			s.ev = ev
			s.ready.Store(true)
			return true
		}
	}
}

// Drain appends every ready event to dst in FIFO order and frees their slots
// Stops at the first slot a producer is still writing
func (q *EventQueue) Drain(dst []GameEvent) []GameEvent {
	head := q.head.Load()
	tail := q.tail.Load()
	for ; head != tail; head++ {
		s := &q.slots[head&parameter.EventBufferMask]
		if !s.ready.Load() {
			break
		}
		dst = append(dst, s.ev)
		s.ev = GameEvent{}
		s.ready.Store(false)
		// Slot is reusable only after head moves past it
		q.head.Store(head + 1)
	}
	return dst
}

// Consume returns all ready events, nil if there are none
func (q *EventQueue) Consume() []GameEvent {
	if q.Len() == 0 {
		return nil
	}
	return q.Drain(make([]GameEvent, 0, q.Len()))
}

// Clear discards every ready event
func (q *EventQueue) Clear() int {
	n := 0
	head := q.head.Load()
	tail := q.tail.Load()
	for ; head != tail; head++ {
		s := &q.slots[head&parameter.EventBufferMask]
		if !s.ready.Load() {
			break
		}
		s.ev = GameEvent{}
		s.ready.Store(false)
		q.head.Store(head + 1)
		n++
	}
	return n
}

// Len returns the number of reserved slots not yet consumed
func (q *EventQueue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Dropped returns how many pushes were refused because the queue was full
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
