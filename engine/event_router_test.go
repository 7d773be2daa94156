package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stackmatch/event"
)

type recordingHandler struct {
	types []event.EventType
	seen  []event.EventType
	onEv  func(event.GameEvent)
}

func (h *recordingHandler) EventTypes() []event.EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func TestEventRouterDispatchOrder(t *testing.T) {
	q := event.NewEventQueue()
	r := NewEventRouter(q)

	first := &recordingHandler{types: []event.EventType{event.EventCardAccepted, event.EventCardRejected}}
	second := &recordingHandler{types: []event.EventType{event.EventCardAccepted}}
	r.Register(first)
	r.Register(second)

	assert.Equal(t, 2, r.HandlerCount(event.EventCardAccepted))
	assert.True(t, r.HasHandlers(event.EventCardRejected))
	assert.False(t, r.HasHandlers(event.EventUndoApplied))

	q.Push(event.GameEvent{Type: event.EventCardRejected})
	q.Push(event.GameEvent{Type: event.EventCardAccepted})
	q.Push(event.GameEvent{Type: event.EventUndoApplied})

	assert.Equal(t, 3, r.DispatchAll())
	assert.Equal(t, []event.EventType{event.EventCardRejected, event.EventCardAccepted}, first.seen)
	assert.Equal(t, []event.EventType{event.EventCardAccepted}, second.seen)
	assert.Equal(t, 0, r.DispatchAll())
}

func TestEventRouterFlushDeliversFollowUps(t *testing.T) {
	q := event.NewEventQueue()
	r := NewEventRouter(q)

	chain := &recordingHandler{types: []event.EventType{event.EventCardActivated, event.EventCardAccepted}}
	chain.onEv = func(ev event.GameEvent) {
		if ev.Type == event.EventCardActivated {
			q.Push(event.GameEvent{Type: event.EventCardAccepted})
		}
	}
	r.Register(chain)

	q.Push(event.GameEvent{Type: event.EventCardActivated})
	assert.Equal(t, 2, r.Flush(4))
	assert.Equal(t, []event.EventType{event.EventCardActivated, event.EventCardAccepted}, chain.seen)
}

func TestEventRouterFlushBounded(t *testing.T) {
	q := event.NewEventQueue()
	r := NewEventRouter(q)

	loop := &recordingHandler{types: []event.EventType{event.EventSoundRequest}}
	loop.onEv = func(ev event.GameEvent) { q.Push(ev) }
	r.Register(loop)

	q.Push(event.GameEvent{Type: event.EventSoundRequest})
	assert.Equal(t, 3, r.Flush(3))
	assert.Equal(t, 1, q.Len())
}
