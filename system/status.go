package system

import (
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/status"
)

// StatusSystem counts moves for the status line
type StatusSystem struct {
	registry *status.Registry
}

func NewStatusSystem(registry *status.Registry) *StatusSystem {
	// Register keys up front so the status line has a stable layout
	for _, key := range []string{status.KeyAccepted, status.KeyRejected, status.KeySwaps, status.KeyUndos} {
		registry.Ints.Get(key)
	}
	return &StatusSystem{registry: registry}
}

// EventTypes returns the event types StatusSystem handles
func (s *StatusSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCardAccepted,
		event.EventCardRejected,
		event.EventStackSwapped,
		event.EventUndoApplied,
		event.EventLevelReady,
	}
}

func (s *StatusSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCardAccepted:
		s.registry.Ints.Get(status.KeyAccepted).Add(1)
	case event.EventCardRejected:
		s.registry.Ints.Get(status.KeyRejected).Add(1)
	case event.EventStackSwapped:
		s.registry.Ints.Get(status.KeySwaps).Add(1)
	case event.EventUndoApplied:
		s.registry.Ints.Get(status.KeyUndos).Add(1)
	case event.EventLevelReady:
		s.registry.ResetInts()
	}
}
