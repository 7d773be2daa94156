package event

import "github.com/lixenwraith/stackmatch/core"

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Input Event ===

	// EventCardActivated signals a user activation of a card
	// Trigger: Session.CardActivated (input collaborator)
	// Consumer: Dispatcher | Payload: *CardPayload
	EventCardActivated

	// EventUndoRequest asks for the most recent move to be reverted
	// Trigger: Host key binding | Consumer: Dispatcher | Payload: nil
	EventUndoRequest

	// === Move Event ===

	// EventCardAccepted signals a playfield card was taken into the stack
	// Trigger: Mover | Consumer: AudioSystem | Payload: *MovePayload
	EventCardAccepted

	// EventCardRejected signals an activation refused by the match rule
	// Trigger: Mover | Consumer: AudioSystem | Payload: *MovePayload
	EventCardRejected

	// EventTransferSettled signals an accept transition completed and the stack was reordered
	// Trigger: Mover completion callback | Payload: *CardPayload
	EventTransferSettled

	// EventStackSwapped signals a swap with the top was started
	// Trigger: Swapper | Consumer: AudioSystem | Payload: *MovePayload
	EventStackSwapped

	// EventSwapSettled signals both swap halves completed and the stack was reordered
	// Trigger: Swapper join callback | Payload: *MovePayload
	EventSwapSettled

	// === Undo Event ===

	// EventUndoApplied signals a move was reverted
	// Trigger: UndoStack | Consumer: AudioSystem | Payload: *UndoPayload
	EventUndoApplied

	// EventUndoSettled signals the return transition of an undo completed
	// Trigger: inverse completion callback | Payload: *CardPayload
	EventUndoSettled

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: AudioSystem | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Level Event ===

	// EventLevelReady signals InitLevel finished spawning cards
	// Trigger: Session | Payload: *LevelPayload
	EventLevelReady

	eventTypeCount
)

// String returns the registered event name
func (e EventType) String() string {
	if name, ok := typeToName[e]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
}

// Card extracts the subject card of the event, nil when the payload carries none
func (ev GameEvent) Card() *core.Card {
	switch p := ev.Payload.(type) {
	case *CardPayload:
		return p.Card
	case *MovePayload:
		return p.Card
	case *UndoPayload:
		return p.Card
	default:
		return nil
	}
}
