package event

import "github.com/lixenwraith/stackmatch/core"

// CardPayload carries the card an event is about
type CardPayload struct {
	Card *core.Card
}

// MovePayload describes an accepted, rejected or swapped move
type MovePayload struct {
	Card *core.Card // Activated card
	Top  *core.Card // Stack top at the time of the decision
}

// UndoPayload describes a reverted move
type UndoPayload struct {
	Card *core.Card
	Kind string // Name of the reverted move kind
}

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// LevelPayload summarises a freshly initialised level
type LevelPayload struct {
	Name      string
	Playfield int
	Stack     int
}
