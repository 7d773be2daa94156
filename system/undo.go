package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
)

// MoveKind tags a reversible move variant
type MoveKind uint8

const (
	MoveNone MoveKind = iota
	MovePlayfieldToStack
)

func (k MoveKind) String() string {
	switch k {
	case MovePlayfieldToStack:
		return "PlayfieldToStack"
	default:
		return "None"
	}
}

// Move is a snapshot taken before a reversible move was applied
type Move interface {
	Kind() MoveKind
	// Subject is the card the move changed
	Subject() *core.Card
}

// Inverse reverts a move of the kind it was registered for
// Returns false if the move could not be reverted
type Inverse func(m Move) bool

// PlayfieldToStack is the pre-move snapshot of an accepted playfield card
type PlayfieldToStack struct {
	Card  *core.Card
	Zone  core.ZoneID
	Root  *core.Root
	Pos   core.Point
	Order int
}

func (m PlayfieldToStack) Kind() MoveKind      { return MovePlayfieldToStack }
func (m PlayfieldToStack) Subject() *core.Card { return m.Card }

// UndoStack is the LIFO log of reversible moves
type UndoStack struct {
	ctx *engine.Context
	log *zap.Logger

	moves    []Move
	inverses map[MoveKind]Inverse
}

// NewUndoStack creates an empty log; retired cards are purged from it automatically
func NewUndoStack(ctx *engine.Context) *UndoStack {
	u := &UndoStack{
		ctx:      ctx,
		log:      ctx.Log.Named("undo"),
		moves:    make([]Move, 0, 32),
		inverses: make(map[MoveKind]Inverse),
	}
	ctx.World.OnRetire(u.Forget)
	return u
}

// Register installs the inverse for kind, replacing any previous one
func (u *UndoStack) Register(kind MoveKind, inv Inverse) {
	u.inverses[kind] = inv
}

// Record pushes a move, refusing moves without a valid subject
func (u *UndoStack) Record(m Move) bool {
	if m == nil || !m.Subject().Valid() {
		u.log.Debug("record refused: invalid subject")
		return false
	}
	u.moves = append(u.moves, m)
	return true
}

// UndoLast reverts the most recent move
// Returns false if there is nothing to undo or a swap is in flight
func (u *UndoStack) UndoLast() bool {
	if u.ctx.Busy(parameter.LaneStackSwap) {
		u.log.Debug("undo dropped: lane busy", zap.String("lane", parameter.LaneStackSwap))
		return false
	}

	for len(u.moves) > 0 {
		m := u.moves[len(u.moves)-1]
		u.moves = u.moves[:len(u.moves)-1]

		card := m.Subject()
		if !card.Valid() {
			u.log.Debug("undo skipped retired card", zap.Stringer("kind", m.Kind()))
			continue
		}

		inv, ok := u.inverses[m.Kind()]
		if !ok {
			u.log.Warn("no inverse registered", zap.Stringer("kind", m.Kind()))
			return false
		}
		if !inv(m) {
			u.log.Warn("inverse failed", zap.Stringer("kind", m.Kind()), zap.Stringer("card", card))
			return false
		}

		u.ctx.PushEvent(event.EventUndoApplied, &event.UndoPayload{Card: card, Kind: m.Kind().String()})
		return true
	}
	return false
}

// Forget purges every record whose subject is c
func (u *UndoStack) Forget(c *core.Card) {
	kept := u.moves[:0]
	for _, m := range u.moves {
		if m.Subject() != c {
			kept = append(kept, m)
		}
	}
	clear(u.moves[len(kept):])
	u.moves = kept
}

// Clear empties the log
func (u *UndoStack) Clear() {
	clear(u.moves)
	u.moves = u.moves[:0]
}

// Len returns the number of recorded moves
func (u *UndoStack) Len() int {
	return len(u.moves)
}
