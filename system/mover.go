package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
	"github.com/lixenwraith/stackmatch/rule"
)

// Mover takes matching playfield cards into the stack and reverts them on undo
type Mover struct {
	ctx     *engine.Context
	orderer *Orderer
	undo    *UndoStack
	log     *zap.Logger

	offset   float64
	duration time.Duration
}

// NewMover creates the move coordinator and registers its inverse with undo
func NewMover(ctx *engine.Context, orderer *Orderer, undo *UndoStack, offset float64, duration time.Duration) *Mover {
	m := &Mover{
		ctx:      ctx,
		orderer:  orderer,
		undo:     undo,
		log:      ctx.Log.Named("mover"),
		offset:   offset,
		duration: duration,
	}
	undo.Register(MovePlayfieldToStack, m.revert)
	return m
}

// AcceptFromPlayfield moves c onto the stack, offset right of the current top,
// when its face is adjacent to the top's
// Returns the started transition, nil when nothing moved
func (m *Mover) AcceptFromPlayfield(c *core.Card) *engine.Transition {
	if m.ctx.Busy(parameter.LaneStackTransfer) {
		m.log.Debug("accept dropped: lane busy", zap.String("lane", parameter.LaneStackTransfer))
		return nil
	}
	if !c.Valid() {
		m.log.Debug("accept skipped: invalid card")
		return nil
	}
	if c.Zone != core.ZonePlayfield || !m.ctx.World.Zone(core.ZonePlayfield).Contains(c) {
		m.log.Debug("accept skipped: card not on playfield", zap.Stringer("card", c))
		return nil
	}

	playRoot, stackRoot := m.ctx.Root(core.ZonePlayfield), m.ctx.Root(core.ZoneStack)
	if playRoot == nil || stackRoot == nil {
		m.log.Warn("accept skipped: zone root missing")
		return nil
	}

	top := m.orderer.Top()
	if top == nil {
		m.log.Debug("accept skipped: stack empty", zap.Stringer("card", c))
		return nil
	}

	if !rule.CanMatch(c, top) {
		m.log.Debug("accept rejected: faces not adjacent", zap.Stringer("card", c), zap.Stringer("top", top))
		m.ctx.PushEvent(event.EventCardRejected, &event.MovePayload{Card: c, Top: top})
		return nil
	}

	snapshot := PlayfieldToStack{
		Card:  c,
		Zone:  c.Zone,
		Root:  playRoot,
		Pos:   c.Pos,
		Order: c.Order,
	}

	if !m.ctx.World.Transfer(c, core.ZoneStack) {
		return nil
	}
	if m.ctx.View != nil {
		m.ctx.View.Reparent(c, stackRoot)
	}
	m.undo.Record(snapshot)

	m.ctx.Begin(parameter.LaneStackTransfer)
	m.ctx.PushEvent(event.EventCardAccepted, &event.MovePayload{Card: c, Top: top})

	target := top.Pos.Add(core.Point{X: m.offset})
	return m.ctx.Transitions.Request(c, target, m.duration, func() {
		m.ctx.Settle(parameter.LaneStackTransfer)
		m.orderer.Reorder()
		m.ctx.PushEvent(event.EventTransferSettled, &event.CardPayload{Card: c})
	})
}

// revert returns an accepted card to its recorded zone, position and order
func (m *Mover) revert(mv Move) bool {
	snap, ok := mv.(PlayfieldToStack)
	if !ok {
		return false
	}
	c := snap.Card

	if !m.ctx.World.Transfer(c, snap.Zone) {
		return false
	}
	if m.ctx.View != nil {
		m.ctx.View.Reparent(c, snap.Root)
	}

	c.Order = snap.Order
	if m.ctx.View != nil {
		m.ctx.View.SetOrder(c, snap.Order)
	}
	m.orderer.Reorder()

	m.ctx.Transitions.Request(c, snap.Pos, m.duration, func() {
		m.ctx.PushEvent(event.EventUndoSettled, &event.CardPayload{Card: c})
	})
	return true
}
