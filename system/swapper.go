package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
)

// Swapper exchanges a stack card with the stack top
// It runs on its own lane, independent of the transfer lane
type Swapper struct {
	ctx      *engine.Context
	orderer  *Orderer
	log      *zap.Logger
	duration time.Duration
}

func NewSwapper(ctx *engine.Context, orderer *Orderer, duration time.Duration) *Swapper {
	return &Swapper{
		ctx:      ctx,
		orderer:  orderer,
		log:      ctx.Log.Named("swapper"),
		duration: duration,
	}
}

// Activate swaps the positions of c and the current top
// The stack is reordered once, after both halves complete
// Returns the join tracking both halves, nil when nothing moved
func (s *Swapper) Activate(c *core.Card) *engine.Join {
	if s.ctx.Busy(parameter.LaneStackSwap) {
		s.log.Debug("swap dropped: lane busy", zap.String("lane", parameter.LaneStackSwap))
		return nil
	}
	if !c.Valid() {
		s.log.Debug("swap skipped: invalid card")
		return nil
	}
	if c.Zone != core.ZoneStack || !s.ctx.World.Zone(core.ZoneStack).Contains(c) {
		s.log.Debug("swap skipped: card not in stack", zap.Stringer("card", c))
		return nil
	}
	if s.ctx.Root(core.ZoneStack) == nil {
		s.log.Warn("swap skipped: stack root missing")
		return nil
	}

	top := s.orderer.Top()
	if top == nil || top == c {
		s.log.Debug("swap skipped: card is top", zap.Stringer("card", c))
		return nil
	}

	s.ctx.Begin(parameter.LaneStackSwap)
	s.ctx.PushEvent(event.EventStackSwapped, &event.MovePayload{Card: c, Top: top})

	cardPos, topPos := c.Pos, top.Pos
	join := engine.NewJoin(parameter.SwapParts, func() {
		s.ctx.Settle(parameter.LaneStackSwap)
		s.orderer.Reorder()
		s.ctx.PushEvent(event.EventSwapSettled, &event.MovePayload{Card: c, Top: top})
	})

	s.ctx.Transitions.Request(c, topPos, s.duration, join.Done)
	s.ctx.Transitions.Request(top, cardPos, s.duration, join.Done)
	return join
}
