package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
)

// Orderer binds the top and ordering rules to the stack zone
// Reordering while a stack card is mid-transition is deferred until the last
// such transition settles
type Orderer struct {
	ctx *engine.Context
	log *zap.Logger

	deferred bool
	reorders int
}

// NewOrderer creates the stack orderer and subscribes it to transition completions
func NewOrderer(ctx *engine.Context) *Orderer {
	o := &Orderer{
		ctx: ctx,
		log: ctx.Log.Named("orderer"),
	}
	ctx.Transitions.Observe(o.onSettled)
	return o
}

// Top returns the playable stack card, nil when the stack is empty
func (o *Orderer) Top() *core.Card {
	return o.ctx.World.Zone(core.ZoneStack).Top()
}

// Reorder recomputes stack rendering order from X and forwards it to the view
// Returns false if the reorder was deferred
func (o *Orderer) Reorder() bool {
	if o.ctx.Transitions.InFlightIn(core.ZoneStack) {
		if !o.deferred {
			o.log.Debug("reorder deferred: stack transition in flight")
		}
		o.deferred = true
		return false
	}

	o.deferred = false
	o.reorders++
	for _, c := range o.ctx.World.Zone(core.ZoneStack).Reorder() {
		if o.ctx.View != nil {
			o.ctx.View.SetOrder(c, c.Order)
		}
	}
	return true
}

// Deferred reports whether a reorder is waiting for stack transitions to settle
func (o *Orderer) Deferred() bool {
	return o.deferred
}

// Reorders returns the number of reorders performed
func (o *Orderer) Reorders() int {
	return o.reorders
}

func (o *Orderer) onSettled(*engine.Transition) {
	if o.deferred && !o.ctx.Transitions.InFlightIn(core.ZoneStack) {
		o.Reorder()
	}
}

// Reset drops a pending deferred reorder
func (o *Orderer) Reset() {
	o.deferred = false
	o.reorders = 0
}
