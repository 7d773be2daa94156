package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
)

// Dispatcher routes card activations by the zone the card is in and handles undo requests
type Dispatcher struct {
	mover   *Mover
	swapper *Swapper
	undo    *UndoStack
	log     *zap.Logger
}

func NewDispatcher(ctx *engine.Context, mover *Mover, swapper *Swapper, undo *UndoStack) *Dispatcher {
	return &Dispatcher{
		mover:   mover,
		swapper: swapper,
		undo:    undo,
		log:     ctx.Log.Named("dispatcher"),
	}
}

// EventTypes returns the event types Dispatcher handles
func (d *Dispatcher) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCardActivated,
		event.EventUndoRequest,
	}
}

// HandleEvent processes activation and undo events
func (d *Dispatcher) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventUndoRequest:
		d.undo.UndoLast()

	case event.EventCardActivated:
		c := ev.Card()
		if !c.Valid() {
			d.log.Debug("activation ignored: invalid card")
			return
		}
		switch c.Zone {
		case core.ZonePlayfield:
			d.mover.AcceptFromPlayfield(c)
		case core.ZoneStack:
			d.swapper.Activate(c)
		default:
			d.log.Debug("activation ignored: unknown zone", zap.Stringer("card", c))
		}
	}
}
