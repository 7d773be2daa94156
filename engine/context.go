package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine/fsm"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
)

// Context holds the state shared by every system of a session
// All fields are owned by the game loop goroutine except Events, which accepts
// pushes from any goroutine
type Context struct {
	// ===== Immutable After Init =====

	World       *World
	View        View
	Transitions *Transitions
	Lanes       *fsm.Machine // Busy lanes, one region per coordinator
	Events      *event.EventQueue
	Log         *zap.Logger
}

// NewContext wires a world, a transition tracker and both busy lanes around view
func NewContext(view View, log *zap.Logger) (*Context, error) {
	if log == nil {
		log = zap.NewNop()
	}

	lanes := fsm.NewMachine(fsm.DefaultRules()...)
	for _, lane := range []string{parameter.LaneStackTransfer, parameter.LaneStackSwap} {
		if err := lanes.SpawnRegion(lane, fsm.StateIdle); err != nil {
			return nil, fmt.Errorf("spawn lane %s: %w", lane, err)
		}
	}
	lanes.RegisterAction(fsm.StateInFlight, func(region string, from, to fsm.StateID) {
		log.Debug("lane busy", zap.String("lane", region))
	})
	lanes.RegisterAction(fsm.StateIdle, func(region string, from, to fsm.StateID) {
		log.Debug("lane idle", zap.String("lane", region))
	})

	return &Context{
		World:       NewWorld(log),
		View:        view,
		Transitions: NewTransitions(view, log),
		Lanes:       lanes,
		Events:      event.NewEventQueue(),
		Log:         log,
	}, nil
}

// PushEvent queues an event for the next dispatch
func (ctx *Context) PushEvent(eventType event.EventType, payload any) {
	if !ctx.Events.Push(event.GameEvent{Type: eventType, Payload: payload}) {
		ctx.Log.Warn("event dropped: queue full", zap.Stringer("type", eventType))
	}
}

// Busy reports whether lane has a transition in flight
func (ctx *Context) Busy(lane string) bool {
	return ctx.Lanes.Busy(lane)
}

// Begin moves lane to in flight, false if it already was
func (ctx *Context) Begin(lane string) bool {
	return ctx.Lanes.HandleEvent(lane, fsm.TriggerBegin)
}

// Settle returns lane to idle
func (ctx *Context) Settle(lane string) {
	ctx.Lanes.HandleEvent(lane, fsm.TriggerSettle)
}

// Root returns the spatial root of zone, nil if none was attached
func (ctx *Context) Root(zone core.ZoneID) *core.Root {
	if z := ctx.World.Zone(zone); z != nil {
		return z.Root
	}
	return nil
}

// Reset abandons in-flight transitions, idles both lanes and empties the world
// Roots and the view are kept
func (ctx *Context) Reset() {
	ctx.Transitions.Reset()
	ctx.Lanes.Reset()
	ctx.World.Clear()
	ctx.Events.Clear()
}
