package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
)

const testDuration = 250 * time.Millisecond

type harness struct {
	ctx     *engine.Context
	view    *engine.RecordingView
	logs    *observer.ObservedLogs
	orderer *Orderer
	undo    *UndoStack
	mover   *Mover
	swapper *Swapper

	playRoot  *core.Root
	stackRoot *core.Root
}

// newHarness builds the coordinators around a recording view with
// the playfield at the origin and the stack 700 units above it
func newHarness(t *testing.T) *harness {
	t.Helper()
	obsCore, logs := observer.New(zap.DebugLevel)
	view := engine.NewRecordingView()
	ctx, err := engine.NewContext(view, zap.New(obsCore))
	require.NoError(t, err)

	h := &harness{
		ctx:       ctx,
		view:      view,
		logs:      logs,
		playRoot:  &core.Root{Name: "playfield"},
		stackRoot: &core.Root{Name: "stack", Origin: core.Point{Y: -700}},
	}
	ctx.World.SetRoot(core.ZonePlayfield, h.playRoot)
	ctx.World.SetRoot(core.ZoneStack, h.stackRoot)

	h.orderer = NewOrderer(ctx)
	h.undo = NewUndoStack(ctx)
	h.mover = NewMover(ctx, h.orderer, h.undo, 150, testDuration)
	h.swapper = NewSwapper(ctx, h.orderer, testDuration)
	return h
}

// withStack spawns stack cards at the given faces and X positions, then orders them
func (h *harness) withStack(cards ...[2]float64) []*core.Card {
	var out []*core.Card
	for _, fc := range cards {
		out = append(out, h.ctx.World.Spawn(core.ZoneStack, core.Placement{Face: int(fc[0]), Pos: core.Point{X: fc[1]}}))
	}
	h.orderer.Reorder()
	h.view.OrderCalls = 0
	return out
}

// defaultStack is faces 2, 3, 4 at X 250, 400, 750
func (h *harness) defaultStack() []*core.Card {
	return h.withStack([2]float64{2, 250}, [2]float64{3, 400}, [2]float64{4, 750})
}

func (h *harness) playfield(face int, x, y float64) *core.Card {
	return h.ctx.World.Spawn(core.ZonePlayfield, core.Placement{Face: face, Pos: core.Point{X: x, Y: y}})
}

// drainEvents consumes the queue and returns the event types in order
func (h *harness) drainEvents() []event.EventType {
	var types []event.EventType
	for _, ev := range h.ctx.Events.Consume() {
		types = append(types, ev.Type)
	}
	return types
}
