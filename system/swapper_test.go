package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
)

func TestSwapWithTop(t *testing.T) {
	h := newHarness(t)
	stack := h.defaultStack()
	bottom, top := stack[0], stack[2]
	reorders := h.orderer.Reorders()

	join := h.swapper.Activate(bottom)
	require.NotNil(t, join)
	assert.True(t, h.ctx.Busy(parameter.LaneStackSwap))
	assert.False(t, h.ctx.Busy(parameter.LaneStackTransfer))

	require.Len(t, h.view.Animated, 2)
	assert.Same(t, bottom, h.view.Animated[0].Card)
	assert.Equal(t, core.Point{X: 750}, h.view.Animated[0].To)
	assert.Same(t, top, h.view.Animated[1].Card)
	assert.Equal(t, core.Point{X: 250}, h.view.Animated[1].To)
	assert.Equal(t, []event.EventType{event.EventStackSwapped}, h.drainEvents())

	require.True(t, h.view.CompleteNext())
	assert.False(t, join.Settled())
	assert.Equal(t, reorders, h.orderer.Reorders())
	assert.True(t, h.ctx.Busy(parameter.LaneStackSwap))

	require.True(t, h.view.CompleteNext())
	assert.True(t, join.Settled())
	assert.Equal(t, reorders+1, h.orderer.Reorders())
	assert.False(t, h.ctx.Busy(parameter.LaneStackSwap))

	assert.Same(t, bottom, h.orderer.Top())
	assert.Equal(t, 2, bottom.Order)
	assert.Equal(t, 0, top.Order)
	assert.Equal(t, []event.EventType{event.EventSwapSettled}, h.drainEvents())
}

func TestSwapNoOps(t *testing.T) {
	t.Run("top card", func(t *testing.T) {
		h := newHarness(t)
		stack := h.defaultStack()
		assert.Nil(t, h.swapper.Activate(stack[2]))
		assert.Empty(t, h.view.Animated)
		assert.False(t, h.ctx.Busy(parameter.LaneStackSwap))
	})

	t.Run("playfield card", func(t *testing.T) {
		h := newHarness(t)
		h.defaultStack()
		assert.Nil(t, h.swapper.Activate(h.playfield(3, 0, 0)))
	})

	t.Run("invalid card", func(t *testing.T) {
		h := newHarness(t)
		stack := h.defaultStack()
		assert.Nil(t, h.swapper.Activate(nil))
		h.ctx.World.Retire(stack[0])
		assert.Nil(t, h.swapper.Activate(stack[0]))
	})

	t.Run("missing root", func(t *testing.T) {
		h := newHarness(t)
		stack := h.defaultStack()
		h.ctx.World.SetRoot(core.ZoneStack, nil)
		assert.Nil(t, h.swapper.Activate(stack[0]))
	})
}

func TestSwapDroppedWhileInFlight(t *testing.T) {
	h := newHarness(t)
	stack := h.defaultStack()

	require.NotNil(t, h.swapper.Activate(stack[0]))
	assert.Nil(t, h.swapper.Activate(stack[1]))
	assert.Len(t, h.view.Animated, 2)

	h.view.CompleteAll()
	assert.Equal(t, core.Point{X: 400}, stack[1].Pos)
}

func TestSwapAndAcceptUseSeparateLanes(t *testing.T) {
	h := newHarness(t)
	stack := h.defaultStack()
	c := h.playfield(3, 100, 200)

	require.NotNil(t, h.swapper.Activate(stack[0]))
	require.NotNil(t, h.mover.AcceptFromPlayfield(c))
	assert.True(t, h.ctx.Busy(parameter.LaneStackSwap))
	assert.True(t, h.ctx.Busy(parameter.LaneStackTransfer))

	h.view.CompleteAll()
	assert.False(t, h.ctx.Busy(parameter.LaneStackSwap))
	assert.False(t, h.ctx.Busy(parameter.LaneStackTransfer))
	assert.False(t, h.orderer.Deferred())

	// Stack order strictly follows X once everything settled
	cards := h.ctx.World.Zone(core.ZoneStack).Cards()
	for i := 1; i < len(cards); i++ {
		assert.Less(t, cards[i-1].Pos.X, cards[i].Pos.X)
		assert.Equal(t, i, cards[i].Order)
	}
	assert.Same(t, c, h.orderer.Top())
}
