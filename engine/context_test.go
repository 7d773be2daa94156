package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine/fsm"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/parameter"
)

func TestContextLanesAreIndependent(t *testing.T) {
	ctx, err := NewContext(InstantView{}, nil)
	require.NoError(t, err)

	assert.False(t, ctx.Busy(parameter.LaneStackTransfer))
	assert.False(t, ctx.Busy(parameter.LaneStackSwap))

	require.True(t, ctx.Begin(parameter.LaneStackTransfer))
	assert.False(t, ctx.Begin(parameter.LaneStackTransfer), "begin while in flight is dropped")
	assert.True(t, ctx.Busy(parameter.LaneStackTransfer))
	assert.False(t, ctx.Busy(parameter.LaneStackSwap))

	require.True(t, ctx.Begin(parameter.LaneStackSwap))
	ctx.Settle(parameter.LaneStackTransfer)
	assert.False(t, ctx.Busy(parameter.LaneStackTransfer))
	assert.True(t, ctx.Busy(parameter.LaneStackSwap))

	region, ok := ctx.Lanes.Region(parameter.LaneStackTransfer)
	require.True(t, ok)
	assert.Equal(t, 1, region.Dropped)
	assert.Equal(t, fsm.StateIdle, region.ActiveStateID)
}

func TestContextReset(t *testing.T) {
	view := NewRecordingView()
	ctx, err := NewContext(view, nil)
	require.NoError(t, err)
	ctx.World.SetRoot(core.ZoneStack, &core.Root{Name: "stack"})

	c := ctx.World.Spawn(core.ZoneStack, core.Placement{Face: 1})
	ctx.Begin(parameter.LaneStackSwap)
	ctx.Transitions.Request(c, core.Point{X: 1}, time.Second, nil)
	ctx.PushEvent(event.EventCardAccepted, nil)

	ctx.Reset()

	assert.False(t, ctx.Busy(parameter.LaneStackSwap))
	assert.Equal(t, 0, ctx.Transitions.Pending())
	assert.Empty(t, ctx.World.Cards())
	assert.Equal(t, 0, ctx.Events.Len())
	assert.NotNil(t, ctx.Root(core.ZoneStack))
	assert.Nil(t, ctx.Root(core.ZonePlayfield))
}

func TestContextPushEventQueueFull(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	ctx, err := NewContext(InstantView{}, zap.New(obs))
	require.NoError(t, err)

	for i := 0; i < parameter.EventQueueSize; i++ {
		ctx.PushEvent(event.EventSoundRequest, i)
	}
	assert.Equal(t, 0, logs.Len())

	ctx.PushEvent(event.EventCardAccepted, nil)
	assert.Equal(t, 1, logs.FilterMessage("event dropped: queue full").Len())
	assert.Equal(t, uint64(1), ctx.Events.Dropped())

	events := ctx.Events.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, event.EventSoundRequest, events[len(events)-1].Type)
}
