package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
)

func TestSceneTween(t *testing.T) {
	clock := engine.NewMockClock(time.Unix(0, 0))
	scene := NewScene(clock, nil)
	ts := engine.NewTransitions(scene, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	done := 0
	tr := ts.Request(c, core.Point{X: 100, Y: -40}, 200*time.Millisecond, func() { done++ })
	assert.Equal(t, 1, scene.Active())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, scene.Update())
	assert.Equal(t, core.Point{X: 50, Y: -20}, c.Pos)
	assert.Equal(t, 0, done)

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, 0, scene.Update())
	assert.True(t, tr.Done())
	assert.Equal(t, 1, done)
	assert.Equal(t, core.Point{X: 100, Y: -40}, c.Pos)
}

func TestSceneZeroDurationCompletesImmediately(t *testing.T) {
	scene := NewScene(engine.NewMockClock(time.Unix(0, 0)), nil)
	ts := engine.NewTransitions(scene, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	tr := ts.Request(c, core.Point{X: 7}, 0, nil)
	assert.True(t, tr.Done())
	assert.Equal(t, 0, scene.Active())
}

func TestSceneDropsSupersededTween(t *testing.T) {
	clock := engine.NewMockClock(time.Unix(0, 0))
	scene := NewScene(clock, nil)
	ts := engine.NewTransitions(scene, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	first := ts.Request(c, core.Point{X: 100}, 100*time.Millisecond, nil)
	clock.Advance(50 * time.Millisecond)
	scene.Update()
	require.Equal(t, 50.0, c.Pos.X)

	ts.Request(c, core.Point{X: 0}, 100*time.Millisecond, nil)
	assert.True(t, first.Superseded())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, scene.Update())
	assert.Equal(t, 25.0, c.Pos.X)
}

func TestSceneCompletionMayStartNewTween(t *testing.T) {
	clock := engine.NewMockClock(time.Unix(0, 0))
	scene := NewScene(clock, nil)
	ts := engine.NewTransitions(scene, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	ts.Request(c, core.Point{X: 10}, 10*time.Millisecond, func() {
		ts.Request(c, core.Point{X: 20}, 10*time.Millisecond, nil)
	})
	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, 1, scene.Update())
	assert.Equal(t, 10.0, c.Pos.X)
	assert.True(t, ts.InFlight(c))
}

func TestSceneRecordsParentsAndOrders(t *testing.T) {
	scene := NewScene(nil, nil)
	root := &core.Root{Name: "stack"}
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	_, ok := scene.Order(c)
	assert.False(t, ok)

	scene.Reparent(c, root)
	scene.SetOrder(c, 3)
	assert.Same(t, root, scene.Parent(c))
	o, ok := scene.Order(c)
	assert.True(t, ok)
	assert.Equal(t, 3, o)

	scene.Reset()
	assert.Nil(t, scene.Parent(c))
}
