package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/stackmatch/core"
)

func TestTransitionApplyAndComplete(t *testing.T) {
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{X: 0})
	ts := NewTransitions(NewRecordingView(), nil)

	calls := 0
	tr := ts.Request(c, core.Point{X: 100, Y: 50}, time.Second, func() { calls++ })
	require.True(t, ts.InFlight(c))

	tr.Apply(0.5)
	assert.Equal(t, core.Point{X: 50, Y: 25}, c.Pos)

	tr.Complete()
	tr.Complete()
	assert.Equal(t, 1, calls)
	assert.Equal(t, core.Point{X: 100, Y: 50}, c.Pos)
	assert.False(t, ts.InFlight(c))

	// Settled transitions no longer write positions
	tr.Apply(0.1)
	assert.Equal(t, core.Point{X: 100, Y: 50}, c.Pos)
}

func TestTransitionsSupersede(t *testing.T) {
	view := NewRecordingView()
	ts := NewTransitions(view, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	firstDone := 0
	first := ts.Request(c, core.Point{X: 100}, time.Second, func() { firstDone++ })
	first.Apply(0.4)

	second := ts.Request(c, core.Point{X: -10}, time.Second, nil)

	assert.True(t, first.Done())
	assert.True(t, first.Superseded())
	assert.Equal(t, 1, firstDone)
	// No snap: settled where it stood
	assert.Equal(t, core.Point{X: 40}, second.From)
	assert.True(t, ts.InFlight(c))
	assert.Equal(t, 1, ts.Pending())

	first.Complete()
	assert.Equal(t, 1, firstDone)
	assert.True(t, ts.InFlight(c), "late completion of the old transition must not clear the new one")

	view.CompleteAll()
	assert.False(t, ts.InFlight(c))
	assert.Equal(t, 2, ts.Requested())
}

func TestTransitionsWithoutView(t *testing.T) {
	obsCore, logs := observer.New(zap.WarnLevel)
	ts := NewTransitions(nil, zap.New(obsCore))
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	done := false
	tr := ts.Request(c, core.Point{X: 9}, time.Second, func() { done = true })

	assert.True(t, tr.Done())
	assert.True(t, done)
	assert.Equal(t, core.Point{X: 9}, c.Pos)
	assert.Equal(t, 1, logs.Len())
}

func TestTransitionsInFlightInAndObserve(t *testing.T) {
	view := NewRecordingView()
	ts := NewTransitions(view, nil)
	a := core.NewCard(1, 0, core.ZoneStack, core.Point{})
	b := core.NewCard(2, 0, core.ZonePlayfield, core.Point{})

	var observed []*Transition
	ts.Observe(func(t *Transition) { observed = append(observed, t) })

	ta := ts.Request(a, core.Point{X: 1}, time.Second, nil)
	ts.Request(b, core.Point{X: 1}, time.Second, nil)

	assert.True(t, ts.InFlightIn(core.ZoneStack))
	assert.True(t, ts.InFlightIn(core.ZonePlayfield))

	require.True(t, view.CompleteNext())
	assert.False(t, ts.InFlightIn(core.ZoneStack))
	assert.True(t, ts.InFlightIn(core.ZonePlayfield))
	assert.Equal(t, []*Transition{ta}, observed)
}

func TestTransitionsReset(t *testing.T) {
	view := NewRecordingView()
	ts := NewTransitions(view, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	called := false
	tr := ts.Request(c, core.Point{X: 5}, time.Second, func() { called = true })
	ts.Reset()

	assert.True(t, tr.Done())
	assert.False(t, called)
	assert.Equal(t, 0, ts.Pending())
	assert.Equal(t, 0, ts.Requested())

	tr.Complete()
	assert.False(t, called)
}

func TestJoin(t *testing.T) {
	fired := 0
	j := NewJoin(2, func() { fired++ })

	j.Done()
	assert.False(t, j.Settled())
	assert.Equal(t, 1, j.Remaining())

	j.Done()
	assert.True(t, j.Settled())
	assert.Equal(t, 1, fired)

	j.Done()
	assert.Equal(t, 1, fired)
}

func TestInstantView(t *testing.T) {
	ts := NewTransitions(InstantView{}, nil)
	c := core.NewCard(1, 0, core.ZoneStack, core.Point{})

	tr := ts.Request(c, core.Point{X: 3, Y: 4}, time.Second, nil)
	assert.True(t, tr.Done())
	assert.Equal(t, core.Point{X: 3, Y: 4}, c.Pos)
	assert.Equal(t, 0, ts.Pending())
}
