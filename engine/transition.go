package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
)

// View is the presentation collaborator the core drives
// Implementations must call Transition.Complete exactly once per Animate,
// on the game loop goroutine
type View interface {
	// Animate moves t.Card from t.From to t.To over t.Duration
	Animate(t *Transition)
	// Reparent attaches the card's visual to root, keeping its absolute position
	Reparent(c *core.Card, root *core.Root)
	// SetOrder sets the rendering order of the card inside its zone, 0 = bottom
	SetOrder(c *core.Card, order int)
}

// Transition is a request to move one card to a target position over time
// Positions are local to the card's zone root at request time
type Transition struct {
	Card     *core.Card
	From     core.Point
	To       core.Point
	Duration time.Duration

	settled    bool
	superseded bool
	onDone     []func()
}

// Apply writes the interpolated position for progress in [0, 1]
// No effect after the transition settled
func (t *Transition) Apply(progress float64) {
	if t.settled {
		return
	}
	t.Card.Pos = t.From.Lerp(t.To, progress)
}

// Complete snaps the card to To and runs completion callbacks
// Subsequent calls are ignored
func (t *Transition) Complete() {
	t.settle(true)
}

// Done reports whether completion callbacks have run
func (t *Transition) Done() bool {
	return t.settled
}

// Superseded reports whether a later request for the same card settled this one early
func (t *Transition) Superseded() bool {
	return t.superseded
}

func (t *Transition) onComplete(fn func()) {
	if fn != nil {
		t.onDone = append(t.onDone, fn)
	}
}

func (t *Transition) settle(snap bool) {
	if t.settled {
		return
	}
	t.settled = true
	if snap {
		t.Card.Pos = t.To
	}
	callbacks := t.onDone
	t.onDone = nil
	for _, fn := range callbacks {
		fn()
	}
}

// abandon marks the transition settled without running callbacks
func (t *Transition) abandon() {
	t.settled = true
	t.onDone = nil
}

// Join fires its callback once after Parts completions
type Join struct {
	Parts     int
	remaining int
	fn        func()
	fired     bool
}

// NewJoin creates a join waiting for n parts
func NewJoin(n int, fn func()) *Join {
	return &Join{
		Parts:     n,
		remaining: n,
		fn:        fn,
	}
}

// Done reports one part complete; the callback runs when the count reaches Parts
func (j *Join) Done() {
	if j.fired {
		return
	}
	j.remaining--
	if j.remaining > 0 {
		return
	}
	j.fired = true
	if j.fn != nil {
		j.fn()
	}
}

// Remaining returns the number of parts not yet reported
func (j *Join) Remaining() int {
	return j.remaining
}

// Settled reports whether the join callback has run
func (j *Join) Settled() bool {
	return j.fired
}

// Transitions tracks in-flight transitions, at most one per card
type Transitions struct {
	view      View
	inflight  map[*core.Card]*Transition
	observers []func(*Transition)
	requested int
	log       *zap.Logger
}

// NewTransitions creates a tracker forwarding requests to view
func NewTransitions(view View, log *zap.Logger) *Transitions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transitions{
		view:     view,
		inflight: make(map[*core.Card]*Transition),
		log:      log,
	}
}

// Observe registers fn to run after every settled transition, after its own callbacks
func (ts *Transitions) Observe(fn func(*Transition)) {
	ts.observers = append(ts.observers, fn)
}

// Request starts a transition of c from its current position to to
// A transition already in flight for c is settled where it stands first,
// its callbacks running exactly once at that moment
// Without a view the transition completes immediately
func (ts *Transitions) Request(c *core.Card, to core.Point, d time.Duration, onDone func()) *Transition {
	if prev, ok := ts.inflight[c]; ok {
		delete(ts.inflight, c)
		prev.superseded = true
		ts.log.Debug("transition superseded", zap.Stringer("card", c))
		prev.settle(false)
	}

	t := &Transition{
		Card:     c,
		From:     c.Pos,
		To:       to,
		Duration: d,
	}
	ts.inflight[c] = t
	ts.requested++

	t.onComplete(func() {
		if ts.inflight[c] == t {
			delete(ts.inflight, c)
		}
	})
	t.onComplete(onDone)
	t.onComplete(func() {
		for _, fn := range ts.observers {
			fn(t)
		}
	})

	if ts.view == nil {
		ts.log.Warn("no view attached, completing transition immediately", zap.Stringer("card", c))
		t.Complete()
		return t
	}
	ts.view.Animate(t)
	return t
}

// InFlight reports whether c has an unsettled transition
func (ts *Transitions) InFlight(c *core.Card) bool {
	_, ok := ts.inflight[c]
	return ok
}

// InFlightIn reports whether any card currently resident in zone is in flight
func (ts *Transitions) InFlightIn(zone core.ZoneID) bool {
	for c := range ts.inflight {
		if c.Zone == zone {
			return true
		}
	}
	return false
}

// Pending returns the number of unsettled transitions
func (ts *Transitions) Pending() int {
	return len(ts.inflight)
}

// Requested returns the number of transitions requested since creation or reset
func (ts *Transitions) Requested() int {
	return ts.requested
}

// Reset abandons every in-flight transition without running callbacks
func (ts *Transitions) Reset() {
	for c, t := range ts.inflight {
		t.abandon()
		delete(ts.inflight, c)
	}
	ts.requested = 0
}
