package render

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
)

type tween struct {
	t     *engine.Transition
	start time.Time
}

// Scene is the terminal view of the card table
// It tracks each card's visual parent and draw order and drives tweens from a clock
// All methods run on the game loop
type Scene struct {
	clock   engine.Clock
	tweens  []tween
	parents map[*core.Card]*core.Root
	orders  map[*core.Card]int
	log     *zap.Logger
}

func NewScene(clock engine.Clock, log *zap.Logger) *Scene {
	if clock == nil {
		clock = engine.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		clock:   clock,
		parents: make(map[*core.Card]*core.Root),
		orders:  make(map[*core.Card]int),
		log:     log.Named("scene"),
	}
}

// Animate starts a tween; zero-length transitions complete immediately
func (s *Scene) Animate(t *engine.Transition) {
	if t.Duration <= 0 {
		t.Complete()
		return
	}
	s.tweens = append(s.tweens, tween{t: t, start: s.clock.Now()})
}

// Reparent records the visual parent of c
func (s *Scene) Reparent(c *core.Card, root *core.Root) {
	s.parents[c] = root
}

// SetOrder records the draw order of c inside its zone
func (s *Scene) SetOrder(c *core.Card, order int) {
	s.orders[c] = order
}

// Update advances every tween to the current time and completes finished ones
// Returns the number of tweens still running
func (s *Scene) Update() int {
	now := s.clock.Now()

	var finished []*engine.Transition
	active := s.tweens[:0]
	for _, tw := range s.tweens {
		if tw.t.Done() {
			// Settled elsewhere, e.g. superseded by a newer request
			continue
		}
		progress := float64(now.Sub(tw.start)) / float64(tw.t.Duration)
		if progress >= 1 {
			finished = append(finished, tw.t)
			continue
		}
		tw.t.Apply(progress)
		active = append(active, tw)
	}
	clear(s.tweens[len(active):])
	s.tweens = active

	// Completions may start new tweens, which then join s.tweens
	for _, t := range finished {
		t.Complete()
	}
	return len(s.tweens)
}

// Active returns the number of running tweens
func (s *Scene) Active() int {
	return len(s.tweens)
}

// Parent returns the visual parent of c, nil if never reparented
func (s *Scene) Parent(c *core.Card) *core.Root {
	return s.parents[c]
}

// Order returns the draw order of c, ok=false if never set
func (s *Scene) Order(c *core.Card) (int, bool) {
	o, ok := s.orders[c]
	return o, ok
}

// Reset drops every tween and card record without completing anything
func (s *Scene) Reset() {
	if len(s.tweens) > 0 {
		s.log.Debug("dropping running tweens", zap.Int("count", len(s.tweens)))
	}
	s.tweens = s.tweens[:0]
	clear(s.parents)
	clear(s.orders)
}
