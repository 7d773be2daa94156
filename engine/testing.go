package engine

import (
	"github.com/lixenwraith/stackmatch/core"
)

// InstantView completes every transition as soon as it is animated
// Used by headless hosts and tests that do not care about timing
type InstantView struct{}

func (InstantView) Animate(t *Transition)                  { t.Complete() }
func (InstantView) Reparent(c *core.Card, root *core.Root) {}
func (InstantView) SetOrder(c *core.Card, order int)       {}

// Reparenting is one recorded Reparent call
type Reparenting struct {
	Card *core.Card
	Root *core.Root
}

// RecordingView records every call and holds transitions until told to complete them
type RecordingView struct {
	Animated   []*Transition // Every transition ever animated, in request order
	Reparented []Reparenting
	Orders     map[*core.Card]int // Last order set per card
	OrderCalls int
}

// NewRecordingView creates an empty recording view
func NewRecordingView() *RecordingView {
	return &RecordingView{Orders: make(map[*core.Card]int)}
}

func (v *RecordingView) Animate(t *Transition) {
	v.Animated = append(v.Animated, t)
}

func (v *RecordingView) Reparent(c *core.Card, root *core.Root) {
	v.Reparented = append(v.Reparented, Reparenting{Card: c, Root: root})
}

func (v *RecordingView) SetOrder(c *core.Card, order int) {
	v.Orders[c] = order
	v.OrderCalls++
}

// Pending returns animated transitions that have not settled
func (v *RecordingView) Pending() []*Transition {
	var result []*Transition
	for _, t := range v.Animated {
		if !t.Done() {
			result = append(result, t)
		}
	}
	return result
}

// CompleteNext completes the oldest unsettled transition
// Returns false if nothing is pending
func (v *RecordingView) CompleteNext() bool {
	for _, t := range v.Animated {
		if !t.Done() {
			t.Complete()
			return true
		}
	}
	return false
}

// CompleteAll completes pending transitions, including ones requested by completions
// Returns the number completed
func (v *RecordingView) CompleteAll() int {
	n := 0
	for v.CompleteNext() {
		n++
	}
	return n
}
