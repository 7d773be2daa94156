package engine

import (
	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/rule"
)

// Zone is an ordered card container with a spatial root
// The membership slice keeps the order of the last sort so ties stay stable
type Zone struct {
	ID   core.ZoneID
	Root *core.Root

	cards []*core.Card
}

func newZone(id core.ZoneID) *Zone {
	return &Zone{
		ID:    id,
		cards: make([]*core.Card, 0, 16),
	}
}

// Cards returns a copy of the valid members in membership order
func (z *Zone) Cards() []*core.Card {
	result := make([]*core.Card, 0, len(z.cards))
	for _, c := range z.cards {
		if c.Valid() {
			result = append(result, c)
		}
	}
	return result
}

// Len returns the number of valid members
func (z *Zone) Len() int {
	n := 0
	for _, c := range z.cards {
		if c.Valid() {
			n++
		}
	}
	return n
}

// Contains reports whether c is a member of this zone
func (z *Zone) Contains(c *core.Card) bool {
	if c == nil {
		return false
	}
	for _, m := range z.cards {
		if m == c {
			return true
		}
	}
	return false
}

// Top returns the member with maximum X, nil when empty
func (z *Zone) Top() *core.Card {
	return rule.TopOf(z.cards)
}

// Reorder re-sorts the membership by X and assigns fresh order indices
// Returns the valid members bottom to top
func (z *Zone) Reorder() []*core.Card {
	ordered := rule.SortByX(z.cards)
	result := make([]*core.Card, len(ordered))
	copy(result, ordered)
	return result
}

func (z *Zone) add(c *core.Card) {
	z.cards = append(z.cards, c)
}

func (z *Zone) remove(c *core.Card) bool {
	for i, m := range z.cards {
		if m == c {
			// Preserve relative order of the remaining members
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (z *Zone) clear() {
	z.cards = z.cards[:0]
}
