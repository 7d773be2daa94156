package rule

import (
	"slices"

	"github.com/lixenwraith/stackmatch/core"
)

// TopOf returns the valid card with strictly maximum X
// The first valid card is the initial candidate, so equal X keeps the earlier card
// Returns nil if no valid card exists
func TopOf(cards []*core.Card) *core.Card {
	var top *core.Card
	for _, c := range cards {
		if !c.Valid() {
			continue
		}
		if top == nil || c.Pos.X > top.Pos.X {
			top = c
		}
	}
	return top
}

// SortByX stable-sorts cards ascending by X in place and assigns Order = index
// Invalid entries are moved to the end and keep their previous Order
// Returns the valid prefix in rendering order (0 = bottom)
func SortByX(cards []*core.Card) []*core.Card {
	slices.SortStableFunc(cards, func(a, b *core.Card) int {
		av, bv := a.Valid(), b.Valid()
		switch {
		case av && !bv:
			return -1
		case !av && bv:
			return 1
		case !av && !bv:
			return 0
		}
		switch {
		case a.Pos.X < b.Pos.X:
			return -1
		case a.Pos.X > b.Pos.X:
			return 1
		default:
			return 0
		}
	})

	n := 0
	for _, c := range cards {
		if !c.Valid() {
			break
		}
		c.Order = n
		n++
	}
	return cards[:n]
}
