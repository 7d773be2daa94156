package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stackmatch/core"
)

func card(face int, x float64) *core.Card {
	return core.NewCard(face, 0, core.ZoneStack, core.Point{X: x})
}

func TestCanMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		top       int
		expected  bool
	}{
		{"one above", 5, 4, true},
		{"one below", 3, 4, true},
		{"equal", 4, 4, false},
		{"two apart", 6, 4, false},
		{"ace on two", 0, 1, true},
		{"king on queen", 12, 11, true},
		{"king on ace does not wrap", 12, 0, false},
		{"ace on king does not wrap", 0, 12, false},
		{"out of range face", 13, 4, false},
		{"out of range adjacent", 13, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanMatch(card(tt.candidate, 0), card(tt.top, 0)))
		})
	}
}

func TestAdjacentExhaustive(t *testing.T) {
	for a := 0; a <= 12; a++ {
		for b := 0; b <= 12; b++ {
			d := a - b
			if d < 0 {
				d = -d
			}
			assert.Equal(t, d == 1, Adjacent(a, b), "faces %d,%d", a, b)
		}
	}
}

func TestCanMatchIgnoresSuit(t *testing.T) {
	a := core.NewCard(3, 0, core.ZonePlayfield, core.Point{})
	b := core.NewCard(4, 3, core.ZoneStack, core.Point{})
	assert.True(t, CanMatch(a, b))
}
