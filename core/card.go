package core

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	faceLabels = "A23456789TJQK"
	suitRunes  = "♣♦♥♠"
)

// Card is a single playing card
// Face and Suit never change; Zone, Pos and Order are owned by the engine
type Card struct {
	ID   uuid.UUID
	Face int // 0-12 : A..K
	Suit int // 0-3 : ♣♦♥♠, not used by any rule

	Zone    ZoneID
	Pos     Point // Local to the zone root
	Order   int   // Rendering order inside the zone, 0 = bottom
	Retired bool  // Permanently out of play
}

// Placement is one entry of a level layout
type Placement struct {
	Face int
	Suit int
	Pos  Point
}

// NewCard creates a card resident in zone at pos
func NewCard(face, suit int, zone ZoneID, pos Point) *Card {
	return &Card{
		ID:   uuid.New(),
		Face: face,
		Suit: suit,
		Zone: zone,
		Pos:  pos,
	}
}

// Valid reports whether the card reference is still in play
func (c *Card) Valid() bool {
	return c != nil && !c.Retired
}

// FaceLabel returns the single-character rank, '?' for faces outside 0-12
func (c *Card) FaceLabel() rune {
	if c.Face < 0 || c.Face >= len(faceLabels) {
		return '?'
	}
	return rune(faceLabels[c.Face])
}

// SuitRune returns the suit symbol, '?' for suits outside 0-3
func (c *Card) SuitRune() rune {
	runes := []rune(suitRunes)
	if c.Suit < 0 || c.Suit >= len(runes) {
		return '?'
	}
	return runes[c.Suit]
}

func (c *Card) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%c%c@%s(%.0f,%.0f)#%s", c.FaceLabel(), c.SuitRune(), c.Zone, c.Pos.X, c.Pos.Y, c.ID.String()[:8])
}
