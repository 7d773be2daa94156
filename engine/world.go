package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
)

// World owns every card of the level and the two zones holding them
// All mutation happens on the game loop; there is no internal locking
type World struct {
	zones [core.ZoneCount]*Zone
	cards []*core.Card

	retireHooks []func(*core.Card)
	log         *zap.Logger
}

// NewWorld creates an empty world; zone roots are attached with SetRoot
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{log: log}
	for id := core.ZoneID(0); id < core.ZoneCount; id++ {
		w.zones[id] = newZone(id)
	}
	return w
}

// SetRoot registers the spatial root of a zone
func (w *World) SetRoot(id core.ZoneID, root *core.Root) {
	if z := w.Zone(id); z != nil {
		z.Root = root
	}
}

// Zone returns the zone for id, nil for an unknown id
func (w *World) Zone(id core.ZoneID) *Zone {
	if id >= core.ZoneCount {
		return nil
	}
	return w.zones[id]
}

// Cards returns every valid card in creation order
func (w *World) Cards() []*core.Card {
	result := make([]*core.Card, 0, len(w.cards))
	for _, c := range w.cards {
		if c.Valid() {
			result = append(result, c)
		}
	}
	return result
}

// Spawn creates a card from a placement and makes it resident in zone
func (w *World) Spawn(id core.ZoneID, p core.Placement) *core.Card {
	z := w.Zone(id)
	if z == nil {
		w.log.Warn("spawn into unknown zone", zap.Stringer("zone", id))
		return nil
	}
	c := core.NewCard(p.Face, p.Suit, id, p.Pos)
	z.add(c)
	w.cards = append(w.cards, c)
	return c
}

// WorldPos returns the absolute position of c, ok=false when its zone has no root
func (w *World) WorldPos(c *core.Card) (core.Point, bool) {
	z := w.Zone(c.Zone)
	if z == nil || z.Root == nil {
		return core.Point{}, false
	}
	return z.Root.World(c.Pos), true
}

// Transfer moves c into zone to, keeping its absolute position
// Removal, insertion and the Zone field flip happen in this one call
// Returns false, with a diagnostic, when the move is not possible
func (w *World) Transfer(c *core.Card, to core.ZoneID) bool {
	if !c.Valid() {
		w.log.Debug("transfer skipped: invalid card")
		return false
	}

	src, dst := w.Zone(c.Zone), w.Zone(to)
	if src == nil || dst == nil {
		w.log.Warn("transfer skipped: unknown zone",
			zap.Stringer("from", c.Zone), zap.Stringer("to", to))
		return false
	}
	if src == dst {
		w.log.Debug("transfer skipped: same zone", zap.Stringer("card", c))
		return false
	}
	if src.Root == nil || dst.Root == nil {
		w.log.Warn("transfer skipped: zone has no root",
			zap.Stringer("from", src.ID), zap.Stringer("to", dst.ID))
		return false
	}
	if !src.Contains(c) {
		w.log.Debug("transfer skipped: card not resident", zap.Stringer("card", c))
		return false
	}

	abs := src.Root.World(c.Pos)
	src.remove(c)
	dst.add(c)
	c.Zone = to
	c.Pos = dst.Root.Local(abs)
	return true
}

// OnRetire registers a hook run when a card leaves play permanently
func (w *World) OnRetire(fn func(*core.Card)) {
	w.retireHooks = append(w.retireHooks, fn)
}

// Retire removes c from play permanently
func (w *World) Retire(c *core.Card) {
	if !c.Valid() {
		return
	}
	if z := w.Zone(c.Zone); z != nil {
		z.remove(c)
	}
	c.Retired = true
	for _, fn := range w.retireHooks {
		fn(c)
	}
}

// Clear removes all cards; roots and hooks are kept
func (w *World) Clear() {
	for _, z := range w.zones {
		z.clear()
	}
	w.cards = w.cards[:0]
}
