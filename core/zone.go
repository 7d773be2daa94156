package core

// ZoneID identifies one of the two card containers
type ZoneID uint8

const (
	ZonePlayfield ZoneID = iota // Tableau, order is rule-irrelevant
	ZoneStack                   // Reserve, top is the card with maximum X
	ZoneCount
)

func (z ZoneID) String() string {
	switch z {
	case ZonePlayfield:
		return "playfield"
	case ZoneStack:
		return "stack"
	default:
		return "unknown"
	}
}

// Point is a position in design-space units
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp interpolates from p towards q, t is clamped to [0, 1]
func (p Point) Lerp(q Point, t float64) Point {
	if t <= 0 {
		return p
	}
	if t >= 1 {
		return q
	}
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Root is the spatial container a zone positions its cards against
// World position of a card = Root.Origin + Card.Pos
type Root struct {
	Name   string
	Origin Point
}

// Local converts a world position into this root's space
func (r *Root) Local(world Point) Point {
	return world.Sub(r.Origin)
}

// World converts a position in this root's space into world space
func (r *Root) World(local Point) Point {
	return r.Origin.Add(local)
}
