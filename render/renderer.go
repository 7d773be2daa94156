package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/parameter"
	"github.com/lixenwraith/stackmatch/status"
)

type hitBox struct {
	card *core.Card
	x, y int
}

// Renderer draws the table onto a tcell screen and maps clicks back to cards
type Renderer struct {
	screen   tcell.Screen
	scene    *Scene
	registry *status.Registry

	hits []hitBox // Draw order, last is topmost
}

func NewRenderer(screen tcell.Screen, scene *Scene, registry *status.Registry) *Renderer {
	return &Renderer{
		screen:   screen,
		scene:    scene,
		registry: registry,
	}
}

// Project maps a world position to the top-left cell of a card glyph
func (r *Renderer) Project(p core.Point) (int, int) {
	w, h := r.screen.Size()
	areaW := w - parameter.CardCellWidth
	areaH := h - parameter.TopMargin - parameter.BottomMargin - parameter.CardCellHeight

	fx := (p.X + parameter.DesignWidth/2) / parameter.DesignWidth
	fy := (parameter.DesignHeight/2 - p.Y) / parameter.DesignHeight

	x := clampInt(int(fx*float64(areaW)), 0, max(areaW, 0))
	y := parameter.TopMargin + clampInt(int(fy*float64(areaH)), 0, max(areaH, 0))
	return x, y
}

// Draw renders both zones, the title and the status line
func (r *Renderer) Draw(world *engine.World, title string, muted bool) {
	r.screen.Clear()
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(0, 0, w, h, bg)

	r.drawText(0, 0, title, bg.Foreground(RgbTitle).Bold(true))

	r.hits = r.hits[:0]
	for _, c := range world.Zone(core.ZonePlayfield).Cards() {
		r.drawCard(world, c, false, bg)
	}

	stack := world.Zone(core.ZoneStack)
	top := stack.Top()
	cards := stack.Cards()
	slices.SortStableFunc(cards, func(a, b *core.Card) int {
		return r.order(a) - r.order(b)
	})
	for _, c := range cards {
		r.drawCard(world, c, c == top, bg)
	}

	r.drawStatus(w, h, muted)
	r.screen.Show()
}

// CardAt returns the topmost card drawn over cell (x, y), nil if none
func (r *Renderer) CardAt(x, y int) *core.Card {
	for i := len(r.hits) - 1; i >= 0; i-- {
		hb := r.hits[i]
		if x >= hb.x && x < hb.x+parameter.CardCellWidth && y >= hb.y && y < hb.y+parameter.CardCellHeight {
			if hb.card.Valid() {
				return hb.card
			}
		}
	}
	return nil
}

func (r *Renderer) order(c *core.Card) int {
	if o, ok := r.scene.Order(c); ok {
		return o
	}
	return c.Order
}

// worldPos uses the visual parent when known so the glyph follows Reparent
func (r *Renderer) worldPos(world *engine.World, c *core.Card) (core.Point, bool) {
	if root := r.scene.Parent(c); root != nil {
		return root.World(c.Pos), true
	}
	return world.WorldPos(c)
}

func (r *Renderer) drawCard(world *engine.World, c *core.Card, top bool, bg tcell.Style) {
	p, ok := r.worldPos(world, c)
	if !ok {
		return
	}
	x, y := r.Project(p)

	border := bg.Foreground(RgbCardBorder)
	if top {
		border = bg.Foreground(RgbTopBorder).Bold(true)
	}
	body := tcell.StyleDefault.Background(RgbCardFace).Foreground(suitColor(c.Suit))

	inner := parameter.CardCellWidth - 2
	r.drawText(x, y, "┌"+strings.Repeat("─", inner)+"┐", border)
	r.drawText(x, y+1, "│", border)
	r.fill(x+1, y+1, inner, 1, body)
	r.screen.SetContent(x+1, y+1, c.FaceLabel(), nil, body.Bold(true))
	r.screen.SetContent(x+2, y+1, c.SuitRune(), nil, body)
	r.drawText(x+inner+1, y+1, "│", border)
	r.drawText(x, y+2, "└"+strings.Repeat("─", inner)+"┘", border)

	r.hits = append(r.hits, hitBox{card: c, x: x, y: y})
}

func (r *Renderer) drawStatus(w, h int, muted bool) {
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	r.fill(0, h-1, w, 1, style)

	var sb strings.Builder
	if !muted {
		sb.WriteString(parameter.AudioStr)
	}
	if r.registry != nil {
		snap := r.registry.Snapshot()
		fmt.Fprintf(&sb, "acc:%d rej:%d swp:%d undo:%d ",
			snap[status.KeyAccepted], snap[status.KeyRejected], snap[status.KeySwaps], snap[status.KeyUndos])
	}
	sb.WriteString(parameter.StatusHint)
	r.drawText(0, h-1, sb.String(), style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
