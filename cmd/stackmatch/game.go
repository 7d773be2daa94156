package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/audio"
	"github.com/lixenwraith/stackmatch/level"
	"github.com/lixenwraith/stackmatch/render"
	"github.com/lixenwraith/stackmatch/session"
)

// game binds terminal input to a session
type game struct {
	screen   tcell.Screen
	session  *session.Session
	scene    *render.Scene
	renderer *render.Renderer
	catalog  *level.Catalog
	sound    *audio.SoundManager // nil when audio is disabled
	log      *zap.Logger

	buttons tcell.ButtonMask // Last mouse button state, for press edge detection
}

// handleEvent processes one terminal event; returns false to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
		g.buttons = buttons
		if !pressed {
			return true
		}
		x, y := ev.Position()
		if c := g.renderer.CardAt(x, y); c != nil {
			g.log.Debug("card clicked", zap.Stringer("card", c), zap.Int("x", x), zap.Int("y", y))
			g.session.CardActivated(c)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'u':
		g.session.Undo()
	case 'r':
		g.session.InitLevel(g.session.Level())
	case 'n':
		lv, err := g.catalog.Next()
		if err != nil {
			g.log.Warn("next level failed", zap.Error(err))
			return true
		}
		g.session.InitLevel(lv)
	case 'm':
		if g.sound != nil {
			g.sound.SetMuted(!g.sound.Muted())
		}
	}
	return true
}

// frame advances tweens, delivers completion events and draws
func (g *game) frame() {
	g.scene.Update()
	g.session.Flush()
	g.renderer.Draw(g.session.World(), g.title(), g.muted())
}

func (g *game) title() string {
	return fmt.Sprintf(" stackmatch  %s  (%d/%d)", g.session.Level().Name, g.catalog.Index()+1, g.catalog.Len())
}

func (g *game) muted() bool {
	return g.sound == nil || g.sound.Muted()
}
