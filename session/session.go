// Package session wires the card rules, coordinators and event routing behind
// the small surface a host drives: level init, card activation and undo
package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/event"
	"github.com/lixenwraith/stackmatch/level"
	"github.com/lixenwraith/stackmatch/parameter"
	"github.com/lixenwraith/stackmatch/status"
	"github.com/lixenwraith/stackmatch/system"
)

var (
	ErrNoView = errors.New("no view configured")
	ErrNoRoot = errors.New("zone root not configured")
)

// Options configures a Session
// View and both roots are required; everything else has a default
type Options struct {
	View          engine.View
	PlayfieldRoot *core.Root
	StackRoot     *core.Root

	Logger *zap.Logger
	Sound  system.SoundPlayer // nil disables sound cues
	Status *status.Registry   // nil allocates a private registry

	TransitionDuration time.Duration
	StackOffset        float64
}

// Session is one table of the game
// All methods must be called from the game loop goroutine
type Session struct {
	ctx     *engine.Context
	router  *engine.EventRouter
	orderer *system.Orderer
	undo    *system.UndoStack
	mover   *system.Mover
	swapper *system.Swapper
	status  *status.Registry

	roots [core.ZoneCount]*core.Root
	level level.Level
	log   *zap.Logger
}

// New validates opts and builds a session with an empty table
func New(opts Options) (*Session, error) {
	if opts.View == nil {
		return nil, ErrNoView
	}
	if opts.PlayfieldRoot == nil {
		return nil, fmt.Errorf("playfield: %w", ErrNoRoot)
	}
	if opts.StackRoot == nil {
		return nil, fmt.Errorf("stack: %w", ErrNoRoot)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.TransitionDuration <= 0 {
		opts.TransitionDuration = parameter.TransitionDuration
	}
	if opts.StackOffset <= 0 {
		opts.StackOffset = parameter.StackOffset
	}

	ctx, err := engine.NewContext(opts.View, opts.Logger)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}

	s := &Session{
		ctx:    ctx,
		router: engine.NewEventRouter(ctx.Events),
		status: opts.Status,
		log:    opts.Logger.Named("session"),
	}
	s.roots[core.ZonePlayfield] = opts.PlayfieldRoot
	s.roots[core.ZoneStack] = opts.StackRoot
	ctx.World.SetRoot(core.ZonePlayfield, opts.PlayfieldRoot)
	ctx.World.SetRoot(core.ZoneStack, opts.StackRoot)

	s.orderer = system.NewOrderer(ctx)
	s.undo = system.NewUndoStack(ctx)
	s.mover = system.NewMover(ctx, s.orderer, s.undo, opts.StackOffset, opts.TransitionDuration)
	s.swapper = system.NewSwapper(ctx, s.orderer, opts.TransitionDuration)

	s.router.Register(system.NewDispatcher(ctx, s.mover, s.swapper, s.undo))
	s.router.Register(system.NewAudioSystem(opts.Sound))
	s.router.Register(system.NewStatusSystem(opts.Status))

	return s, nil
}

// InitLevel discards the current table and lays out lv
// It may be called again at any time to restart
func (s *Session) InitLevel(lv level.Level) {
	s.ctx.Reset()
	s.undo.Clear()
	s.orderer.Reset()
	if r, ok := s.ctx.View.(interface{ Reset() }); ok {
		r.Reset()
	}

	s.level = lv
	s.roots[core.ZonePlayfield].Origin = lv.Roots.Playfield
	s.roots[core.ZoneStack].Origin = lv.Roots.Stack

	s.spawn(core.ZonePlayfield, lv.Playfield)
	s.spawn(core.ZoneStack, lv.Stack)
	s.orderer.Reorder()

	s.log.Info("level ready",
		zap.String("level", lv.Name),
		zap.Int("playfield", len(lv.Playfield)),
		zap.Int("stack", len(lv.Stack)))
	s.ctx.PushEvent(event.EventLevelReady, &event.LevelPayload{
		Name:      lv.Name,
		Playfield: len(lv.Playfield),
		Stack:     len(lv.Stack),
	})
	s.Flush()
}

func (s *Session) spawn(zone core.ZoneID, placements []core.Placement) {
	root := s.roots[zone]
	for _, p := range placements {
		c := s.ctx.World.Spawn(zone, p)
		if c == nil {
			continue
		}
		c.Order = s.ctx.World.Zone(zone).Len() - 1
		s.ctx.View.Reparent(c, root)
		s.ctx.View.SetOrder(c, c.Order)
	}
}

// CardActivated reports a user activation of c and processes it
func (s *Session) CardActivated(c *core.Card) {
	s.ctx.PushEvent(event.EventCardActivated, &event.CardPayload{Card: c})
	s.Flush()
}

// Undo reverts the most recent move
// Returns false if nothing was reverted
func (s *Session) Undo() bool {
	before := s.status.Int(status.KeyUndos)
	s.ctx.PushEvent(event.EventUndoRequest, nil)
	s.Flush()
	return s.status.Int(status.KeyUndos) > before
}

// Flush delivers pending events, including ones raised by transition completions
func (s *Session) Flush() int {
	return s.router.Flush(parameter.EventLoopIterations)
}

// World returns the card table
func (s *Session) World() *engine.World {
	return s.ctx.World
}

// Top returns the playable stack card
func (s *Session) Top() *core.Card {
	return s.orderer.Top()
}

// UndoLen returns the number of reversible moves recorded
func (s *Session) UndoLen() int {
	return s.undo.Len()
}

// Busy reports whether the named lane has a transition in flight
func (s *Session) Busy(lane string) bool {
	return s.ctx.Busy(lane)
}

// Pending returns the number of transitions in flight
func (s *Session) Pending() int {
	return s.ctx.Transitions.Pending()
}

// Level returns the level last passed to InitLevel
func (s *Session) Level() level.Level {
	return s.level
}

// Status returns the counter registry
func (s *Session) Status() *status.Registry {
	return s.status
}

// Retire removes c from play; its undo records are discarded
func (s *Session) Retire(c *core.Card) {
	s.ctx.World.Retire(c)
}
