package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/stackmatch/audio"
	"github.com/lixenwraith/stackmatch/config"
	"github.com/lixenwraith/stackmatch/core"
	"github.com/lixenwraith/stackmatch/engine"
	"github.com/lixenwraith/stackmatch/level"
	"github.com/lixenwraith/stackmatch/parameter"
	"github.com/lixenwraith/stackmatch/render"
	"github.com/lixenwraith/stackmatch/session"
	"github.com/lixenwraith/stackmatch/status"
	"github.com/lixenwraith/stackmatch/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stackmatch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Levels are resolved before the terminal is taken over so errors stay readable
	var catalog *level.Catalog
	if cfg.LevelDir != "" {
		if catalog, err = level.Discover(cfg.LevelDir, log); err != nil {
			return err
		}
	} else {
		catalog = level.Single(cfg.LevelPath, log)
	}
	lv, err := catalog.Current()
	if err != nil {
		return err
	}

	switch cfg.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	setCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			log.Error("crashed", zap.Any("panic", r))
			_ = log.Sync()
			handleCrash(r)
		}
	}()

	var sound *audio.SoundManager
	var player system.SoundPlayer
	if cfg.Audio {
		sm := audio.NewSoundManager(log)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			sound, player = sm, sm
			defer sm.Cleanup()
		}
	}

	scene := render.NewScene(engine.SystemClock{}, log)
	registry := status.NewRegistry()

	sess, err := session.New(session.Options{
		View:               scene,
		PlayfieldRoot:      &core.Root{Name: "playfield"},
		StackRoot:          &core.Root{Name: "stack"},
		Logger:             log,
		Sound:              player,
		Status:             registry,
		TransitionDuration: cfg.TransitionDuration,
		StackOffset:        cfg.StackOffset,
	})
	if err != nil {
		return err
	}
	sess.InitLevel(lv)

	g := &game{
		screen:   screen,
		session:  sess,
		scene:    scene,
		renderer: render.NewRenderer(screen, scene, registry),
		catalog:  catalog,
		sound:    sound,
		log:      log,
	}

	events := make(chan tcell.Event, 64)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.frame()
		}
	}
}
