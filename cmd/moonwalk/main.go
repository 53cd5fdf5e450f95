package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/config"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/core"
	"github.com/lixenwraith/moonwalk/engine"
	"github.com/lixenwraith/moonwalk/input"
	"github.com/lixenwraith/moonwalk/panel"
	"github.com/lixenwraith/moonwalk/render"
	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lixenwraith/moonwalk/vmath"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "moonwalk: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flags := config.NewFlagSet("moonwalk")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfgPath := config.ConfigPath(flags)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg.ApplyFlags(flags)

	if logFile := core.SetupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	colorMode, err := render.ParseColorMode(cfg.Render.Color)
	if err != nil {
		return err
	}
	assetDir, err := config.ExpandPath(cfg.Assets.Dir)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: assets=%s color=%s seed=%d", assetDir, colorMode, seed)

	// Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	// Audio degrades to silent on device failure
	eng := audio.NewEngine(cfg.Audio)
	if err := eng.Start(); err != nil {
		log.Printf("audio start: %v", err)
	}
	defer eng.Stop()
	if config.Muted(flags) {
		eng.ToggleMute()
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := asset.NewLoader(runCtx, asset.LoaderConfig{
		FS:          os.DirFS(assetDir),
		SampleRate:  eng.SampleRate(),
		Concurrency: cfg.Assets.Concurrency,
		Retries:     cfg.Assets.Retries,
		RetryDelay:  cfg.RetryDelay(),
		QueueSize:   constants.LoadQueueSize,
	})

	w, h := screen.Size()
	ctx := engine.NewGameContext(scene.New(vmath.NewRand(seed)), eng, loader, nil, w, h)
	if !cfg.Orbit.Enabled {
		ctx.Orbit.Enabled = false
	}
	ctx.AttachVoices()

	mixer := panel.NewMixer(mixerTargets(ctx))
	if err := mixer.Apply(cfg.Mixer); err != nil {
		log.Printf("mixer config: %v", err)
	}
	ctx.RequestAssets()

	renderer := render.NewTerminalRenderer(screen, colorMode, mixer)
	machine := input.NewMachine(nil, cfg.ReleaseDelay())
	a := &app{ctx: ctx, panel: mixer, screen: screen}

	reload, err := config.Watch(runCtx, cfgPath)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	}

	events := make(chan tcell.Event, constants.InputQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-runCtx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, in := range machine.Poll(ctx.Time.Now()) {
				a.handle(in)
			}
			ctx.Tick(renderer)

		case ev := <-events:
			in := machine.Process(ev, ctx.Time.Now())
			if in != nil && !a.handle(*in) {
				log.Printf("quit after %d frames", ctx.FrameNumber)
				return nil
			}

		case s, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			if err := mixer.Apply(s); err != nil {
				log.Printf("mixer reload: %v", err)
				continue
			}
			ctx.SetDiagnostic("mixer reloaded")
		}
	}
}
