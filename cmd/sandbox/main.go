package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arvhen/slab/engine/config"
	"github.com/arvhen/slab/engine/core"
	glbackend "github.com/arvhen/slab/engine/gfx/gl"
	rlbackend "github.com/arvhen/slab/engine/gfx/rl"
	"github.com/arvhen/slab/engine/platform"
	"github.com/arvhen/slab/engine/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if os.Getenv("SLAB_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	clearColor, err := cfg.Window.ClearColorRGBA()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	coreCfg := core.Config{
		Title:            cfg.Window.Title,
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		VSync:            cfg.Window.VSyncOn(),
		ClearColor:       clearColor,
		ScratchCapacity:  cfg.Scratch.Capacity,
		ProfilerCapacity: cfg.Profiler.Capacity,
	}

	sess := ui.NewSession(cfg.UI.MaxOverrides)

	switch cfg.Backend {
	case "raylib":
		caps := rlbackend.Caps{
			MaxPanels: cfg.UI.MaxPanels, MaxStack: cfg.UI.MaxStack, MaxIDs: cfg.UI.MaxIDs,
			MaxRects: cfg.UI.MaxRects, MaxTexts: cfg.UI.MaxTexts,
		}
		if err := rlbackend.Run(coreCfg, caps, sess, buildUI); err != nil {
			log.Fatal().Err(err).Msg("raylib backend")
		}
	default:
		app := &App{cfg: cfg, sess: sess}
		newWindow := func(c core.Config) (core.Window, error) {
			return platform.NewGLFWWindow(c, nil)
		}
		newRenderer := func(win core.Window, c core.Config) (core.Renderer, error) {
			return glbackend.NewRendererGL(win, c)
		}
		if err := core.Run(app, coreCfg, newWindow, newRenderer); err != nil {
			log.Fatal().Err(err).Msg("gl backend")
		}
	}
}
