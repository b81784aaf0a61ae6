package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"block-sandbox/internal/config"
	"block-sandbox/internal/debug"
	"block-sandbox/internal/env"
	"block-sandbox/internal/gesture"
	"block-sandbox/internal/graphics"
	"block-sandbox/internal/input"
	"block-sandbox/internal/logger"
	"block-sandbox/internal/render"
	"block-sandbox/internal/sandbox"
	"block-sandbox/internal/scene"
	"block-sandbox/internal/schedule"
)

func main() {
	envErr := env.Load(".env")
	configPath := flag.String("config", env.ConfigPath(config.DefaultPath), "path to the sandbox YAML config")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	applyErr := env.Apply(&cfg)
	log := logger.New(cfg.LogPath)
	for _, err := range []error{envErr, cfgErr, applyErr} {
		if err != nil {
			log.Logf("config: %v", err)
		}
	}

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	scn := scene.New()
	queue := schedule.New()
	ctrl := sandbox.New(cfg, scn, queue, log)
	if err := ctrl.Bootstrap(); err != nil {
		log.Logf("bootstrap: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Logf("sandbox ready: %d nodes", scn.Len())

	router := gesture.NewRouter(gesture.Config{
		MoveThreshold:     cfg.Gestures.MoveThreshold,
		LongPressDuration: cfg.Gestures.LongPressDuration,
	})
	ctrl.Bind(router)

	view := render.NewView(cfg.World.GroundTextureSize, log)
	hud := debug.New(cfg.Debug, ctrl.Stats, log)

	update := func(dt time.Duration) {
		ctrl.SetViewport(graphics.Size())
		if input.Focused() {
			router.Update(input.Poll(), dt)
		} else {
			router.Cancel()
		}
		if input.HUDToggled() {
			hud.Toggle()
		}
		queue.Advance(dt)
	}
	draw := func() {
		view.Draw(scn)
		hud.Draw()
	}
	shutdown := func() {
		hud.Close()
		view.Close()
	}
	graphics.Run(cfg.Window, render.SkyColor, update, draw, shutdown)
}
