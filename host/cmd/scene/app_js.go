//go:build js

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mokiat/gog/opt"

	"github.com/nobonobo/bear-vs-witch/config"
	"github.com/nobonobo/bear-vs-witch/host/app"
	"github.com/nobonobo/bear-vs-witch/host/render/three"
	"github.com/nobonobo/bear-vs-witch/page"
	"github.com/nobonobo/bear-vs-witch/scene"
)

func newContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

func runApplication(ctx context.Context) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	settings, err := cfg.StageSettings()
	if err != nil {
		return fmt.Errorf("failed to build stage settings: %w", err)
	}
	choreoOptions, err := cfg.ChoreoOptions()
	if err != nil {
		return fmt.Errorf("failed to build timeline options: %w", err)
	}

	logger := slog.Default()
	if page.GetParam("debug") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	doc := page.Mount()
	defer doc.Release()

	objects := three.NewObjects()
	renderer := three.NewRenderer(logger, doc.Canvas, objects)
	loader := three.NewLoader(objects, page.GetParam("loader"))
	loader.BaseURL = page.GetParam("assets")

	var application *app.App
	stage := scene.NewStage(settings)
	application = app.New(stage, renderer, loader, app.Options{
		Logger:   opt.V(logger),
		ScrubLag: opt.V(cfg.Timeline.ScrubLag),
		Choreo:   opt.V(choreoOptions),
		Models:   cfg.Models,
		OnReady: func() {
			// Pick up a page that was scrolled before the models arrived.
			application.Scroll(doc.Progress())
		},
	})

	application.Resize(doc.Size())
	doc.OnResize(func(width, height, pixelRatio float64) {
		application.Schedule(func() {
			application.Resize(width, height, pixelRatio)
		})
	})
	doc.OnScroll(func(progress float64) {
		application.Schedule(func() {
			application.Scroll(progress)
		})
	})

	application.Load(ctx)
	return application.Run(ctx, three.AnimationFrameScheduler{})
}
