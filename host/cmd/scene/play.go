//go:build !js

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mokiat/gog/opt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nobonobo/bear-vs-witch/host/app"
	"github.com/nobonobo/bear-vs-witch/host/render/trace"
	"github.com/nobonobo/bear-vs-witch/page"
	"github.com/nobonobo/bear-vs-witch/scene"
)

const loadTimeout = 10 * time.Second

func newPlayCommand(flags *globalFlags) *cobra.Command {
	var (
		duration time.Duration
		width    float64
		height   float64
		dpr      float64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the scene headless while scrolling from top to bottom",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			settings, err := cfg.StageSettings()
			if err != nil {
				return err
			}
			choreoOptions, err := cfg.ChoreoOptions()
			if err != nil {
				return err
			}

			logger := slog.Default()
			renderer := trace.NewRenderer(logger)
			stage := scene.NewStage(settings)
			application := app.New(stage, renderer, flags.loader(), app.Options{
				Logger:   opt.V(logger),
				ScrubLag: opt.V(cfg.Timeline.ScrubLag),
				Choreo:   opt.V(choreoOptions),
				Models:   cfg.Models,
			})
			application.Resize(width, height, dpr)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			application.Load(ctx)

			sim := &scrollSimulation{
				app:      application,
				layout:   page.Layout{ViewportHeight: height},
				duration: duration,
				cancel:   cancel,
			}
			scheduler := app.NewTickerScheduler(cfg.Loop.FrameRate)
			if err := application.Run(ctx, sim.wrap(scheduler)); err != nil {
				return err
			}
			if sim.err != nil {
				return sim.err
			}

			snapshot, _ := application.Snapshot()
			out, err := yaml.Marshal(snapshot)
			if err != nil {
				return fmt.Errorf("failed to marshal snapshot: %w", err)
			}
			logger.Info("Playback finished",
				slog.Uint64("frames", application.Frames()),
				slog.Int("draws", renderer.Total()),
			)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 2*time.Second, "time taken to scroll to the bottom")
	cmd.Flags().Float64Var(&width, "width", 1280, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 800, "canvas height")
	cmd.Flags().Float64Var(&dpr, "pixel-ratio", 1, "device pixel ratio")
	return cmd
}

var errNotReady = errors.New("scroll animation did not become ready")

// scrollSimulation scrolls the page at a constant speed once the app is
// ready and stops the loop when the playhead reaches the end.
type scrollSimulation struct {
	app      *app.App
	layout   page.Layout
	duration time.Duration
	cancel   context.CancelFunc

	waited  time.Duration
	elapsed time.Duration
	err     error
}

func (s *scrollSimulation) wrap(scheduler app.Scheduler) app.Scheduler {
	return schedulerFunc(func(ctx context.Context, frame app.FrameFunc) error {
		return scheduler.Run(ctx, func(elapsed time.Duration) {
			s.step(elapsed)
			frame(elapsed)
			s.check()
		})
	})
}

func (s *scrollSimulation) step(elapsed time.Duration) {
	if !s.app.Ready() {
		s.waited += elapsed
		if s.waited > loadTimeout {
			s.err = errNotReady
			s.cancel()
		}
		return
	}
	s.elapsed += elapsed
	fraction := 1.0
	if s.duration > 0 {
		fraction = min(float64(s.elapsed)/float64(s.duration), 1)
	}
	s.app.Scroll(s.layout.Progress(s.layout.ScrollTop(fraction)))
}

func (s *scrollSimulation) check() {
	snapshot, ok := s.app.Snapshot()
	if ok && s.elapsed >= s.duration && snapshot.Progress == 1 {
		s.cancel()
	}
}

type schedulerFunc func(ctx context.Context, frame app.FrameFunc) error

func (f schedulerFunc) Run(ctx context.Context, frame app.FrameFunc) error {
	return f(ctx, frame)
}
