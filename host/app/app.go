package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mokiat/gog/opt"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/choreo"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/schema"
	"github.com/nobonobo/bear-vs-witch/timeline"
)

const defaultScrubLag = 100 * time.Millisecond

type Options struct {
	Logger   opt.T[*slog.Logger]
	ScrubLag opt.T[time.Duration]
	Choreo   opt.T[choreo.Options]
	Models   []asset.Entry
	// OnReady is called on the loop once the scroll timeline exists.
	OnReady func()
}

// App owns the stage and everything that mutates it. All mutation
// happens on the loop that calls Tick.
type App struct {
	logger   *slog.Logger
	stage    *scene.Stage
	renderer Renderer
	loader   asset.Loader
	queue    Queue

	entries  []asset.Entry
	options  choreo.Options
	onReady  func()
	scrubber *timeline.Scrubber
	models   map[string]*asset.Model
	choreo   *choreo.Choreography
	manager  *asset.Manager

	frames uint64
}

func New(stage *scene.Stage, renderer Renderer, loader asset.Loader, opts Options) *App {
	logger := slog.Default()
	if opts.Logger.Specified && opts.Logger.Value != nil {
		logger = opts.Logger.Value
	}
	runID, err := uuid.NewV6()
	if err == nil {
		logger = logger.With(slog.String("run", runID.String()))
	}

	lag := defaultScrubLag
	if opts.ScrubLag.Specified {
		lag = opts.ScrubLag.Value
	}
	options := choreo.DefaultOptions()
	if opts.Choreo.Specified {
		options = opts.Choreo.Value
	}

	renderer.Configure(stage.Renderer)

	return &App{
		logger:   logger,
		stage:    stage,
		renderer: renderer,
		loader:   loader,
		entries:  opts.Models,
		options:  options,
		onReady:  opts.OnReady,
		scrubber: timeline.NewScrubber(lag),
		models:   make(map[string]*asset.Model),
	}
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Stage() *scene.Stage {
	return a.stage
}

// Schedule queues fn to run on the loop before the next frame. It is safe
// to call from any goroutine.
func (a *App) Schedule(fn func()) {
	a.queue.Schedule(fn)
}

// Load starts loading every model. Each model is installed on the loop as
// soon as it arrives; the scroll timeline is built once all of them are
// in. A failed model leaves the timeline unbuilt.
func (a *App) Load(ctx context.Context) {
	set := asset.NewSet()
	a.manager = asset.NewManager(a.logger)
	a.manager.OnProgress = func(name string, loaded, total int) {
		root := set.Get(name)
		a.Schedule(func() {
			a.install(name, root)
		})
	}
	a.manager.OnLoad = func() {
		a.Schedule(a.setupAnimation)
	}
	a.manager.OnError = func(name string, err error) {
		a.logger.Warn("Scroll animation disabled",
			slog.String("model", name),
		)
	}

	promise := asset.LoadAll(ctx, a.loader, a.manager, a.entries, set)
	promise.OnError(func(err error) {
		a.logger.Debug("Model batch failed", slog.String("error", err.Error()))
	})
}

func (a *App) install(name string, root *scene.Node) {
	a.models[name] = asset.Install(a.stage, name, root)
	a.logger.Info("Model installed", slog.String("model", name))
}

func (a *App) setupAnimation() {
	c, err := choreo.New(a.stage, a.models, a.options)
	if err != nil {
		a.logger.Error("Failed to set up scroll animation",
			slog.String("error", err.Error()),
		)
		return
	}
	a.choreo = c
	a.scrubber.Jump()
	c.Seek(a.scrubber.Current())
	a.logger.Info("Scroll animation ready",
		slog.Float64("duration", c.Timeline().Duration()),
	)
	if a.onReady != nil {
		a.onReady()
	}
}

// Ready reports whether the scroll timeline has been built.
func (a *App) Ready() bool {
	return a.choreo != nil
}

func (a *App) Model(name string) *asset.Model {
	return a.models[name]
}

// Resize applies a new canvas size. Call it on the loop.
func (a *App) Resize(width, height, devicePixelRatio float64) {
	a.stage.Resize(width, height, devicePixelRatio)
	size := a.stage.Size()
	a.renderer.SetSize(size.Width, size.Height, a.stage.PixelRatio())
	a.logger.Debug("Resized",
		slog.Float64("width", size.Width),
		slog.Float64("height", size.Height),
		slog.Float64("pixelRatio", a.stage.PixelRatio()),
	)
}

// Scroll sets the scroll progress the playhead moves towards. Call it on
// the loop.
func (a *App) Scroll(progress float64) {
	a.scrubber.SetTarget(progress)
}

// Tick runs scheduled work, advances the timeline and renders a frame.
func (a *App) Tick(elapsed time.Duration) {
	a.queue.Drain()

	if a.choreo != nil && !a.scrubber.Settled() {
		a.choreo.Seek(a.scrubber.Advance(elapsed))
	}

	size := a.stage.Size()
	viewport := scene.Rect{Width: size.Width, Height: size.Height}
	for _, view := range a.stage.Views() {
		a.renderer.Render(view, a.stage.Target, viewport, view.Scissor(size))
	}
	a.frames++
}

func (a *App) Frames() uint64 {
	return a.frames
}

// Run renders frames until the context is cancelled.
func (a *App) Run(ctx context.Context, scheduler Scheduler) error {
	a.logger.Info("Render loop started")
	defer a.logger.Info("Render loop stopped", slog.Uint64("frames", a.frames))
	return scheduler.Run(ctx, a.Tick)
}

// Snapshot returns the animated state, or false while the timeline is not
// built.
func (a *App) Snapshot() (schema.Snapshot, bool) {
	if a.choreo == nil {
		return schema.Snapshot{}, false
	}
	return a.choreo.Snapshot(), true
}
