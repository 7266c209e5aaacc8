//go:build !js

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nobonobo/bear-vs-witch/asset"
	"github.com/nobonobo/bear-vs-witch/config"
	"github.com/nobonobo/bear-vs-witch/host/resources"
	"github.com/nobonobo/bear-vs-witch/scene"
)

type globalFlags struct {
	configPath string
	assetsDir  string
	verbose    bool
}

func newContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runApplication(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "scene",
		Short:         "Scroll driven bear vs witch scene",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "scene configuration file")
	root.PersistentFlags().StringVar(&flags.assetsDir, "assets", "", "directory to load models from instead of the embedded ones")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(
		newPlayCommand(flags),
		newSampleCommand(flags),
		newInspectCommand(flags),
	)
	return root
}

func (f *globalFlags) config() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (f *globalFlags) loader() *asset.GLTFLoader {
	var models fs.FS = resources.Models
	if f.assetsDir != "" {
		models = os.DirFS(f.assetsDir)
	}
	return asset.NewGLTFLoader(models)
}

// loadModels loads every configured model and installs it on the stage.
func loadModels(ctx context.Context, cfg config.Config, loader asset.Loader, stage *scene.Stage) (map[string]*asset.Model, error) {
	manager := asset.NewManager(slog.Default())
	manager.OnProgress = func(name string, loaded, total int) {
		slog.Debug("Model loaded",
			slog.String("model", name),
			slog.Int("loaded", loaded),
			slog.Int("total", total),
		)
	}

	done := make(chan error, 1)
	set := asset.NewSet()
	promise := asset.LoadAll(ctx, loader, manager, cfg.Models, set)
	promise.OnSuccess(func(*asset.Set) {
		done <- nil
	})
	promise.OnError(func(err error) {
		done <- err
	})

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("failed to load models: %w", err)
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	models := make(map[string]*asset.Model, len(cfg.Models))
	for _, entry := range cfg.Models {
		models[entry.Name] = asset.Install(stage, entry.Name, set.Get(entry.Name))
	}
	return models, nil
}
