package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

func main() {
	ctx, stop := newContext()
	defer stop()

	slog.Info("Started")
	err := runApplication(ctx)
	if code := exitCode(err); code != 0 {
		slog.Error("Crashed",
			slog.String("error", err.Error()),
		)
		stop()
		os.Exit(code)
	}
	slog.Info("Stopped")
}

// exitCode treats an interrupted run as a clean stop.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}
