//go:build !js

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nobonobo/bear-vs-witch/choreo"
	"github.com/nobonobo/bear-vs-witch/scene"
	"github.com/nobonobo/bear-vs-witch/schema"
)

func newSampleCommand(flags *globalFlags) *cobra.Command {
	var (
		progress []float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the animated state at given scroll progress values",
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

			stage := scene.NewStage(settings)
			models, err := loadModels(cmd.Context(), cfg, flags.loader(), stage)
			if err != nil {
				return err
			}
			c, err := choreo.New(stage, models, choreoOptions)
			if err != nil {
				return fmt.Errorf("failed to build timeline: %w", err)
			}

			values := sampleValues(progress, steps)
			snapshots := make([]schema.Snapshot, len(values))
			for i, value := range values {
				c.Seek(value)
				snapshots[i] = c.Snapshot()
			}
			out, err := yaml.Marshal(snapshots)
			if err != nil {
				return fmt.Errorf("failed to marshal snapshots: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().Float64SliceVarP(&progress, "progress", "p", nil, "progress values to sample")
	cmd.Flags().IntVar(&steps, "steps", 0, "sample this many evenly spaced values from 0 to 1")
	return cmd
}

// sampleValues returns the explicit values, followed by steps evenly
// spaced values covering [0,1]. Without either it samples every section
// boundary.
func sampleValues(progress []float64, steps int) []float64 {
	values := append([]float64(nil), progress...)
	if steps == 1 {
		values = append(values, 0)
	}
	if steps > 1 {
		for i := range steps {
			values = append(values, float64(i)/float64(steps-1))
		}
	}
	if len(values) == 0 {
		for i := range choreo.Sections + 1 {
			values = append(values, float64(i)/choreo.Sections)
		}
	}
	return values
}
