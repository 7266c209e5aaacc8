//go:build !js

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nobonobo/bear-vs-witch/scene"
)

func newInspectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the node hierarchies of the loaded models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			settings, err := cfg.StageSettings()
			if err != nil {
				return err
			}
			stage := scene.NewStage(settings)
			if _, err := loadModels(cmd.Context(), cfg, flags.loader(), stage); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range []*scene.Scene{stage.Real, stage.Wire} {
				printNode(out, s.Root(), 0)
			}
			return nil
		},
	}
}

func printNode(w io.Writer, node *scene.Node, depth int) {
	line := strings.Repeat("  ", depth) + node.Name
	if node.Mesh != nil {
		line += " [mesh]"
	}
	pose := node.Pose()
	fmt.Fprintf(w, "%s pos=(%.3g, %.3g, %.3g) rot=(%.3g, %.3g, %.3g)\n", line,
		pose.Position.X, pose.Position.Y, pose.Position.Z,
		pose.Rotation.X, pose.Rotation.Y, pose.Rotation.Z,
	)
	for _, child := range node.Children() {
		printNode(w, child, depth+1)
	}
}
