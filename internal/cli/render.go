package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flowbox/pkg/scene"
	"flowbox/pkg/visualtest"
)

// newRenderCmd creates the render command: scene in, PNG preview out.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene to a PNG preview",
		Long: `Render lays out the children of a scene file with its configured
algorithm and writes the placements as a PNG image. Children that overflow
the container (a single over-wide child, or a maxRows row absorbing extras)
are drawn clipped at the canvas edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], ".toml") + ".png"
			}

			logger.Debug("rendering scene", "scene", args[0], "kind", s.Layout.Kind,
				"container", fmt.Sprintf("%gx%g", s.Container.Width, s.Container.Height))

			if err := visualtest.RenderSceneToFile(s, output); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}

			logger.Info("preview written", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: scene path with .png)")

	return cmd
}
