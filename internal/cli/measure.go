package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowbox/pkg/layout"
	"flowbox/pkg/scene"
	"flowbox/pkg/text"
)

// newMeasureCmd creates the measure command: print the size a scene's layout
// reports for one or more proposed widths.
func newMeasureCmd() *cobra.Command {
	var (
		widths        []float64
		unconstrained bool
	)

	cmd := &cobra.Command{
		Use:   "measure <scene.toml>",
		Short: "Print the measured size of a scene at proposed widths",
		Long: `Measure runs the measurement pass without placing anything. With no
--width flags the scene's container width is proposed; pass --width multiple
times to see how the reported size responds to different proposals, or
--unconstrained for the layout's content size with no width limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			items, err := s.Items(text.NewMeasurer())
			if err != nil {
				return err
			}
			algo, err := s.BuildLayout()
			if err != nil {
				return err
			}
			children := scene.Children(items)
			logger.Debug("measuring scene", "kind", s.Layout.Kind, "children", len(children))

			if len(widths) == 0 && !unconstrained {
				widths = []float64{s.Container.Width}
			}
			for _, w := range widths {
				size := algo.Measure(children, layout.ProposeWidth(w))
				fmt.Fprintf(cmd.OutOrStdout(), "width %g: %g x %g\n", w, size.Width, size.Height)
			}
			if unconstrained {
				size := algo.Measure(children, layout.Unbounded())
				fmt.Fprintf(cmd.OutOrStdout(), "unconstrained: %g x %g\n", size.Width, size.Height)
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVarP(&widths, "width", "w", nil, "proposed width (repeatable)")
	cmd.Flags().BoolVar(&unconstrained, "unconstrained", false, "also measure with no width constraint")

	return cmd
}
