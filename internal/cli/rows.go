package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowbox/pkg/layout"
	"flowbox/pkg/scene"
	"flowbox/pkg/text"
)

// newRowsCmd creates the rows command: dump the flow layout's row partition.
func newRowsCmd() *cobra.Command {
	var width float64

	cmd := &cobra.Command{
		Use:   "rows <scene.toml>",
		Short: "Dump the flow row partition of a scene",
		Long: `Rows prints which children land on which row for a flow scene, with
each row's packed width and height. Useful for checking wrapping, forced
breaks, and maxRows absorption without rendering anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			algo, err := s.BuildLayout()
			if err != nil {
				return err
			}
			flow, ok := algo.(*layout.FlowLayout)
			if !ok {
				return fmt.Errorf("rows requires a flow scene, %s is %q", args[0], s.Layout.Kind)
			}

			items, err := s.Items(text.NewMeasurer())
			if err != nil {
				return err
			}

			if width == 0 {
				width = s.Container.Width
			}
			rows := flow.Rows(scene.Children(items), width)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d rows at width %g\n", len(rows), width)
			for i, row := range rows {
				fmt.Fprintf(out, "row %d: children %v, width %g, height %g\n",
					i, row.Indices, row.Width, row.Height)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&width, "width", "w", 0, "available width (default: container width)")

	return cmd
}
