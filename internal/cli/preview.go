package cli

import (
	"github.com/spf13/cobra"

	"github.com/FreedomWriter/mini-component-library/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	var value float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview every ProgressBar size in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.WithValue(value))
		},
	}

	cmd.Flags().Float64Var(&value, "value", tui.DefaultValue, "Starting value")
	return cmd
}
