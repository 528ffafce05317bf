// Package cli wires the component library's commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/FreedomWriter/mini-component-library/internal/version"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minicomp",
		Short: "Render mini-component-library components",
		Long: `minicomp renders the library's ProgressBar component as HTML, builds a
gallery page of every size, or previews it in the terminal.`,
		Version:       version.String(),
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newRenderCmd(),
		newStoryCmd(),
		newPreviewCmd(),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
