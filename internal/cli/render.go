package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/FreedomWriter/mini-component-library/internal/components/progressbar"
)

type renderOptions struct {
	value float64
	size  string
	out   string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a ProgressBar as an HTML fragment",
		Long: `Render a single ProgressBar and print its markup.

Sizes:
  small   8px bar
  medium  12px bar
  large   16px bar with 4px padding

The value is used as-is; values outside 0-100 are not clamped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.value, "value", 0, "Progress value, conventionally 0-100")
	cmd.Flags().StringVar(&opts.size, "size", "", "Size variant: small, medium, large")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to file instead of stdout")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	size, err := progressbar.ParseSize(opts.size)
	if err != nil {
		return fmt.Errorf("invalid --size: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), opts.out, func(w io.Writer) error {
		return progressbar.WriteHTML(w, opts.value, size)
	})
}
