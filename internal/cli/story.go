package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/FreedomWriter/mini-component-library/internal/story"
)

type storyOptions struct {
	title  string
	sizes  []string
	values []float64
	out    string
}

func newStoryCmd() *cobra.Command {
	opts := &storyOptions{}

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Write an HTML gallery of ProgressBar sizes and values",
		Long: `Write a standalone HTML page with one section per size and one bar per value.

Unknown sizes are shown as an inline error instead of aborting the page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutput(cmd.OutOrStdout(), opts.out, func(w io.Writer) error {
				return story.Write(w, story.Config{
					Title:  opts.title,
					Sizes:  opts.sizes,
					Values: opts.values,
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", story.DefaultTitle, "Page title")
	cmd.Flags().StringSliceVar(&opts.sizes, "size", nil, "Sizes to show (default all)")
	cmd.Flags().Float64SliceVar(&opts.values, "value", nil, "Values to show (default 0,25,45,70,100)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
