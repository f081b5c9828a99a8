package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/box"
	boxio "github.com/matzehuels/boxgrid/pkg/io"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path ("" = stdout)
}

// newRenderCmd creates the render command for building a JSON layout
// document and rendering it to plain text. See pkg/io for the document
// format.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file.json]",
		Short: "Render a JSON layout document to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runRender loads the document from input, builds the box tree, and writes
// the rendered grid.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := boxio.ImportJSON(input)
	if err != nil {
		return err
	}

	b, err := doc.Box()
	if err != nil {
		return err
	}
	logger.Debugf("Built box tree: %dx%d", b.Rows(), b.Cols())

	if err := writeOutput(opts.output, box.Render(b)); err != nil {
		return err
	}
	prog.done("Rendered " + input)
	return nil
}
