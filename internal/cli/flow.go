package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/box"
	boxio "github.com/matzehuels/boxgrid/pkg/io"
)

// flowOpts holds the command-line flags for the flow command.
type flowOpts struct {
	width  int    // wrap width in cells (0 = config default)
	height int    // column height; 0 flows a single paragraph
	gutter int    // blank columns between columns (-1 = config default)
	align  string // per-line alignment name ("" = config default)
	output string // output file path ("" = stdout)
}

// newFlowCmd creates the flow command for word-wrapping text.
//
// In the default mode the input becomes one paragraph of the given width.
// With --height the flowed lines are split into side-by-side columns of
// that height, separated by --gutter blank columns.
func newFlowCmd() *cobra.Command {
	var opts flowOpts

	cmd := &cobra.Command{
		Use:   "flow [file]",
		Short: "Word-wrap text into a paragraph or columns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlow(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "wrap width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 0, "split into columns of this many rows")
	cmd.Flags().IntVar(&opts.gutter, "gutter", -1, "blank columns between columns")
	cmd.Flags().StringVarP(&opts.align, "align", "a", "", "line alignment: left, right, center, center2")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runFlow reads the input, wraps it, and writes the rendered result.
func runFlow(ctx context.Context, args []string, opts *flowOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	if opts.width <= 0 {
		opts.width = cfg.Width
	}
	if opts.height == 0 {
		opts.height = cfg.Height
	}
	if opts.gutter < 0 {
		opts.gutter = cfg.Gutter
	}
	if opts.align == "" {
		opts.align = cfg.Align
	}

	a, err := boxio.ParseAlignment(opts.align)
	if err != nil {
		return err
	}

	text, name, err := readInput(args)
	if err != nil {
		return err
	}
	logger.Debugf("Read %d bytes from %s", len(text), name)

	var b box.Box
	if opts.height > 0 {
		cols := box.Columns(a, opts.width, opts.height, text)
		b = box.HSep(opts.gutter, box.Top, cols...)
		logger.Debugf("Flowed into %d columns of %d rows", len(cols), opts.height)
	} else {
		b = box.Para(a, opts.width, text)
		logger.Debugf("Flowed into %d lines", b.Rows())
	}

	logger.Infof("Laid out %s: %dx%d", name, b.Rows(), b.Cols())
	return writeOutput(opts.output, box.Render(b))
}
