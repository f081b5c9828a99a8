package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/box"
	boxio "github.com/matzehuels/boxgrid/pkg/io"
)

// tableOpts holds the command-line flags for the table command.
type tableOpts struct {
	sep    string // input cell delimiter
	gutter int    // blank columns between table columns (-1 = config default)
	align  string // cell alignment within each column ("" = config default)
	output string // output file path ("" = stdout)
}

// newTableCmd creates the table command for laying out delimited rows as an
// aligned grid. Each input line is one row; cells are separated by --sep
// (tab by default). Column widths are inferred from the widest cell.
func newTableCmd() *cobra.Command {
	var opts tableOpts

	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Lay out delimited rows as an aligned grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sep, "sep", "s", "\t", "input cell delimiter")
	cmd.Flags().IntVar(&opts.gutter, "gutter", -1, "blank columns between table columns")
	cmd.Flags().StringVarP(&opts.align, "align", "a", "", "cell alignment: left, right, center, center2")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// runTable reads delimited rows and renders them as an aligned grid.
func runTable(ctx context.Context, args []string, opts *tableOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

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

	rows := splitRows(text, opts.sep)
	b := buildTable(a, opts.gutter, rows)
	logger.Infof("Laid out %s: %d rows, %dx%d", name, len(rows), b.Rows(), b.Cols())
	return writeOutput(opts.output, box.Render(b))
}

// splitRows splits input into rows of cells. A trailing newline does not
// produce an empty final row.
func splitRows(text, sep string) [][]string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.Split(l, sep)
	}
	return rows
}

// buildTable composes rows of cells into one box: each table column is a
// vertical stack of cells aligned per a, and the columns sit side by side
// separated by gutter blank columns. Short rows are padded with empty
// cells.
func buildTable(a box.Alignment, gutter int, rows [][]string) box.Box {
	ncols := 0
	for _, r := range rows {
		ncols = max(ncols, len(r))
	}

	cols := make([]box.Box, ncols)
	for j := range cols {
		cells := make([]box.Box, len(rows))
		for i, r := range rows {
			cell := ""
			if j < len(r) {
				cell = r[j]
			}
			cells[i] = box.Text(cell)
		}
		cols[j] = box.VCat(a, cells...)
	}
	return box.HSep(gutter, box.Top, cols...)
}
