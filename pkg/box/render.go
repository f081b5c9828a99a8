package box

import (
	"io"
	"os"
	"strings"
)

// Render converts a box into its final text form: RenderLines joined with
// newlines, trailing newline included. Rendering is a pure function of the
// box value; the same box always renders to the same text.
func Render(b Box) string {
	return unlines(RenderLines(b))
}

// RenderLines converts a box into exactly b.Rows() lines, each exactly
// b.Cols() cells wide. Content that does not fit the declared size is
// padded or cropped to match.
func RenderLines(b Box) []string {
	switch c := b.content.(type) {
	case blank:
		return resize(b.rows, b.cols, []string{""})

	case leaf:
		return resize(b.rows, b.cols, []string{c.text})

	case row:
		// Children are re-rendered with the row's height forced, not padded
		// after the fact: an inner alignment must distribute itself within
		// the stretched height.
		rendered := make([][]string, len(c.boxes))
		for i, child := range c.boxes {
			child.rows = b.rows
			rendered[i] = RenderLines(child)
		}
		merged := make([]string, b.rows)
		for i := range merged {
			var sb strings.Builder
			for _, lines := range rendered {
				if i < len(lines) {
					sb.WriteString(lines[i])
				}
			}
			merged[i] = sb.String()
		}
		return resize(b.rows, b.cols, merged)

	case col:
		var all []string
		for _, child := range c.boxes {
			child.cols = b.cols
			all = append(all, RenderLines(child)...)
		}
		return resize(b.rows, b.cols, all)

	case subBox:
		return resizeAligned(b.rows, b.cols, c.halign, c.valign, RenderLines(c.inner))
	}
	return nil
}

// resize reconciles lines to exactly rows x cols with no alignment bias:
// lines are left-justified to cols, and the list keeps its first rows
// entries, padded at the bottom with blank lines. Width and height
// reconciliation for Row, Col, Leaf and Blank content happens here, before
// any alignment is considered.
func resize(rows, cols int, lines []string) []string {
	out := takePad("", rows, lines)
	for i, l := range out {
		out[i] = justify(AlignFirst, ' ', cols, l)
	}
	return out
}

// resizeAligned reconciles lines to exactly rows x cols with directional
// bias: each line is justified to cols per halign, and the line list is
// padded or cropped to rows per valign, which may add or remove lines at
// either end.
func resizeAligned(rows, cols int, halign, valign Alignment, lines []string) []string {
	justified := make([]string, len(lines))
	for i, l := range lines {
		justified[i] = justify(halign, ' ', cols, l)
	}
	return takePadAligned(valign, blanks(cols), rows, justified)
}

// Fprint writes the rendered box to w.
func Fprint(w io.Writer, b Box) error {
	_, err := io.WriteString(w, Render(b))
	return err
}

// Print writes the rendered box to standard output.
func Print(b Box) error {
	return Fprint(os.Stdout, b)
}
