// Package box composes rectangular blocks of text and renders them into a
// flat grid of lines for terminal or file output.
//
// # Overview
//
// A [Box] is a layout unit with a declared height and width and one of five
// kinds of content: blank space, a single line of text, a horizontal row of
// child boxes, a vertical column of child boxes, or a realigned sub-box.
// Callers build trees of boxes with the combinators and render them with
// [Render]; the engine handles all padding, cropping and alignment
// arithmetic so callers never hand-compute column widths.
//
// Sizes are inferred at construction: [HCat] is as tall as its tallest
// child and as wide as all children together, [VCat] symmetrically. The
// renderer honors declared sizes exactly — [RenderLines] always yields
// Rows() lines of Cols() cells, whatever the content's natural size.
//
// # Alignment
//
// [Alignment] is a four-valued bias: anchored at the start of an axis,
// anchored at the end, or centered with the odd cell going to either side
// ([AlignCenter1] leading-heavy, [AlignCenter2] trailing-heavy). The same
// values serve both axes; [Top], [Bottom], [Left] and [Right] are aliases.
//
// # Paragraph flow
//
// [Flow] greedily wraps a text into lines of bounded width without breaking
// words. [Para] packs the flowed lines into a single box and [Columns]
// splits them into fixed-height column boxes, ready for [HSep].
//
// # Example
//
// A two-column table with a gutter:
//
//	left := box.VCat(box.Left, box.Text("name"), box.Text("rows"))
//	right := box.VCat(box.Right, box.Text("value"), box.Text("42"))
//	fmt.Print(box.Render(box.HSep(2, box.Top, left, right)))
//
// # Width model
//
// One rune is one cell. Grapheme clusters, combining marks and East Asian
// double-width characters are not measured; callers needing display-exact
// widths for such input must pre-process it.
//
// # Concurrency
//
// Boxes are immutable values and rendering is pure, so any number of
// goroutines may share and render the same boxes without synchronization.
package box
