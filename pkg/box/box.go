package box

import "strings"

// Box is a rectangular layout unit: a declared number of rows and columns
// plus the content that fills them. The declared size is computed once at
// construction and is honored by the renderer regardless of the content's
// natural size (padding or cropping as needed). Boxes are immutable values;
// composing boxes never modifies their parts.
type Box struct {
	rows, cols int
	content    content
}

// content is the closed set of box payloads. The variants are exhaustively
// switched in the renderer; adding one means extending that switch.
type content interface {
	isContent()
}

type (
	// blank fills the declared size with spaces.
	blank struct{}

	// leaf is exactly one line of raw text.
	leaf struct{ text string }

	// row lays children out left to right.
	row struct{ boxes []Box }

	// col lays children out top to bottom.
	col struct{ boxes []Box }

	// subBox reinterprets inner at a different declared size, padding or
	// cropping per the two alignments.
	subBox struct {
		halign, valign Alignment
		inner          Box
	}
)

func (blank) isContent()  {}
func (leaf) isContent()   {}
func (row) isContent()    {}
func (col) isContent()    {}
func (subBox) isContent() {}

// Rows returns the declared height of the box.
func (b Box) Rows() int { return b.rows }

// Cols returns the declared width of the box.
func (b Box) Cols() int { return b.cols }

// Null is the zero-sized box. It is the identity for HCat and VCat.
func Null() Box {
	return Empty(0, 0)
}

// Empty returns a blank box of the given size. Negative sizes are clamped
// to zero.
func Empty(rows, cols int) Box {
	return Box{rows: max(rows, 0), cols: max(cols, 0), content: blank{}}
}

// Char returns a 1x1 box holding a single character.
func Char(c rune) Box {
	return Box{rows: 1, cols: 1, content: leaf{text: string(c)}}
}

// Text returns a 1xN box holding one line of text. The text must not
// contain newlines; use Lines for multi-line input.
func Text(s string) Box {
	return Box{rows: 1, cols: runeLen(s), content: leaf{text: s}}
}

// Lines splits s on newlines and stacks the resulting lines vertically with
// the given horizontal alignment.
func Lines(a Alignment, s string) Box {
	parts := strings.Split(s, "\n")
	bs := make([]Box, len(parts))
	for i, p := range parts {
		bs[i] = Text(p)
	}
	return VCat(a, bs...)
}

// HCat lays boxes out left to right. The result is as tall as the tallest
// box and as wide as all boxes together; each box is aligned vertically
// within that height according to a. HCat of nothing is Null.
func HCat(a Alignment, boxes ...Box) Box {
	h, w := 0, 0
	for _, b := range boxes {
		h = max(h, b.rows)
		w += b.cols
	}
	kids := make([]Box, len(boxes))
	for i, b := range boxes {
		kids[i] = AlignVert(a, h, b)
	}
	return Box{rows: h, cols: w, content: row{boxes: kids}}
}

// VCat lays boxes out top to bottom. The result is as wide as the widest
// box and as tall as all boxes together; each box is aligned horizontally
// within that width according to a. VCat of nothing is Null.
func VCat(a Alignment, boxes ...Box) Box {
	h, w := 0, 0
	for _, b := range boxes {
		h += b.rows
		w = max(w, b.cols)
	}
	kids := make([]Box, len(boxes))
	for i, b := range boxes {
		kids[i] = AlignHoriz(a, w, b)
	}
	return Box{rows: h, cols: w, content: col{boxes: kids}}
}

// HSep is HCat with sep columns of blank space between adjacent boxes.
func HSep(sep int, a Alignment, boxes ...Box) Box {
	return HCat(a, intersperse(Empty(0, sep), boxes)...)
}

// VSep is VCat with sep rows of blank space between adjacent boxes.
func VSep(sep int, a Alignment, boxes ...Box) Box {
	return VCat(a, intersperse(Empty(sep, 0), boxes)...)
}

// PunctuateH is HCat with a copy of punct between adjacent boxes.
func PunctuateH(a Alignment, punct Box, boxes ...Box) Box {
	return HCat(a, intersperse(punct, boxes)...)
}

// PunctuateV is VCat with a copy of punct between adjacent boxes.
func PunctuateV(a Alignment, punct Box, boxes ...Box) Box {
	return VCat(a, intersperse(punct, boxes)...)
}

// Beside places r directly to the right of l, top-aligned.
func Beside(l, r Box) Box {
	return HCat(Top, l, r)
}

// BesideSep places r to the right of l with one column of space between.
func BesideSep(l, r Box) Box {
	return HCat(Top, l, Empty(0, 1), r)
}

// Atop places b directly below t, left-aligned.
func Atop(t, b Box) Box {
	return VCat(Left, t, b)
}

// AtopSep places b below t with one row of space between.
func AtopSep(t, b Box) Box {
	return VCat(Left, t, Empty(1, 0), b)
}

// AlignHoriz widens (or narrows) b to the given number of columns, placing
// the original content according to a. The height is unchanged.
func AlignHoriz(a Alignment, cols int, b Box) Box {
	return Box{rows: b.rows, cols: cols, content: subBox{halign: a, valign: AlignFirst, inner: b}}
}

// AlignVert grows (or shrinks) b to the given number of rows, placing the
// original content according to a. The width is unchanged.
func AlignVert(a Alignment, rows int, b Box) Box {
	return Box{rows: rows, cols: b.cols, content: subBox{halign: AlignFirst, valign: a, inner: b}}
}

// Align reinterprets b at an arbitrary declared size, aligning the original
// content on both axes.
func Align(halign, valign Alignment, rows, cols int, b Box) Box {
	return Box{rows: rows, cols: cols, content: subBox{halign: halign, valign: valign, inner: b}}
}

// MoveUp grows b by n rows and anchors the original content at the top.
// The motion becomes visible only when the result is embedded in a larger
// bottom-aligned context; on its own the box simply gets taller. This is
// the documented behavior, surprising as it may read.
func MoveUp(n int, b Box) Box {
	return AlignVert(Top, b.rows+n, b)
}

// MoveDown grows b by n rows and anchors the original content at the
// bottom. See MoveUp for the embedding caveat.
func MoveDown(n int, b Box) Box {
	return AlignVert(Bottom, b.rows+n, b)
}

// MoveLeft grows b by n columns and anchors the original content at the
// left edge. See MoveUp for the embedding caveat.
func MoveLeft(n int, b Box) Box {
	return AlignHoriz(Left, b.cols+n, b)
}

// MoveRight grows b by n columns and anchors the original content at the
// right edge. See MoveUp for the embedding caveat.
func MoveRight(n int, b Box) Box {
	return AlignHoriz(Right, b.cols+n, b)
}

// intersperse returns boxes with a copy of sep between each adjacent pair,
// never before the first or after the last.
func intersperse(sep Box, boxes []Box) []Box {
	if len(boxes) <= 1 {
		return boxes
	}
	out := make([]Box, 0, 2*len(boxes)-1)
	for i, b := range boxes {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
