package box

import "testing"

func checkSize(t *testing.T, b Box, rows, cols int) {
	t.Helper()
	if b.Rows() != rows || b.Cols() != cols {
		t.Errorf("size = %dx%d, want %dx%d", b.Rows(), b.Cols(), rows, cols)
	}
}

func TestConstructorSizes(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		rows int
		cols int
	}{
		{name: "null", box: Null(), rows: 0, cols: 0},
		{name: "empty", box: Empty(2, 3), rows: 2, cols: 3},
		{name: "empty clamps negative", box: Empty(-1, -5), rows: 0, cols: 0},
		{name: "char", box: Char('x'), rows: 1, cols: 1},
		{name: "text", box: Text("hello"), rows: 1, cols: 5},
		{name: "text multibyte", box: Text("héllo"), rows: 1, cols: 5},
		{name: "text empty", box: Text(""), rows: 1, cols: 0},
		{name: "lines", box: Lines(Left, "ab\nc"), rows: 2, cols: 2},
		{name: "lines single", box: Lines(Left, "abc"), rows: 1, cols: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSize(t, tt.box, tt.rows, tt.cols)
		})
	}
}

func TestHCatSize(t *testing.T) {
	tests := []struct {
		name  string
		boxes []Box
		rows  int
		cols  int
	}{
		{name: "height is max, width is sum", boxes: []Box{Text("ab"), Text("c")}, rows: 1, cols: 3},
		{name: "tallest box wins", boxes: []Box{Empty(3, 2), Text("x")}, rows: 3, cols: 3},
		{name: "single box", boxes: []Box{Text("abc")}, rows: 1, cols: 3},
		{name: "no boxes is null", boxes: nil, rows: 0, cols: 0},
		{name: "null is identity", boxes: []Box{Null(), Text("ab"), Null()}, rows: 1, cols: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSize(t, HCat(Top, tt.boxes...), tt.rows, tt.cols)
		})
	}
}

func TestVCatSize(t *testing.T) {
	tests := []struct {
		name  string
		boxes []Box
		rows  int
		cols  int
	}{
		{name: "height is sum, width is max", boxes: []Box{Text("ab"), Text("c")}, rows: 2, cols: 2},
		{name: "widest box wins", boxes: []Box{Empty(2, 4), Text("x")}, rows: 3, cols: 4},
		{name: "no boxes is null", boxes: nil, rows: 0, cols: 0},
		{name: "null is identity", boxes: []Box{Null(), Text("ab"), Null()}, rows: 1, cols: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSize(t, VCat(Left, tt.boxes...), tt.rows, tt.cols)
		})
	}
}

func TestSeparatorSizes(t *testing.T) {
	a, b, c := Text("ab"), Text("c"), Text("def")

	tests := []struct {
		name string
		box  Box
		rows int
		cols int
	}{
		{name: "hsep adds gutter columns", box: HSep(2, Top, a, b), rows: 1, cols: 5},
		{name: "hsep three boxes", box: HSep(1, Top, a, b, c), rows: 1, cols: 8},
		{name: "hsep single box no gutter", box: HSep(3, Top, a), rows: 1, cols: 2},
		{name: "vsep adds gutter rows", box: VSep(1, Left, a, b), rows: 3, cols: 2},
		{name: "punctuateH counts separator width", box: PunctuateH(Top, Char('|'), a, b, c), rows: 1, cols: 8},
		{name: "punctuateV counts separator height", box: PunctuateV(Left, Text("--"), a, b), rows: 3, cols: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSize(t, tt.box, tt.rows, tt.cols)
		})
	}
}

func TestPairwiseCombinators(t *testing.T) {
	l, r := Text("left"), Lines(Left, "right\nside")

	checkSize(t, Beside(l, r), 2, 9)
	checkSize(t, BesideSep(l, r), 2, 10)
	checkSize(t, Atop(l, r), 3, 5)
	checkSize(t, AtopSep(l, r), 4, 5)
}

func TestAlignSizes(t *testing.T) {
	b := Text("ab")

	tests := []struct {
		name string
		box  Box
		rows int
		cols int
	}{
		{name: "alignHoriz keeps height", box: AlignHoriz(Right, 5, b), rows: 1, cols: 5},
		{name: "alignVert keeps width", box: AlignVert(Bottom, 3, b), rows: 3, cols: 2},
		{name: "align sets both", box: Align(Center, Center, 3, 5, b), rows: 3, cols: 5},
		{name: "align may shrink", box: Align(Left, Top, 1, 1, Lines(Left, "abc\ndef")), rows: 1, cols: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkSize(t, tt.box, tt.rows, tt.cols)
		})
	}
}

func TestMoveSizes(t *testing.T) {
	b := Text("ab")

	// The move combinators grow the box; the anchored edge only matters once
	// the result is embedded in a larger aligned context.
	checkSize(t, MoveUp(2, b), 3, 2)
	checkSize(t, MoveDown(2, b), 3, 2)
	checkSize(t, MoveLeft(3, b), 1, 5)
	checkSize(t, MoveRight(3, b), 1, 5)
	checkSize(t, MoveDown(0, b), 1, 2)
}
