package box

import "strings"

// Greedy paragraph flow: words are packed into lines left to right, opening
// a new line whenever the next word (plus its separating space) would push
// the current line past the target width. Words are never broken; a single
// word wider than the target overflows and is hard-truncated at the end.

// flowState accumulates lines during a single Flow call.
type flowState struct {
	width int
	done  []string // completed lines, in output order
	cur   []string // words of the line being built
	curW  int      // cell width of cur, counting single spaces
}

// add appends one word, closing the current line first if it does not fit.
// A word always fits on an empty line, regardless of width.
func (f *flowState) add(w string) {
	wl := runeLen(w)
	switch {
	case f.curW == 0:
		f.cur, f.curW = []string{w}, wl
	case f.curW+1+wl <= f.width:
		f.cur = append(f.cur, w)
		f.curW += 1 + wl
	default:
		f.close()
		f.cur, f.curW = []string{w}, wl
	}
}

// close pushes the current line, if any, onto the completed list.
func (f *flowState) close() {
	if f.curW > 0 {
		f.done = append(f.done, unwords(f.cur))
		f.cur, f.curW = nil, 0
	}
}

// Flow wraps text into lines of at most width cells, one string per line.
// Whitespace runs in the input separate words and are otherwise discarded;
// word order is preserved across lines. An overlong word is truncated to
// width rather than broken, so every returned line is at most width cells.
func Flow(width int, text string) []string {
	f := flowState{width: width}
	for _, w := range strings.Fields(text) {
		f.add(w)
	}
	f.close()
	for i, l := range f.done {
		f.done[i] = takeRunes(width, l)
	}
	return f.done
}

// Para flows text at the given width and stacks the lines into a single box
// of exactly width columns. The alignment governs per-line horizontal
// placement within that width.
func Para(a Alignment, width int, text string) Box {
	lines := Flow(width, text)
	return paraBox(a, len(lines), width, lines)
}

// Columns flows text at the given width and splits the lines into boxes of
// at most height rows each. Every returned box is exactly height rows tall;
// the last one is padded when the final chunk runs short.
func Columns(a Alignment, width, height int, text string) []Box {
	lines := Flow(width, text)
	if height <= 0 {
		return nil
	}
	var out []Box
	for start := 0; start < len(lines); start += height {
		end := min(start+height, len(lines))
		out = append(out, paraBox(a, height, width, lines[start:end]))
	}
	return out
}

// paraBox stacks flowed lines into a top-anchored box of exactly height
// rows by width columns. A zero-row spacer pins the column count even when
// every line runs short of width, so the alignment decides where each line
// sits inside the full paragraph frame.
func paraBox(a Alignment, height, width int, lines []string) Box {
	bs := make([]Box, len(lines), len(lines)+1)
	for i, l := range lines {
		bs[i] = Text(l)
	}
	bs = append(bs, Empty(0, width))
	return AlignVert(Top, height, VCat(a, bs...))
}
