package box

import "strings"

// Text measurement and padding primitives. Everything in this file counts
// width in runes: one rune is one terminal cell. Grapheme clusters and
// double-width characters are out of scope for the engine.

// runeLen returns the width of s in cells.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// takeRunes returns the first n runes of s. If s has fewer than n runes it
// is returned unchanged; padding is layered separately via justify.
func takeRunes(n int, s string) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// unwords joins words with single spaces.
func unwords(ws []string) string {
	return strings.Join(ws, " ")
}

// unlines joins lines with newline terminators. Every line, including the
// last, is terminated.
func unlines(ls []string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

// blanks returns a string of n spaces.
func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// reversed returns a copy of xs in reverse order.
func reversed[E any](xs []E) []E {
	out := make([]E, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// takePad returns exactly n elements: the first n of xs, extended with pad
// when xs is shorter. n <= 0 yields an empty slice.
func takePad[E any](pad E, n int, xs []E) []E {
	if n <= 0 {
		return nil
	}
	out := make([]E, n)
	copied := copy(out, xs)
	for i := copied; i < n; i++ {
		out[i] = pad
	}
	return out
}

// takePadAligned resizes xs to exactly n elements, distributing padding or
// truncation across both ends according to a. The sequence is split into a
// leading and a trailing part using a's weights over its current length;
// each part is then independently grown or cut to a's share of n. AlignFirst
// reduces to takePad; AlignLast pads and cuts at the front.
func takePadAligned[E any](a Alignment, pad E, n int, xs []E) []E {
	if n <= 0 {
		return nil
	}
	split := a.rev(len(xs))
	lead := takePad(pad, a.rev(n), reversed(xs[:split]))
	trail := takePad(pad, a.fwd(n), xs[split:])
	return append(reversed(lead), trail...)
}

// justify pads or truncates s to exactly width cells, filling with pad and
// distributing the adjustment according to a. A width <= 0 yields the empty
// string.
func justify(a Alignment, pad rune, width int, s string) string {
	return string(takePadAligned(a, pad, width, []rune(s)))
}
