package box

// Alignment controls how padding and cropping are distributed when a box is
// resized along one axis. The same value is used for both axes: "first"
// means top for vertical placement and left for horizontal placement.
type Alignment int

const (
	// AlignFirst anchors content at the start of the axis (top or left).
	AlignFirst Alignment = iota

	// AlignCenter1 centers content, biasing leftover space toward the start.
	AlignCenter1

	// AlignCenter2 centers content, biasing leftover space toward the end.
	AlignCenter2

	// AlignLast anchors content at the end of the axis (bottom or right).
	AlignLast
)

// Axis-specific aliases. Top and Left are the same value; which one reads
// better depends on whether the alignment is applied vertically or
// horizontally.
const (
	Top    = AlignFirst
	Bottom = AlignLast
	Left   = AlignFirst
	Right  = AlignLast
	Center = AlignCenter1
)

// rev is the share of n assigned to the leading (top/left) side.
func (a Alignment) rev(n int) int {
	switch a {
	case AlignFirst:
		return 0
	case AlignLast:
		return n
	case AlignCenter1:
		return (n + 1) / 2
	default: // AlignCenter2
		return n / 2
	}
}

// fwd is the share of n assigned to the trailing (bottom/right) side.
// rev and fwd always partition n exactly.
func (a Alignment) fwd(n int) int {
	return n - a.rev(n)
}

// String returns the canonical lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignFirst:
		return "first"
	case AlignCenter1:
		return "center1"
	case AlignCenter2:
		return "center2"
	case AlignLast:
		return "last"
	}
	return "unknown"
}

// ParseAlignment converts a name into an Alignment. It accepts the canonical
// names ("first", "last", "center1", "center2") as well as the axis aliases
// ("top", "left", "bottom", "right", "center"). The second return value
// reports whether the name was recognized.
func ParseAlignment(name string) (Alignment, bool) {
	switch name {
	case "first", "top", "left":
		return AlignFirst, true
	case "last", "bottom", "right":
		return AlignLast, true
	case "center", "center1":
		return AlignCenter1, true
	case "center2":
		return AlignCenter2, true
	}
	return AlignFirst, false
}
