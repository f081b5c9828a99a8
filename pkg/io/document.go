package io

import (
	"fmt"

	"github.com/matzehuels/boxgrid/pkg/box"
	"github.com/matzehuels/boxgrid/pkg/errors"
)

// Node is one element of a layout document. Which fields are meaningful
// depends on Type; see the package documentation for the format.
type Node struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Align  string `json:"align,omitempty"`
	HAlign string `json:"halign,omitempty"`
	VAlign string `json:"valign,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Rows   int    `json:"rows,omitempty"`
	Cols   int    `json:"cols,omitempty"`
	Gutter int    `json:"gutter,omitempty"`
	Boxes  []Node `json:"boxes,omitempty"`
	Child  *Node  `json:"box,omitempty"`
}

// Box builds the box described by the document rooted at n. It validates
// node types and alignment names; errors name the path of the offending
// node.
func (n *Node) Box() (box.Box, error) {
	path := n.Type
	if path == "" {
		path = "document"
	}
	return build(n, path)
}

// ParseAlignment converts an alignment name into a box.Alignment, returning
// a structured error for unknown names.
func ParseAlignment(name string) (box.Alignment, error) {
	a, ok := box.ParseAlignment(name)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment: %q", name)
	}
	return a, nil
}

// alignOrDefault resolves an optional alignment field.
func alignOrDefault(name string, def box.Alignment) (box.Alignment, error) {
	if name == "" {
		return def, nil
	}
	return ParseAlignment(name)
}

func build(n *Node, path string) (box.Box, error) {
	switch n.Type {
	case "text":
		for _, r := range n.Text {
			if r == '\n' {
				return box.Box{}, errors.New(errors.ErrCodeInvalidDocument,
					"%s: text node contains a newline (use a lines node)", path)
			}
		}
		return box.Text(n.Text), nil

	case "lines":
		a, err := alignOrDefault(n.Align, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		return box.Lines(a, n.Text), nil

	case "empty":
		return box.Empty(n.Rows, n.Cols), nil

	case "hcat":
		a, err := alignOrDefault(n.Align, box.Top)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		kids, err := buildList(n.Boxes, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.HCat(a, kids...), nil

	case "vcat":
		a, err := alignOrDefault(n.Align, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		kids, err := buildList(n.Boxes, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.VCat(a, kids...), nil

	case "hsep":
		a, err := alignOrDefault(n.Align, box.Top)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		kids, err := buildList(n.Boxes, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.HSep(n.Gutter, a, kids...), nil

	case "vsep":
		a, err := alignOrDefault(n.Align, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		kids, err := buildList(n.Boxes, path)
		if err != nil {
			return box.Box{}, err
		}
		return box.VSep(n.Gutter, a, kids...), nil

	case "para":
		a, err := alignOrDefault(n.Align, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		if n.Width <= 0 {
			return box.Box{}, errors.New(errors.ErrCodeInvalidDocument,
				"%s: para requires a positive width", path)
		}
		return box.Para(a, n.Width, n.Text), nil

	case "columns":
		a, err := alignOrDefault(n.Align, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		if n.Width <= 0 || n.Height <= 0 {
			return box.Box{}, errors.New(errors.ErrCodeInvalidDocument,
				"%s: columns requires positive width and height", path)
		}
		cols := box.Columns(a, n.Width, n.Height, n.Text)
		return box.HSep(n.Gutter, box.Top, cols...), nil

	case "align":
		if n.Child == nil {
			return box.Box{}, errors.New(errors.ErrCodeInvalidDocument,
				"%s: align requires a child box", path)
		}
		ha, err := alignOrDefault(n.HAlign, box.Left)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		va, err := alignOrDefault(n.VAlign, box.Top)
		if err != nil {
			return box.Box{}, wrapAt(path, err)
		}
		inner, err := build(n.Child, path+".box")
		if err != nil {
			return box.Box{}, err
		}
		return box.Align(ha, va, n.Rows, n.Cols, inner), nil

	case "":
		return box.Box{}, errors.New(errors.ErrCodeInvalidDocument, "%s: missing node type", path)

	default:
		return box.Box{}, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown node type: %q", path, n.Type)
	}
}

func buildList(nodes []Node, path string) ([]box.Box, error) {
	out := make([]box.Box, len(nodes))
	for i := range nodes {
		b, err := build(&nodes[i], fmt.Sprintf("%s.boxes[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// wrapAt prefixes an alignment error with the node path.
func wrapAt(path string, err error) error {
	return errors.Wrap(errors.GetCode(err), err, "%s", path)
}
