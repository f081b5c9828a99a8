// Package io provides JSON import and export for box layout documents.
//
// # Overview
//
// A layout document is a JSON tree of tagged nodes describing how to build
// a [box.Box]. The format exists so external tools can produce layouts
// without linking against the engine: the CLI render command and the HTTP
// render endpoint both consume it.
//
// # JSON Format
//
// Every node carries a "type" discriminator. Composite nodes nest their
// children under "boxes" (or "box" for single-child nodes):
//
//	{
//	  "type": "vcat",
//	  "align": "left",
//	  "boxes": [
//	    {"type": "text", "text": "boxgrid"},
//	    {"type": "para", "align": "left", "width": 30,
//	     "text": "Composes rectangular boxes of text."}
//	  ]
//	}
//
// # Node Types
//
//   - text: one line of raw text ("text")
//   - lines: multi-line text split on newlines ("text", optional "align")
//   - empty: blank space ("rows", "cols")
//   - hcat / vcat: concatenation ("align", "boxes")
//   - hsep / vsep: concatenation with a blank gutter ("gutter", "align", "boxes")
//   - para: greedy word-wrapped paragraph ("align", "width", "text")
//   - columns: paragraph split into side-by-side columns
//     ("align", "width", "height", "gutter", "text")
//   - align: reinterpret a child at a new declared size
//     ("halign", "valign", "rows", "cols", "box")
//
// Alignment names are those accepted by [box.ParseAlignment]: "first",
// "last", "center1", "center2" and the axis aliases "top", "bottom",
// "left", "right", "center". When "align" is omitted, hcat and hsep
// default to "top"; vcat, vsep, para, columns and lines default to "left".
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	doc, err := io.ImportJSON("layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := doc.Box()
//
// Reading validates JSON syntax only; [Node.Box] validates node types and
// alignment names, and its errors name the offending node path (for
// example "vcat.boxes[1]").
//
// # Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] to write
// to any io.Writer. Documents round-trip: a written document re-imports
// and builds the identical box.
package io
