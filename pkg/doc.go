// Package pkg provides the core libraries for boxgrid text layout.
//
// # Overview
//
// boxgrid composes rectangular boxes of text — horizontally, vertically,
// with alignment, spacing and paragraph flowing — and renders the
// composition into a flat grid of lines for terminal or file output. The
// pkg directory is organized into three areas:
//
//  1. [box] - The layout engine (box tree, combinators, flow, renderer)
//  2. [io] - JSON layout-document import and export
//  3. [errors] - Structured error codes shared by the CLI and HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	text / delimited rows / JSON document
//	         ↓
//	    [box] combinators (build an immutable box tree)
//	         ↓
//	    [box] renderer (pad, crop and merge to a fixed grid)
//	         ↓
//	    plain text lines
//
// # Quick Start
//
// Compose and render a small layout:
//
//	import "github.com/matzehuels/boxgrid/pkg/box"
//
//	header := box.Text("Report")
//	body := box.Para(box.Left, 40, "All systems nominal. No incidents recorded this week.")
//	fmt.Print(box.Render(box.VSep(1, box.Left, header, body)))
//
// Build from a JSON document instead:
//
//	doc, err := io.ImportJSON("layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := doc.Box()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(box.Render(b))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...         # All tests
//	go test ./pkg/box/...     # Engine only
//	go test -run Example      # Examples only
//
// [box]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/box
// [io]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/errors
package pkg
