package codegen

import "io"

// Rust renders output in Rust surface syntax.
type Rust struct{}

func (Rust) Name() string { return "rust" }

// ModuleDocs writes docs as an inner doc comment, one "//! " prefixed line
// per input line.
func (Rust) ModuleDocs(docs string, w io.Writer) error {
	return writePrefixed(w, "//! ", docs)
}
