package codegen

import "io"

// Go renders output in Go surface syntax.
type Go struct{}

func (Go) Name() string { return "go" }

// ModuleDocs writes docs as a package doc comment, one "// " prefixed line
// per input line. Blank lines stay blank-prefixed so the comment block stays
// attached.
func (Go) ModuleDocs(docs string, w io.Writer) error {
	return writePrefixed(w, "// ", docs)
}
