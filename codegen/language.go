package codegen

import "io"

// Language renders synthesized text in a target language's surface syntax.
// Implementations only deal in text; they never inspect the model.
type Language interface {
	// Name identifies the language, e.g. "go" or "rust".
	Name() string

	// ModuleDocs writes docs to w as the language's module-level doc
	// comment. Implementations emit docs line by line, prefixing each line
	// (including empty ones) and terminating each with a newline. The text
	// itself is never re-wrapped or reflowed.
	ModuleDocs(docs string, w io.Writer) error
}

// UnimplementedLanguage is a no-op Language for embedding by backends that
// only implement part of the surface.
type UnimplementedLanguage struct{}

func (UnimplementedLanguage) Name() string { return "" }

func (UnimplementedLanguage) ModuleDocs(docs string, w io.Writer) error { return nil }

// Languages lists the registered language backends by name.
func Languages() map[string]Language {
	return map[string]Language{
		"go":   Go{},
		"rust": Rust{},
	}
}

func writePrefixed(w io.Writer, prefix, text string) error {
	rest := text
	for {
		line, more, found := cutLine(rest)
		if _, err := io.WriteString(w, prefix); err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if !found {
			return nil
		}
		rest = more
	}
}

func cutLine(s string) (line, rest string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
