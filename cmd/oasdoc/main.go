// Command oasdoc reads an OpenAPI 3.1 specification (JSON or YAML) and
// prints the synthesized module documentation header for a target language.
//
// Usage:
//
//	oasdoc [-lang go|rust] [-log LEVEL] <spec-file>
//
// The header goes to stdout; warnings and errors go to stderr. Warnings do
// not affect the exit status.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/speakeasy-api/oasdoc/codegen"
	"github.com/speakeasy-api/oasdoc/openapi"
)

func main() {
	langName := flag.String("lang", "go", "target language (go, rust)")
	logLevel := flag.String("log", "warn", "log level (error, warn, info, debug)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <spec-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	lang, ok := codegen.Languages()[*langName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown language %q (want go or rust)\n", *langName)
		os.Exit(1)
	}

	spec, err := openapi.ReadFromFile(flag.Arg(0))
	if err != nil {
		fmt.Fprint(os.Stderr, openapi.FormatDecodeError(err))
		os.Exit(1)
	}

	gen := codegen.New(lang, codegen.WithLogLevel(codegen.ParseLogLevel(*logLevel)))

	out := bufio.NewWriter(os.Stdout)
	warnings, err := gen.WriteTo(spec, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Warnings come last so they never interleave with the rendered output
	// when stdout and stderr share a terminal.
	color := isatty.IsTerminal(os.Stderr.Fd())
	for _, warning := range warnings {
		if color {
			fmt.Fprintf(os.Stderr, "\x1b[33mwarning: %s\x1b[0m\n", warning)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
	}
}
