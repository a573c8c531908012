// Command ast lexes and parses a source file, then prints its AST.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/goop-frontend/internal/lexer"
	"github.com/kievzenit/goop-frontend/internal/parser"
	"github.com/kievzenit/goop-frontend/internal/printer"
	"github.com/kievzenit/goop-frontend/internal/source"
	"github.com/sanity-io/litter"
)

func main() {
	raw := flag.Bool("raw", false, "dump the AST with litter.Dump instead of printer.PrintSourceFile")
	flag.Parse()

	path, data, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	src, err := source.NewRuneSource(bytes.NewReader(data), path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l := lexer.NewLexer(src, path)
	ts, err := lexer.NewTokenStream(l)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	file, err := parser.ParseSourceFile(ts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *raw {
		litter.Dump(file)
		return
	}
	printer.PrintSourceFile(os.Stdout, file)
}

// readSource reads the named file, or stdin when path is "" or "-".
func readSource(path string) (string, []byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", data, err
	}
	data, err := os.ReadFile(path)
	return path, data, err
}
