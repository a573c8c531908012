// Command tok lexes a source file and prints one token per line.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/goop-frontend/internal/lexer"
	"github.com/kievzenit/goop-frontend/internal/source"
	"github.com/kievzenit/goop-frontend/internal/token"
	"github.com/sanity-io/litter"
)

func main() {
	raw := flag.Bool("raw", false, "dump tokens with litter.Dump instead of token.Print")
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

	toks, err := lexer.Tokenize(src, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, t := range toks {
		if *raw {
			litter.Dump(t)
			continue
		}
		token.Print(os.Stdout, t)
		fmt.Println()
	}
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
