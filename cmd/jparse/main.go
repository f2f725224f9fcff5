// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

// Program jparse validates a JSON document. It parses the named file, or
// standard input when no file is given, and exits 0 if the document is valid
// JSON. Otherwise it prints the first parse error, with its line and column,
// to stderr and exits 1.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pellucid/jparse/ast"
)

var cli struct {
	Path string `arg:"" optional:"" type:"path" help:"Path to a JSON file. Reads stdin when omitted."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("jparse"),
		kong.Description("Validate a JSON document and report the first syntax error."),
		kong.UsageOnError(),
	)
	os.Exit(run(cli.Path, os.Stdin, os.Stderr))
}

// run parses the document at path (or from stdin if path is empty) and
// returns the process exit code, writing diagnostics to errw.
func run(path string, stdin io.Reader, errw io.Writer) int {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(errw, "jparse: %v\n", err)
		return 1
	}

	if _, err := ast.Parse(string(data)); err != nil {
		fmt.Fprintln(errw, err)
		return 1
	}
	return 0
}
