// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

// Package jparse implements a JSON lexical scanner.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a
// scanner from an input string and call its Next method to iterate over the
// stream. Next advances to the next input token and returns nil, or reports
// an error:
//
//	s := jparse.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error indicates a lexical error in the input, and has concrete type
// [*ParseError] carrying the offset, line, and column of the failure.
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// # Parsing
//
// The ast subpackage implements a recursive-descent parser that consumes
// scanner tokens and builds a tree of JSON values:
//
//	v, err := ast.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parsing is fail-fast: the first lexical or grammatical error aborts the
// parse and is reported as a [*ParseError].
package jparse
