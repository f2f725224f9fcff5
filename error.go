// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

package jparse

import "fmt"

// ParseError is the concrete type of all lexical and syntax errors reported
// by the scanner and the parser. A ParseError is immutable once constructed;
// it records the position of the input at the point of failure.
type ParseError struct {
	Message string
	Pos
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
