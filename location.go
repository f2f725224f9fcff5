// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

package jparse

import "fmt"

// A Pos describes a location in source text.
type Pos struct {
	Offset int // byte offset into the input, 0-based
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }
