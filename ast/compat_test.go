// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

package ast_test

import (
	"io"
	"strings"
	"testing"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/pellucid/jparse/ast"
)

// TestCompat cross-checks which documents the parser accepts against the
// jsontext reference decoder. Each input is a complete document; acceptance
// must agree in both directions.
func TestCompat(t *testing.T) {
	inputs := []string{
		// Valid documents
		`null`,
		`true`,
		`false`,
		`-0`,
		`0.5`,
		`1e10`,
		`1e400`, // syntactically fine, saturates to +Inf
		`""`,
		`"a\tbA"`,
		`[]`,
		`{}`,
		`[[[[]]]]`,
		`[1, 2.5, -3e-1]`,
		`{"a":1,"a":2}`,
		`{"k":[1,2,{"x":null}],"s":"v"}`,
		"\n\t {\"pad\" : [ ] } \r\n",

		// Invalid documents
		``,
		`   `,
		`01`,
		`-`,
		`1.`,
		`1e+`,
		`"abc`,
		`"\x"`,
		`nul`,
		`truee`,
		`[`,
		`]`,
		`{`,
		`[1,2,]`,
		`{"a":1,}`,
		`{"a"}`,
		`{"a":}`,
		`{'a':1}`,
		`{"a":1 "b":2}`,
		`[1 2]`,
		`"a" "b"`,
		`{} {}`,
	}

	for _, in := range inputs {
		_, err := ast.Parse(in)
		got := err == nil
		want := oracleAccepts(in)
		if got != want {
			t.Errorf("Input %#q: parser accepts %v, reference decoder accepts %v (err=%v)",
				in, got, want, err)
		}
	}
}

// oracleAccepts reports whether jsontext decodes the input as exactly one
// complete document with nothing after it.
func oracleAccepts(s string) bool {
	dec := jsontext.NewDecoder(strings.NewReader(s), jsontext.AllowDuplicateNames(true))
	if _, err := dec.ReadValue(); err != nil {
		return false
	}
	_, err := dec.ReadToken()
	return err == io.EOF
}
