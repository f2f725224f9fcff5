// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/pellucid/jparse"
)

// defaultMaxDepth bounds object and array nesting so that malicious input
// cannot exhaust the call stack.
const defaultMaxDepth = 10000

// A Parser is a recursive-descent parser over a stream of scanner tokens.
// It keeps exactly one token of lookahead and never backtracks. A Parser is
// good for a single input; it shares no state with other instances.
type Parser struct {
	sc  *jparse.Scanner
	tok jparse.Token // one-token lookahead buffer

	depth, maxDepth int
}

// NewParser constructs a parser that consumes input from src and pulls the
// first token into its lookahead buffer. A lexical error in the first token
// is reported immediately.
func NewParser(src string) (*Parser, error) {
	p := &Parser{sc: jparse.NewScanner(src), maxDepth: defaultMaxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetMaxDepth sets the maximum permitted nesting depth of objects and
// arrays. Input nested more deeply fails with a *jparse.ParseError rather
// than growing the stack without bound. The default is 10000.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses a single value spanning the whole input and returns it.
// Input remaining after the value is an error. The first lexical or
// grammatical error terminates the parse; errors have concrete type
// [*jparse.ParseError].
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok != jparse.EOF {
		return nil, p.failf("unexpected trailing content %v", p.tok)
	}
	return v, nil
}

// Parse parses src as a single JSON document and returns its value tree.
func Parse(src string) (Value, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// MustParse is Parse, but panics on error. Use for static inputs that are
// known to be valid.
func MustParse(src string) Value {
	v, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// advance pulls the next token from the scanner into the lookahead buffer.
// End of input is not an error here; it yields the EOF token and the grammar
// decides whether it is legal.
func (p *Parser) advance() error {
	err := p.sc.Next()
	if err == io.EOF {
		p.tok = jparse.EOF
		return nil
	} else if err != nil {
		return err
	}
	p.tok = p.sc.Token()
	return nil
}

// failf constructs a ParseError at the start of the current token.
func (p *Parser) failf(msg string, args ...any) error {
	return &jparse.ParseError{
		Message: fmt.Sprintf(msg, args...),
		Pos:     p.sc.Pos(),
	}
}

// parseValue consumes a single value of any type.
//
//	value := object | array | string | number | boolean | null
func (p *Parser) parseValue() (Value, error) {
	switch p.tok {
	case jparse.LBrace:
		return p.parseObject()
	case jparse.LSquare:
		return p.parseArray()
	case jparse.String:
		text, err := p.sc.Unescape()
		if err != nil {
			return nil, p.failf("invalid string: %v", err)
		}
		return String(text), p.advance()
	case jparse.Integer, jparse.Number:
		v := Number(p.sc.Float64())
		return v, p.advance()
	case jparse.True, jparse.False:
		v := Bool(p.tok == jparse.True)
		return v, p.advance()
	case jparse.Null:
		return Null{}, p.advance()
	case jparse.EOF:
		return nil, p.failf("unexpected end of input")
	default:
		return nil, p.failf("unexpected %v", p.tok)
	}
}

// parseObject consumes zero or more key:value members.
//
//	object := "{" [ member ("," member)* ] "}"
//	member := string ":" value
//
// Precondition: token == LBrace.
func (p *Parser) parseObject() (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	if err := p.advance(); err != nil {
		return nil, err
	}

	obj := Object{}
	if p.tok == jparse.RBrace {
		return obj, p.advance()
	}
	for {
		if p.tok != jparse.String {
			return nil, p.failf("expected string key, got %v", p.tok)
		}
		key, err := p.sc.Unescape()
		if err != nil {
			return nil, p.failf("invalid string: %v", err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok != jparse.Colon {
			return nil, p.failf("expected %v, got %v", jparse.Colon, p.tok)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})

		// Check whether we have more members (",") or are done ("}").
		// After a comma the next token must begin a new member, so a
		// trailing comma fails at the closing brace.
		switch p.tok {
		case jparse.Comma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case jparse.RBrace:
			return obj, p.advance()
		default:
			return nil, p.failf("expected %v or %v, got %v", jparse.Comma, jparse.RBrace, p.tok)
		}
	}
}

// parseArray consumes zero or more comma-separated values.
//
//	array := "[" [ value ("," value)* ] "]"
//
// Precondition: token == LSquare.
func (p *Parser) parseArray() (Value, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	if err := p.advance(); err != nil {
		return nil, err
	}

	arr := Array{}
	if p.tok == jparse.RSquare {
		return arr, p.advance()
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		switch p.tok {
		case jparse.Comma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case jparse.RSquare:
			return arr, p.advance()
		default:
			return nil, p.failf("expected %v or %v, got %v", jparse.Comma, jparse.RSquare, p.tok)
		}
	}
}

func (p *Parser) push() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.failf("exceeds maximum nesting depth (%d)", p.maxDepth)
	}
	return nil
}

func (p *Parser) pop() { p.depth-- }
