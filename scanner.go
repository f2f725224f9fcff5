// Copyright (C) 2024 The jparse Authors. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an in-memory JSON text. Each call to
// Next advances the scanner to the next token, or reports an error. The
// scanner borrows its input; only decoded strings allocate.
type Scanner struct {
	src  string
	off  int // offset of the next unread byte
	last int // size in bytes of the last-read input rune

	// Apparent line and column of the next unread byte (1-based).
	line, col int

	tok   Token
	start int // start offset of the current token
	pos   Pos // position of the start of the current token
	err   error
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF and the token is EOF.
// Lexical errors have concrete type *ParseError.
func (s *Scanner) Next() error {
	s.err = nil
	s.tok = Invalid

	for {
		s.start = s.off
		s.pos = Pos{Offset: s.off, Line: s.line, Column: s.col}

		ch, ok := s.rune()
		if !ok {
			s.tok = EOF
			return s.setErr(io.EOF)
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.line++
				s.col = 1
			}
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.tok = t
			return nil
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString()
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber(ch)
		}

		// Handle constants: true, false, null.
		if ch == 't' || ch == 'f' || ch == 'n' {
			return s.scanKeyword(ch)
		}

		return s.failf(s.cur(), "unexpected character %q", ch)
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token, a view of the input.
// String tokens include their enclosing quotes.
func (s *Scanner) Text() string { return s.src[s.start:s.off] }

// Pos returns the position of the start of the current token. After a failed
// call to Next it reports the start of the token being scanned at the point
// of failure.
func (s *Scanner) Pos() Pos { return s.pos }

// End returns the position just past the end of the current token.
func (s *Scanner) End() Pos { return Pos{Offset: s.off, Line: s.line, Column: s.col} }

// Int64 returns the value of the current token as an int64.
// It panics if the current token is not an Integer.
func (s *Scanner) Int64() int64 {
	if s.tok != Integer {
		panic(fmt.Sprintf("token is %v, not integer", s.tok))
	}
	v, err := strconv.ParseInt(s.Text(), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the value of the current token as a float64.  Values
// outside the representable range round to an infinity; values below the
// representable precision round silently. It panics if the current token is
// not an Integer or a Number.
func (s *Scanner) Float64() float64 {
	if s.tok != Integer && s.tok != Number {
		panic(fmt.Sprintf("token is %v, not a number", s.tok))
	}
	v, err := strconv.ParseFloat(s.Text(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(err)
	}
	return v
}

// Unescape returns the decoded value of the current token with quotes
// removed and escape sequences replaced. It panics if the current token is
// not a String.
func (s *Scanner) Unescape() (string, error) {
	if s.tok != String {
		panic(fmt.Sprintf("token is %v, not string", s.tok))
	}
	dec, err := Unquote(s.Text())
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// scanString consumes a string literal. The opening quote has already been
// read. Escape sequences are validated here; decoding them is Unquote's job.
func (s *Scanner) scanString() error {
	for {
		ch, ok := s.rune()
		if !ok {
			return s.failf(s.cur(), "unterminated string")
		}
		switch {
		case ch == '"':
			s.tok = String
			return nil
		case ch == '\\':
			esc, ok := s.rune()
			if !ok {
				return s.failf(s.cur(), "unterminated string")
			}
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				// ok, simple escape
			case 'u':
				if err := s.readHex4(); err != nil {
					return err
				}
			default:
				return s.failf(s.cur(), "invalid %q after escape", esc)
			}
		case ch < ' ':
			return s.failf(s.cur(), "unescaped control %q", ch)
		}
	}
}

func (s *Scanner) scanNumber(start rune) error {
	if start == '-' {
		// A leading sign requires at least one digit after it.
		ch, ok := s.rune()
		if !ok || !isDigit(ch) {
			return s.failf(s.cur(), "missing digits after minus sign")
		}
	}

	// Consume the remainder of the integer part.
	_, ch, more := s.readWhile(isDigit)

	// Check for extra leading zeroes, which are disallowed by the JSON spec.
	// That is: 0.12 is OK, 01.2 is not.
	if hasExtraLeadingZeroes(s.src[s.start:s.off]) {
		return s.failf(s.pos, "extra leading zeroes")
	}

	s.tok = Integer
	if !more {
		return nil
	}

	// If a decimal point follows, consume a fractional part.
	if ch == '.' {
		s.tok = Number
		nr, next, ok := s.readWhile(isDigit)
		if nr == 0 {
			return s.failf(s.cur(), "missing digits after decimal point")
		}
		ch, more = next, ok
		if !more {
			return nil
		}
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		return nil
	}
	s.tok = Number
	ch, ok := s.rune()
	if ok && (ch == '-' || ch == '+') {
		ch, ok = s.rune()
	}
	if !ok || !isDigit(ch) {
		return s.failf(s.cur(), "missing exponent digits")
	}
	if _, _, more := s.readWhile(isDigit); more {
		s.unrune()
	}
	return nil
}

// scanKeyword consumes one of the literal keywords true, false, or null,
// whose first rune has already been read.
func (s *Scanner) scanKeyword(first rune) error {
	var want mem.RO
	switch first {
	case 't':
		s.tok, want = True, mem.S("true")
	case 'f':
		s.tok, want = False, mem.S("false")
	default:
		s.tok, want = Null, mem.S("null")
	}
	if _, _, more := s.readWhile(isNameRune); more {
		s.unrune()
	}
	if got := mem.S(s.Text()); !got.Equal(want) {
		s.tok = Invalid
		return s.failf(s.pos, "invalid keyword %q", s.Text())
	}
	return nil
}

// rune decodes the next rune of the input. It reports false at end of input.
func (s *Scanner) rune() (rune, bool) {
	if s.off >= len(s.src) {
		s.last = 0
		return 0, false
	}
	ch, nb := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += nb
	s.col += nb
	s.last = nb
	return ch, true
}

// unrune puts the last-read rune back on the input. It must not be called
// after reading a newline.
func (s *Scanner) unrune() {
	s.off -= s.last
	s.col -= s.last
	s.last = 0
}

// cur returns the position of the last-read rune, or of the end of input if
// the last read failed.
func (s *Scanner) cur() Pos {
	return Pos{Offset: s.off - s.last, Line: s.line, Column: s.col - s.last}
}

// readWhile consumes runes matching f from the input until end of input or
// until a rune not matching f is found. It reports the number of runes
// consumed and the first non-matching rune, if any. It is the caller's
// responsibility to unread that rune, if desired.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, bool) {
	var nr int
	for {
		ch, ok := s.rune()
		if !ok {
			return nr, 0, false
		} else if !f(ch) {
			return nr, ch, true
		}
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, ok := s.rune()
		if !ok {
			return s.failf(s.cur(), "unterminated string")
		} else if !isHexDigit(ch) {
			return s.failf(s.cur(), "invalid Unicode escape: not a hex digit: %q", ch)
		}
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(pos Pos, msg string, args ...any) error {
	return s.setErr(&ParseError{Message: fmt.Sprintf(msg, args...), Pos: pos})
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// hasExtraLeadingZeroes reports whether the representation of an integer in
// text has redundant leading zeroes, disallowed by the spec.
//
// OK: 0, 0.1, -1.0, -0.1 are all OK.
// Bad: -01, 01.2, -01.0, 00.1.
func hasExtraLeadingZeroes(text string) bool {
	text = strings.TrimPrefix(text, "-")
	return len(text) > 1 && text[0] == '0' && isDigit(rune(text[1]))
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
