// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error. The text of
// string and number tokens is retained exactly as it appears in the input;
// the scanner never decodes escapes or re-renders digits.
type Scanner struct {
	r    *bufio.Reader
	buf  bytes.Buffer // current token
	tok  Token
	err  error
	last int // size in bytes of last-read input rune

	pos, end int // start and end offsets of current token

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input. It returns false when the
// input is exhausted or an error occurs; after Next returns false, Err
// reports the reason, returning nil at a clean end of input.
func (s *Scanner) Next() bool {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return false
		} else if err != nil {
			s.err = s.ioError(err)
			return false
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
			return true
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.finish(s.scanNumber(ch))
		}

		// Handle string values.
		if ch == '"' {
			return s.finish(s.scanString())
		}

		// Handle constants: true, false, null
		switch ch {
		case 't':
			return s.finish(s.scanKeyword(ch, mem.S("true"), True))
		case 'f':
			return s.finish(s.scanKeyword(ch, mem.S("false"), False))
		case 'n':
			return s.finish(s.scanKeyword(ch, mem.S("null"), Null))
		}
		s.err = s.failf(CodeUnexpectedCharacter, "unexpected %q", ch)
		return false
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next, or nil if scanning stopped
// at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. The return value is
// only valid until the next call of Next. The caller must copy the contents
// of the returned slice if it is needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.buf.Bytes()...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

func (s *Scanner) finish(err error) bool {
	if err != nil {
		s.err = err
		return false
	}
	return true
}

// scanString consumes a string literal up to its closing quotation mark.
// The literal's span is recorded verbatim; escape sequences are skipped but
// not validated or decoded.
func (s *Scanner) scanString() error {
	s.buf.WriteByte('"')
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf(CodeUnterminatedString, "unterminated string")
		} else if err != nil {
			return s.ioError(err)
		}
		s.buf.WriteRune(ch)
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			s.tok = String
			return nil
		}
	}
}

func (s *Scanner) scanNumber(start rune) error {
	s.buf.WriteRune(start)

	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		ch, err := s.require(isDigit, "digit")
		if err != nil {
			return err
		}
		s.buf.WriteRune(ch)
	}

	// Consume the remainder of an integer.
	_, ch, err := s.readWhile(isDigit)
	if err != nil {
		if err == io.EOF {
			if s.hasLeadingZeroes() {
				return s.failf(CodeInvalidNumber, "extra leading zeroes")
			}
			s.tok = Integer
			return nil
		}
		return err
	}

	// Check for extra leading zeroes, which are disallowed in JSON.
	// That is: 0.12 is OK, 01.2 is not. The delimiter already read is not
	// part of the lexeme, so it is excluded from the reported offset.
	if s.hasLeadingZeroes() {
		s.unrune()
		return s.failf(CodeInvalidNumber, "extra leading zeroes")
	}

	// If a decimal point follows, consume a fractional part.
	var isFloat bool
	if ch == '.' {
		s.buf.WriteRune(ch)
		var nr int
		nr, ch, err = s.readWhile(isDigit)
		if err != nil && err != io.EOF {
			return err
		} else if nr == 0 {
			return s.failf(CodeInvalidNumber, "no digits after decimal point")
		}
		isFloat = true
		if err == io.EOF {
			s.tok = Number
			return nil
		}
	}

	// If an exponent follows, consume it.
	if ch != 'E' && ch != 'e' {
		s.unrune()
		if isFloat {
			s.tok = Number
		} else {
			s.tok = Integer
		}
		return nil
	}

	s.buf.WriteRune(ch)
	ch, err = s.require(isExpStart, "sign or digit")
	if err != nil {
		return err
	}
	s.buf.WriteRune(ch)
	nr, _, err := s.readWhile(isDigit)
	if nr == 0 && (ch == '-' || ch == '+') {
		// It's OK to have no digits if the previous rune was not a sign,
		// otherwise we have to have at least one.
		return s.failf(CodeInvalidNumber, "missing exponent digits")
	} else if err == io.EOF {
		s.tok = Number
		return nil
	} else if err != nil {
		return err
	}
	s.unrune()
	s.tok = Number
	return nil
}

// hasLeadingZeroes reports whether the integer part accumulated in the
// buffer has redundant leading zeroes (0 is OK, 01 is not).
func (s *Scanner) hasLeadingZeroes() bool {
	digits := s.buf.Bytes()
	if digits[0] == '-' {
		digits = digits[1:]
	}
	return digits[0] == '0' && len(digits) > 1
}

func (s *Scanner) scanKeyword(first rune, want mem.RO, tok Token) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNameRune)
	if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return err
	}
	if !mem.B(s.buf.Bytes()).Equal(want) {
		return s.failf(CodeUnexpectedToken, "unknown constant %q", s.buf.String())
	}
	s.tok = tok
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// require reads a single rune matching f from the input, or reports an
// invalid-number error mentioning the desired label.
func (s *Scanner) require(f func(rune) bool, label string) (rune, error) {
	ch, err := s.rune()
	if err == io.EOF {
		return 0, s.failf(CodeInvalidNumber, "want %s, got end of input", label)
	} else if err != nil {
		return 0, s.ioError(err)
	} else if !f(ch) {
		s.unrune()
		return 0, s.failf(CodeInvalidNumber, "got %q, want %s", ch, label)
	}
	return ch, nil
}

// readWhile consumes runes matching f from the input until EOF or until a
// rune not matching f is found. The first non-matching rune (if any) is
// returned. It is the caller's responsibility to unread this rune, if
// desired. The int reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return nr, 0, err
		} else if err != nil {
			return nr, 0, s.ioError(err)
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

func (s *Scanner) ioError(err error) error {
	return &ScanError{Code: CodeIO, Pos: s.end, msg: "read error: " + err.Error(), err: err}
}

func (s *Scanner) failf(code Code, msg string, args ...any) error {
	return &ScanError{Code: code, Pos: s.end, msg: fmt.Sprintf(msg, args...)}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
