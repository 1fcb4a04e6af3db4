// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, token type, and contents of the anchor.
type Anchor interface {
	Token() Token       // Returns the token type of the anchor
	Text() []byte       // Returns a view of the raw (undecoded) text of the anchor
	Copy() []byte       // Returns a copy of the raw text of the anchor
	Location() Location // Returns the full location of the anchor
}

// A Handler handles events from parsing an input stream. If a method reports
// an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain information about the
// location after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Begin a new object member, whose key is at loc. The text of the key is
	// still quoted; the handler is responsible for unescaping key values if
	// the plain string is required (see [Unquote]).
	BeginMember(loc Anchor) error

	// End the current object member giving the location and type of the
	// token that terminated the member (either Comma or RBrace).
	EndMember(loc Anchor) error

	// Report a data value at the given location. The type of the value can
	// be recovered from the token. String tokens are quoted.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(loc Anchor)
}

// DefaultMaxDepth is the nesting bound applied by a Stream unless the caller
// overrides it with SetMaxDepth. The bound exists to turn adversarially deep
// inputs into an ordinary error instead of stack exhaustion.
const DefaultMaxDepth = 10000

// Stream is a stream parser that consumes a single JSON document and
// delivers events to a Handler corresponding with the structure of the
// input. Duplicate object keys are not diagnosed; each member is reported in
// input order and passes through unchanged.
type Stream struct {
	s        *Scanner
	maxDepth int
	depth    int
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream {
	return &Stream{s: NewScanner(r), maxDepth: DefaultMaxDepth}
}

// NewStreamWithScanner constructs a new Stream that consumes input from s.
func NewStreamWithScanner(s *Scanner) *Stream {
	return &Stream{s: s, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth changes the container nesting bound of s. Values less than 1
// restore DefaultMaxDepth.
func (s *Stream) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	s.maxDepth = n
}

// Parse parses one complete document from the input stream and delivers
// events to h. The document must comprise exactly one JSON value: an input
// containing only whitespace fails with CodeEmptyDocument, and any
// non-whitespace input after the root value fails with CodeTrailingContent.
// In case of a grammar error, the returned error has type [*SyntaxError];
// lexical errors are returned as [*ScanError].
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if !s.advanceToken() {
		s.syntaxError(CodeEmptyDocument, nil, "empty document")
	}
	s.parseElement(h)
	if s.advanceToken() {
		s.syntaxError(CodeTrailingContent, nil, "unexpected %v after document", s.s.Token())
	}
	h.EndOfInput(s.s)
	return nil
}

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case streamPanic:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (s *Stream) parseElement(h Handler) {
	switch tok := s.s.Token(); tok {
	case LBrace:
		s.push()
		s.checkError(h.BeginObject(s.s))
		s.parseMembers(h)
		s.checkError(h.EndObject(s.s))
		s.pop()
	case LSquare:
		s.push()
		s.checkError(h.BeginArray(s.s))
		s.parseElements(h)
		s.checkError(h.EndArray(s.s))
		s.pop()
	case Integer, Number, String, True, False, Null:
		s.checkError(h.Value(s.s))
	default:
		s.syntaxError(CodeUnexpectedToken, nil, "unexpected %v", tok)
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (s *Stream) parseMembers(h Handler) {
	tok := s.advance(CodeExpectedKey, RBrace, String)
	if tok == RBrace {
		return // end of object
	}
	for {
		// Parse a single member: "key": value
		s.checkError(h.BeginMember(s.s))
		s.advance(CodeExpectedColon, Colon)
		if !s.advanceToken() {
			s.syntaxError(CodeUnexpectedToken, nil, "expected value, got end of input")
		}
		s.parseElement(h)

		// Check whether we have more members (",") or are done ("}").
		tok := s.advance(CodeExpectedCommaOrEnd, RBrace, Comma)
		s.checkError(h.EndMember(s.s))
		if tok == RBrace {
			return // end of object
		}

		// A comma must introduce another key; a close brace here means the
		// comma was trailing, which the grammar does not allow.
		if next := s.advance(CodeExpectedKey, String, RBrace); next == RBrace {
			s.syntaxError(CodeTrailingComma, nil, "trailing comma before %v", RBrace)
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (s *Stream) parseElements(h Handler) {
	if !s.advanceToken() {
		s.syntaxError(CodeExpectedCommaOrEnd, nil, "expected value or %v, got end of input", RSquare)
	}
	if s.s.Token() == RSquare {
		return // end of array
	}
	s.parseElement(h)
	for {
		tok := s.advance(CodeExpectedCommaOrEnd, RSquare, Comma)
		if tok == RSquare {
			return // end of array
		}
		if !s.advanceToken() {
			s.syntaxError(CodeUnexpectedToken, nil, "expected value, got end of input")
		}
		if s.s.Token() == RSquare {
			s.syntaxError(CodeTrailingComma, nil, "trailing comma before %v", RSquare)
		}
		s.parseElement(h)
	}
}

func (s *Stream) push() {
	s.depth++
	if s.depth > s.maxDepth {
		s.syntaxError(CodeNestingTooDeep, nil, "nesting deeper than %d levels", s.maxDepth)
	}
}

func (s *Stream) pop() { s.depth-- }

// advanceToken moves the scanner to the next token, reporting false at a
// clean end of input. Lexical and read errors abort the parse.
func (s *Stream) advanceToken() bool {
	if s.s.Next() {
		return true
	}
	if err := s.s.Err(); err != nil {
		panic(streamPanic{err})
	}
	return false
}

// advance moves to the next token and requires it to be one of tokens,
// failing with the given code otherwise.
func (s *Stream) advance(code Code, tokens ...Token) Token {
	if !s.advanceToken() {
		s.syntaxError(code, nil, "%s, got end of input", tokLabel(tokens))
	}
	tok := s.s.Token()
	if !slices.Contains(tokens, tok) {
		s.syntaxError(code, nil, "%s, got %v", tokLabel(tokens), tok)
	}
	return tok
}

func (s *Stream) syntaxError(code Code, err error, msg string, args ...any) {
	panic(&SyntaxError{
		Code:     code,
		Location: s.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(streamPanic{err})
	}
}

type streamPanic struct{ error }

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token) string {
	if len(tokens) == 1 {
		return "expected " + tokens[0].String()
	}
	last := len(tokens) - 1
	ss := make([]string, last)
	for i, tok := range tokens[:last] {
		ss[i] = tok.String()
	}
	return "expected " + strings.Join(ss, ", ") + " or " + tokens[last].String()
}
