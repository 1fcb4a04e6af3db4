// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

import (
	"errors"
	"fmt"
)

// A Code identifies the kind of failure reported while scanning or parsing
// a document. Every error returned by the Scanner, the Stream, or Format
// carries a Code that can be recovered with [ErrorCode].
type Code byte

// Constants defining the valid Code values.
const (
	CodeUnknown Code = iota

	// Lexical errors, reported by the Scanner.
	CodeUnterminatedString  // input ended inside a string literal
	CodeInvalidNumber       // malformed numeric literal
	CodeUnexpectedCharacter // byte that cannot start any token

	// Syntactic errors, reported by the Stream.
	CodeExpectedKey        // object member must begin with a string key
	CodeExpectedColon      // missing ":" between key and value
	CodeExpectedCommaOrEnd // missing "," between members or elements
	CodeTrailingComma      // "," directly before "}" or "]"
	CodeTrailingContent    // extra input after the document root
	CodeEmptyDocument      // no value before end of input
	CodeNestingTooDeep     // nesting exceeds the configured bound
	CodeUnexpectedToken    // valid token in an invalid position

	// I/O errors from the underlying reader.
	CodeIO
)

var codeStr = [...]string{
	CodeUnknown:             "unknown error",
	CodeUnterminatedString:  "unterminated string",
	CodeInvalidNumber:       "invalid number",
	CodeUnexpectedCharacter: "unexpected character",
	CodeExpectedKey:         "expected object key",
	CodeExpectedColon:       "expected colon",
	CodeExpectedCommaOrEnd:  "expected comma or end",
	CodeTrailingComma:       "trailing comma",
	CodeTrailingContent:     "trailing content",
	CodeEmptyDocument:       "empty document",
	CodeNestingTooDeep:      "nesting too deep",
	CodeUnexpectedToken:     "unexpected token",
	CodeIO:                  "I/O error",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) {
		return codeStr[CodeUnknown]
	}
	return codeStr[c]
}

// A ScanError is a lexical or read error reported by the Scanner.
type ScanError struct {
	Code Code
	Pos  int // byte offset where the error was detected

	msg string
	err error
}

// Error satisfies the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.msg, e.Pos)
}

// Unwrap supports error wrapping.
func (e *ScanError) Unwrap() error { return e.err }

// A SyntaxError is a grammar error reported by the stream parser.
type SyntaxError struct {
	Code     Code
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// ErrorCode reports the Code carried by err, or CodeUnknown if err carries
// none. It unwraps err as needed.
func ErrorCode(err error) Code {
	var se *ScanError
	if errors.As(err, &se) {
		return se.Code
	}
	var ye *SyntaxError
	if errors.As(err, &ye) {
		return ye.Code
	}
	return CodeUnknown
}
