// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON documents, a parser
// that constructs syntax trees from JSON source, and a formatter that
// renders a tree back to text.
//
// The tree retains the raw lexemes of strings and numbers, so a formatted
// tree reproduces the input's digits and escape sequences exactly. Building
// a tree costs memory proportional to the document size; callers that only
// need reformatting should prefer the streaming jfmt.Format, which this
// package's Format matches byte-for-byte.
package ast

import (
	"strconv"

	"github.com/halfmoss/jfmt"
)

// A Value is an arbitrary JSON value.
type Value interface{ Span() jfmt.Span }

// A Datum is a Value with a source text representation.
type Datum interface {
	Value
	Text() string
}

func newSpan(pos, end int) jfmt.Span { return jfmt.Span{Pos: pos, End: end} }

// An Object is a collection of key-value members. Duplicate keys are
// preserved in input order; the tree imposes no uniqueness policy.
type Object struct {
	pos, end int

	Members []*Member
}

// Span satisfies the Value interface.
func (o *Object) Span() jfmt.Span { return newSpan(o.pos, o.end) }

// Find returns the first member of o whose decoded key equals key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if dec, err := jfmt.Unquote(m.Key.text); err == nil && string(dec) == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	pos, end int

	Key   *String
	Value Value
}

// Span satisfies the Value interface.
func (m *Member) Span() jfmt.Span { return newSpan(m.pos, m.end) }

// An Array is a sequence of values.
type Array struct {
	pos, end int

	Values []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() jfmt.Span { return newSpan(a.pos, a.end) }

type datum struct {
	pos, end int
	text     []byte
}

// Span satisfies the Value interface.
func (d datum) Span() jfmt.Span { return newSpan(d.pos, d.end) }

// Text satisfies the Datum interface.
func (d datum) Text() string { return string(d.text) }

// A String is a string value. Its text is the quoted source lexeme.
type String struct{ datum }

// Unescape returns the decoded content of s without quotation marks.
// It panics if the lexeme contains an incomplete escape sequence.
func (s *String) Unescape() string {
	dec, err := jfmt.Unquote(s.text)
	if err != nil {
		panic(err)
	}
	return string(dec)
}

// A Number is a numeric value. Its text is the source lexeme, preserved
// unmodified regardless of magnitude or precision.
type Number struct{ datum }

// Float64 returns the value of n as a float64. It panics if the lexeme
// does not parse, which cannot happen for trees built by Parse.
func (n *Number) Float64() float64 {
	v, err := strconv.ParseFloat(string(n.text), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// IsInt reports whether the lexeme of n has no fraction or exponent part.
func (n *Number) IsInt() bool {
	for _, b := range n.text {
		if b == '.' || b == 'e' || b == 'E' {
			return false
		}
	}
	return true
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	datum
	value bool
}

// Value reports the truth value of b.
func (b *Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{ datum }
