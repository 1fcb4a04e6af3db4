// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

import "strings"

// A Policy describes the whitespace layout of formatted output. The zero
// value is the compact layout: no line breaks and no spaces around ":" or
// ",". Policies are immutable once handed to Format.
type Policy struct {
	// Indent is written once per nesting level at the start of each
	// structural line. An empty Indent selects compact output; any other
	// value selects pretty output with one line break per structural
	// boundary and a single space after each ":".
	Indent string

	// Color optionally wraps object keys and scalar values in terminal
	// escape codes. It changes the output bytes, so it must be left unset
	// whenever the destination is a file or a round-trip comparison.
	Color *Colorizer
}

// Compact returns the policy producing fully compact output.
func Compact() Policy { return Policy{} }

// Tabs returns a policy indenting each nesting level with one tab.
func Tabs() Policy { return Policy{Indent: "\t"} }

// Spaces returns a policy indenting each nesting level with n spaces.
func Spaces(n int) Policy { return Policy{Indent: strings.Repeat(" ", n)} }

func (p Policy) pretty() bool { return p.Indent != "" }
