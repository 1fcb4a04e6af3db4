// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

// A Colorizer supplies the terminal escape codes written around object keys
// and scalar values when a Policy enables color. A nil *Colorizer is valid
// and produces no codes.
type Colorizer struct {
	Key     []byte // object keys
	String  []byte // string values
	Number  []byte // integer and floating-point values
	Literal []byte // true, false, null
	Reset   []byte // written after every colored lexeme
}

// DefaultColors is a conservative ANSI palette suitable for most terminals.
var DefaultColors = &Colorizer{
	Key:     []byte("\x1b[34;1m"),
	String:  []byte("\x1b[32m"),
	Number:  []byte("\x1b[36m"),
	Literal: []byte("\x1b[35m"),
	Reset:   []byte("\x1b[0m"),
}

// KeyCode returns the escape code for object keys, or nil.
func (c *Colorizer) KeyCode() []byte {
	if c == nil {
		return nil
	}
	return c.Key
}

// ScalarCode returns the escape code for a scalar of the given token type,
// or nil.
func (c *Colorizer) ScalarCode(t Token) []byte {
	if c == nil {
		return nil
	}
	switch t {
	case String:
		return c.String
	case Integer, Number:
		return c.Number
	case True, False, Null:
		return c.Literal
	}
	return nil
}

// ResetCode returns the reset code, or nil.
func (c *Colorizer) ResetCode() []byte {
	if c == nil {
		return nil
	}
	return c.Reset
}
