// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/halfmoss/jfmt"
)

// Parse parses a single JSON document from r and returns its syntax tree.
// The input must contain exactly one value; errors are reported with the
// same types and codes as jfmt.Stream.
func Parse(r io.Reader) (Value, error) {
	h := new(parseHandler)
	if err := jfmt.NewStream(r).Parse(h); err != nil {
		return nil, err
	}
	return h.root, nil
}

// A parseHandler implements the jfmt.Handler interface to construct
// abstract syntax trees for JSON documents.
type parseHandler struct {
	root Value
	stk  []Value
	tbuf [][]byte
}

// intern interns a copy of text and returns a slice of the copy.
// Allocations are batched to reduce allocation overhead.
func (h *parseHandler) intern(text []byte) []byte {
	const bufBlockBytes = 8192

	if len(text) >= bufBlockBytes {
		return append([]byte(nil), text...)
	}

	i := 0
	for i < len(h.tbuf) {
		if len(h.tbuf[i])+len(text) < cap(h.tbuf[i]) {
			break
		}
		i++
	}
	if i == len(h.tbuf) {
		h.tbuf = append(h.tbuf, make([]byte, 0, bufBlockBytes))
	}
	s := len(h.tbuf[i])
	h.tbuf[i] = append(h.tbuf[i], text...)
	return h.tbuf[i][s : s+len(text)]
}

// reduceValue attaches a completed value to its parent, or records it as
// the document root when the stack is empty.
func (h *parseHandler) reduceValue(v Value) {
	if len(h.stk) == 0 {
		h.root = v
		return
	}
	switch prev := h.stk[len(h.stk)-1].(type) {
	case *Member:
		prev.Value = v
	case *Object:
		// Members are attached to their object eagerly in BeginMember, so
		// there is nothing further to do when one completes.
	case *Array:
		prev.Values = append(prev.Values, v)
	}
}

func (h *parseHandler) top() Value { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v Value) { h.stk = append(h.stk, v) }

func (h *parseHandler) BeginObject(loc jfmt.Anchor) error {
	h.push(&Object{pos: loc.Location().Pos})
	return nil
}

func (h *parseHandler) EndObject(loc jfmt.Anchor) error {
	obj := h.pop().(*Object)
	obj.end = loc.Location().End
	h.reduceValue(obj)
	return nil
}

func (h *parseHandler) BeginArray(loc jfmt.Anchor) error {
	h.push(&Array{pos: loc.Location().Pos})
	return nil
}

func (h *parseHandler) EndArray(loc jfmt.Anchor) error {
	arr := h.pop().(*Array)
	arr.end = loc.Location().End
	h.reduceValue(arr)
	return nil
}

func (h *parseHandler) BeginMember(loc jfmt.Anchor) error {
	// The object this member belongs to is atop the stack. Add the new
	// member to its collection eagerly, so that reducing after the value is
	// known does not have to reduce twice.
	span := loc.Location().Span
	mem := &Member{
		pos: span.Pos,
		Key: &String{datum{pos: span.Pos, end: span.End, text: h.intern(loc.Text())}},
	}
	obj := h.top().(*Object)
	obj.Members = append(obj.Members, mem)
	h.push(mem)
	return nil
}

func (h *parseHandler) EndMember(loc jfmt.Anchor) error {
	mem := h.pop().(*Member)
	mem.end = loc.Location().Pos // the terminator is not part of the member
	h.reduceValue(mem)
	return nil
}

func (h *parseHandler) Value(loc jfmt.Anchor) error {
	span := loc.Location().Span
	d := datum{pos: span.Pos, end: span.End, text: h.intern(loc.Text())}
	switch loc.Token() {
	case jfmt.String:
		h.reduceValue(&String{datum: d})
	case jfmt.Integer, jfmt.Number:
		h.reduceValue(&Number{datum: d})
	case jfmt.True, jfmt.False:
		h.reduceValue(&Bool{datum: d, value: loc.Token() == jfmt.True})
	case jfmt.Null:
		h.reduceValue(&Null{datum: d})
	default:
		return fmt.Errorf("unknown value %v", loc.Token())
	}
	return nil
}

func (h *parseHandler) EndOfInput(loc jfmt.Anchor) {}
