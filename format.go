// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt

import (
	"bufio"
	"io"
)

// Format reads a single JSON document from r and writes a semantically
// identical document to w laid out according to p. String and number
// lexemes are copied to the output byte-for-byte from the input; only
// whitespace differs between the input and the output. No trailing newline
// is written.
//
// Formatting is a single forward pass whose memory use is proportional to
// the maximum nesting depth of the document, not its total size. The first
// lexical, syntactic, or I/O error aborts the pass and is returned; output
// already written to w before the error is unspecified, so callers
// formatting into a file should use a transactional sink such as
// fsutil.WriteFile.
func Format(w io.Writer, r io.Reader, p Policy) error {
	e := newEmitter(w, p)
	if err := NewStream(r).Parse(e); err != nil {
		return err
	}
	return e.flush()
}

// A frame records the formatting state of one open container: whether it is
// an object, and how many children have been written so far.
type frame struct {
	object bool
	n      int
}

// An emitter is a Handler that transcodes parse events directly into
// formatted output without materializing a value tree.
type emitter struct {
	w      *bufio.Writer
	policy Policy
	stack  []frame
	member bool // a member key was just written; the next value completes it
	err    error
}

func newEmitter(w io.Writer, p Policy) *emitter {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &emitter{w: bw, policy: p}
}

func (e *emitter) flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

func (e *emitter) write(b []byte) {
	if e.err == nil && len(b) > 0 {
		_, e.err = e.w.Write(b)
	}
}

func (e *emitter) writeByte(b byte) {
	if e.err == nil {
		e.err = e.w.WriteByte(b)
	}
}

func (e *emitter) writeString(s string) {
	if e.err == nil {
		_, e.err = e.w.WriteString(s)
	}
}

// breakLine starts a new structural line indented to the current depth.
// In compact mode it writes nothing.
func (e *emitter) breakLine() {
	if !e.policy.pretty() {
		return
	}
	e.writeByte('\n')
	for range e.stack {
		e.writeString(e.policy.Indent)
	}
}

// beforeValue positions the output for a value that is a member value, an
// array element, or the document root.
func (e *emitter) beforeValue() {
	if e.member {
		e.member = false
		return
	}
	if len(e.stack) == 0 {
		return // document root
	}
	top := &e.stack[len(e.stack)-1]
	if top.n > 0 {
		e.writeByte(',')
	}
	top.n++
	e.breakLine()
}

func (e *emitter) colored(code, text []byte) {
	if code == nil {
		e.write(text)
		return
	}
	e.write(code)
	e.write(text)
	e.write(e.policy.Color.ResetCode())
}

func (e *emitter) BeginObject(loc Anchor) error {
	e.beforeValue()
	e.writeByte('{')
	e.stack = append(e.stack, frame{object: true})
	return e.err
}

func (e *emitter) EndObject(loc Anchor) error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if top.n > 0 {
		e.breakLine()
	}
	e.writeByte('}')
	return e.err
}

func (e *emitter) BeginArray(loc Anchor) error {
	e.beforeValue()
	e.writeByte('[')
	e.stack = append(e.stack, frame{})
	return e.err
}

func (e *emitter) EndArray(loc Anchor) error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if top.n > 0 {
		e.breakLine()
	}
	e.writeByte(']')
	return e.err
}

func (e *emitter) BeginMember(loc Anchor) error {
	top := &e.stack[len(e.stack)-1]
	if top.n > 0 {
		e.writeByte(',')
	}
	top.n++
	e.breakLine()
	e.colored(e.policy.Color.KeyCode(), loc.Text())
	e.writeByte(':')
	if e.policy.pretty() {
		e.writeByte(' ')
	}
	e.member = true
	return e.err
}

func (e *emitter) EndMember(loc Anchor) error { return e.err }

func (e *emitter) Value(loc Anchor) error {
	e.beforeValue()
	e.colored(e.policy.Color.ScalarCode(loc.Token()), loc.Text())
	return e.err
}

func (e *emitter) EndOfInput(loc Anchor) {}
