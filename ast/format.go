// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/halfmoss/jfmt"
)

// Format renders v to w under policy p. For any document, the output is
// byte-identical to what jfmt.Format produces from the document's source
// text with the same policy.
func Format(w io.Writer, v Value, p jfmt.Policy) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	f := &formatter{w: bw, policy: p}
	f.writeValue(v, 0)
	if f.err != nil {
		return f.err
	}
	return bw.Flush()
}

// FormatToString renders v to a string under policy p. In case of error in
// formatting, it returns an empty string.
func FormatToString(v Value, p jfmt.Policy) string {
	var buf bytes.Buffer
	if Format(&buf, v, p) != nil {
		return ""
	}
	return buf.String()
}

type formatter struct {
	w      *bufio.Writer
	policy jfmt.Policy
	err    error
}

func (f *formatter) writeValue(v Value, depth int) {
	switch t := v.(type) {
	case *Object:
		f.writeObject(t, depth)
	case *Array:
		f.writeArray(t, depth)
	case *String:
		f.scalar(jfmt.String, t.text)
	case *Number:
		f.scalar(jfmt.Number, t.text)
	case *Bool:
		if t.value {
			f.scalar(jfmt.True, t.text)
		} else {
			f.scalar(jfmt.False, t.text)
		}
	case *Null:
		f.scalar(jfmt.Null, t.text)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f *formatter) writeObject(o *Object, depth int) {
	f.writeByte('{')
	for i, m := range o.Members {
		if i > 0 {
			f.writeByte(',')
		}
		f.breakLine(depth + 1)
		f.colored(f.policy.Color.KeyCode(), m.Key.text)
		f.writeByte(':')
		if f.policy.Indent != "" {
			f.writeByte(' ')
		}
		f.writeValue(m.Value, depth+1)
	}
	if len(o.Members) > 0 {
		f.breakLine(depth)
	}
	f.writeByte('}')
}

func (f *formatter) writeArray(a *Array, depth int) {
	f.writeByte('[')
	for i, v := range a.Values {
		if i > 0 {
			f.writeByte(',')
		}
		f.breakLine(depth + 1)
		f.writeValue(v, depth+1)
	}
	if len(a.Values) > 0 {
		f.breakLine(depth)
	}
	f.writeByte(']')
}

func (f *formatter) scalar(tok jfmt.Token, text []byte) {
	f.colored(f.policy.Color.ScalarCode(tok), text)
}

func (f *formatter) breakLine(depth int) {
	if f.policy.Indent == "" {
		return
	}
	f.writeByte('\n')
	for i := 0; i < depth; i++ {
		f.writeString(f.policy.Indent)
	}
}

func (f *formatter) colored(code, text []byte) {
	if code == nil {
		f.write(text)
		return
	}
	f.write(code)
	f.write(text)
	f.write(f.policy.Color.ResetCode())
}

func (f *formatter) write(b []byte) {
	if f.err == nil && len(b) > 0 {
		_, f.err = f.w.Write(b)
	}
}

func (f *formatter) writeByte(b byte) {
	if f.err == nil {
		f.err = f.w.WriteByte(b)
	}
}

func (f *formatter) writeString(s string) {
	if f.err == nil {
		_, f.err = f.w.WriteString(s)
	}
}
