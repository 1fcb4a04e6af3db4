// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package ast_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/halfmoss/jfmt"
	"github.com/halfmoss/jfmt/ast"
)

// Rendering a parsed tree must produce exactly the bytes the streaming
// formatter produces from the same input under the same policy.
func TestFormatParity(t *testing.T) {
	inputs := []string{
		`{"1":2,"true":false,"null":{"a":[1.0,2e3,-0.5],"b":[]}}`,
		`[[1,2],[],[3]]`,
		`{"empty":{},"also":[]}`,
		`{ "spaced" : [ true , null ] }`,
		`"café"`,
		`2.00`,
		`[{"k":"v"},{"k":"w"}]`,
	}
	policies := map[string]jfmt.Policy{
		"Compact": jfmt.Compact(),
		"Spaces":  jfmt.Spaces(4),
		"Two":     jfmt.Spaces(2),
		"Tabs":    jfmt.Tabs(),
	}

	for name, p := range policies {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				var want bytes.Buffer
				if err := jfmt.Format(&want, strings.NewReader(input), p); err != nil {
					t.Fatalf("Format %#q failed: %v", input, err)
				}

				v := mustParse(t, input)
				var got bytes.Buffer
				if err := ast.Format(&got, v, p); err != nil {
					t.Fatalf("Format tree of %#q failed: %v", input, err)
				}

				if diff := cmp.Diff(want.String(), got.String()); diff != "" {
					t.Errorf("Input: %#q\nOutput: (-stream, +tree)\n%s", input, diff)
				}
			}
		})
	}
}

func TestFormatToString(t *testing.T) {
	v := mustParse(t, `{"b": 2, "a": [null]}`)

	const want = `{"b":2,"a":[null]}`
	if got := ast.FormatToString(v, jfmt.Compact()); got != want {
		t.Errorf("FormatToString: got %#q, want %#q", got, want)
	}

	const wantTab = "{\n\t\"b\": 2,\n\t\"a\": [\n\t\tnull\n\t]\n}"
	if got := ast.FormatToString(v, jfmt.Tabs()); got != wantTab {
		t.Errorf("FormatToString: got %#q, want %#q", got, wantTab)
	}
}

func TestFormatColorParity(t *testing.T) {
	p := jfmt.Spaces(2)
	p.Color = jfmt.DefaultColors

	const input = `{"a":["b",1,true,null],"n":-2.5}`
	var want bytes.Buffer
	if err := jfmt.Format(&want, strings.NewReader(input), p); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	got := ast.FormatToString(mustParse(t, input), p)
	if diff := cmp.Diff(want.String(), got); diff != "" {
		t.Errorf("Output: (-stream, +tree)\n%s", diff)
	}
}
