// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

package jfmt_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/halfmoss/jfmt"
)

// benchInput builds a synthetic document with a mix of nesting, strings,
// and numbers, large enough to dominate fixed per-call overhead.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"record-%04d","score":%d.%02d,"tags":["a","b\nc","é"],"ok":%v,"extra":null}`,
			i, i, i%90, i%100, i%2 == 0)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkFormat(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Compact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := jfmt.Format(io.Discard, bytes.NewReader(input), jfmt.Compact()); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Pretty", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := jfmt.Format(io.Discard, bytes.NewReader(input), jfmt.Spaces(4)); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	// The standard library equivalents, for comparison. Note that these
	// re-render lexemes rather than preserving them.
	b.Run("JSONCompact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var buf bytes.Buffer
			if err := json.Compact(&buf, input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("JSONIndent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var buf bytes.Buffer
			if err := json.Indent(&buf, input, "", "    "); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := jfmt.NewScanner(bytes.NewReader(input))
		for s.Next() {
		}
		if s.Err() != nil {
			b.Fatalf("Unexpected error: %v", s.Err())
		}
	}
}
