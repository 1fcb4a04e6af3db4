// Copyright (C) 2026 The jfmt Authors. All Rights Reserved.

// Package jfmt reformats JSON documents under a caller-chosen whitespace
// policy. The value of the document is never altered: string and number
// lexemes are copied to the output exactly as they appear in the input, so
// digit sequences and escape sequences survive formatting byte-for-byte.
//
// # Formatting
//
// Format is the top-level entry point. It reads one JSON document from a
// reader and writes it to a writer, compact or indented:
//
//	err := jfmt.Format(os.Stdout, input, jfmt.Spaces(4))
//
// A Policy selects the layout: Compact produces the canonical compact form
// with no whitespace at all, Tabs and Spaces produce pretty output with one
// structural element per line. Format streams: its memory use grows with
// nesting depth, not document size, so it is safe on very large inputs.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a
// scanner from an io.Reader and call its Next method to iterate over the
// stream. Next advances to the next input token and reports whether one is
// available:
//
//	s := jfmt.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// # Streaming
//
// The Stream type implements an event-driven parser for a single JSON
// document. The parser works by calling methods on a Handler value to
// report the structure of the input. In case of a grammar error, parsing is
// terminated and an error of concrete type *SyntaxError is returned;
// lexical errors have type *ScanError. Both carry a Code identifying the
// failure and the location at which it was detected.
//
//	s := jfmt.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The methods of a Handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor value that can be used to retrieve
// location and type information. The Anchor passed to a handler method is
// only valid for the duration of that method call; the handler must copy
// any data it needs to retain beyond the lifetime of the call.
//
// The parser ensures that corresponding Begin and End methods are correctly
// paired, or that an error is reported.
package jfmt
