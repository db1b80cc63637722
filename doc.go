// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package schemascope implements the JSON scanner and stream parser that
// underlie the SchemaScope inspection tool.
//
// The packages of this module are layered:
//
//	schemascope   lexical scanner and event-driven stream parser
//	ast           JSON values as a closed set of Go types, and a parser
//	kind          type tags and one-line descriptions of values
//	flatten       path/value rows for every leaf of a value
//	tree          expandable tree view state over a value
//	session       input text, parse result and view state for one user
//
// The command in cmd/schemascope drives these packages from the command line
// or through an interactive terminal interface (internal/tui).
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := schemascope.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input.
//
// # Streaming
//
// The Stream type implements an event-driven stream parser for JSON. The
// parser works by calling methods on a Handler value to report the structure
// of the input. In case of error, parsing is terminated and an error of
// concrete type *schemascope.SyntaxError is returned.
//
//	s := schemascope.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available.
//
// A Stream rejects input whose objects and arrays nest more deeply than its
// limit (see SetMaxDepth), so that consumers may traverse parsed values
// recursively.
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | "key": value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// The Anchor passed to a handler method is only valid for the duration of
// that method call; the handler must copy any data it needs to retain.
package schemascope
