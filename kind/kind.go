// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package kind classifies JSON values into a fixed set of type tags, and
// describes them in a single line of text.
//
// Every other package that needs the type of a value calls Of, so that the
// tree, the table, and the command line always agree.
package kind

import (
	"fmt"
	"unicode/utf8"

	"github.com/creachadair/schemascope/ast"
)

// A Tag is the type classification of a JSON value.
type Tag byte

// Constants defining the valid Tag values.
const (
	Null Tag = iota
	Array
	Object
	String
	Number
	Boolean
)

var tagName = [...]string{
	Null:    "null",
	Array:   "array",
	Object:  "object",
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
}

// String returns the lower-case name of t.
func (t Tag) String() string {
	if int(t) >= len(tagName) {
		return fmt.Sprintf("Tag(%d)", t)
	}
	return tagName[t]
}

// Container reports whether t is Array or Object.
func (t Tag) Container() bool { return t == Array || t == Object }

// Parse returns the tag whose name is name, and reports whether it exists.
func Parse(name string) (Tag, bool) {
	for i, s := range tagName {
		if s == name {
			return Tag(i), true
		}
	}
	return Null, false
}

// Of returns the tag of v. A nil Value is classified as Null.
func Of(v ast.Value) Tag {
	switch v.(type) {
	case nil, ast.NullValue:
		return Null
	case ast.Array:
		return Array
	case ast.Object:
		return Object
	case ast.String:
		return String
	case ast.Number:
		return Number
	case ast.Bool:
		return Boolean
	default:
		panic(fmt.Sprintf("kind: unexpected value type %T", v))
	}
}

// Describe returns a one-line description of v, for example
// "Array with 3 items" or "String (5 characters)". String lengths count
// Unicode code points.
func Describe(v ast.Value) string {
	switch Of(v) {
	case Array:
		return fmt.Sprintf("Array with %d items", len(v.(ast.Array)))
	case Object:
		return fmt.Sprintf("Object with %d properties", len(v.(ast.Object)))
	case String:
		return fmt.Sprintf("String (%d characters)", utf8.RuneCountInString(string(v.(ast.String))))
	case Number:
		if v.(ast.Number).IsInt() {
			return "Integer"
		}
		return "Float"
	case Boolean:
		return "Boolean"
	default:
		return "Null value"
	}
}
