// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package flatten converts a JSON value into a sequence of rows, one for each
// leaf value, addressed by a path from the root.
//
// Paths use ".key" for object members and "[i]" for array elements. A path
// does not begin with "." or a separator, so the rows of
//
//	{"a": [1, {"b": 2}]}
//
// have paths "a[0]" and "a[1].b". A document that is itself a leaf produces a
// single row with the path "root". Object keys are written as-is, without
// escaping.
package flatten

import (
	"iter"
	"strconv"

	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/kind"
)

// RootPath is the path of a leaf document flattened with no parent path.
const RootPath = "root"

// A Row describes one leaf value of a document.
type Row struct {
	Path        string   // how to reach the value from the root
	Type        kind.Tag // never kind.Array or kind.Object
	Value       string   // compact JSON encoding of the value
	Description string   // as reported by kind.Describe
}

// Rows returns the rows for all the leaf values of v, in depth-first
// pre-order, with children visited in source order. If parent != "", paths
// are relative to it.
func Rows(v ast.Value, parent string) []Row {
	var rows []Row
	for row := range walk(v, parent) {
		rows = append(rows, row)
	}
	return rows
}

// All returns an iterator over the same rows as Rows(v, ""), computed as the
// iteration proceeds.
func All(v ast.Value) iter.Seq[Row] { return walk(v, "") }

func walk(v ast.Value, parent string) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if !kind.Of(v).Container() {
			path := parent
			if path == "" {
				path = RootPath
			}
			yield(leaf(v, path))
			return
		}
		visit(v, parent, yield)
	}
}

// visit emits the rows below the container v, and reports whether iteration
// should continue.
func visit(v ast.Value, parent string, yield func(Row) bool) bool {
	switch t := v.(type) {
	case ast.Array:
		for i, elt := range t {
			if !child(elt, Element(parent, i), yield) {
				return false
			}
		}
	case ast.Object:
		for _, m := range t {
			if !child(m.Value, Member(parent, m.Key), yield) {
				return false
			}
		}
	}
	return true
}

func child(v ast.Value, path string, yield func(Row) bool) bool {
	if kind.Of(v).Container() {
		return visit(v, path, yield)
	}
	return yield(leaf(v, path))
}

func leaf(v ast.Value, path string) Row {
	out := Row{Path: path, Type: kind.Of(v), Description: kind.Describe(v)}
	if v == nil {
		out.Value = "null"
	} else {
		out.Value = v.JSON()
	}
	return out
}

// Member returns the path of the member with the given key in the object at
// parent.
func Member(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// Element returns the path of element i of the array at parent.
func Element(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
