// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value,
// either step by step or by resolving a flattened path string such as
// "metadata.tags[1]".
package cursor

import (
	"slices"

	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/flatten"
)

// A Step is one move from a container to one of its children.
type Step struct {
	Index int    // position of the child within its container
	Key   string // the member key, if the container is an object
	Array bool   // whether the container is an array
}

// A Cursor is a position within the structure of an ast.Value. It records
// the steps taken from its origin, so it can move back up and report the
// flattened path of the value under it.
type Cursor struct {
	org   ast.Value
	vals  []ast.Value // vals[i] is reached by steps[i]
	steps []Step
}

// New constructs a Cursor positioned at origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.steps) == 0 }

// Value returns the value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.vals[len(c.vals)-1]
}

// Steps returns a copy of the steps from the origin to the current position.
func (c *Cursor) Steps() []Step { return slices.Clone(c.steps) }

// Path returns the flattened path of the current position, as the flatten
// package would write it. At the origin the path is "".
func (c *Cursor) Path() string {
	var path string
	for _, s := range c.steps {
		if s.Array {
			path = flatten.Element(path, s.Index)
		} else {
			path = flatten.Member(path, s.Key)
		}
	}
	return path
}

// Down moves to the child at position i of the current array or object, and
// reports whether it did. Negative i counts back from the end. If the move
// is not possible, c is unchanged.
func (c *Cursor) Down(i int) bool {
	switch t := c.Value().(type) {
	case ast.Array:
		j, ok := fixBound(len(t), i)
		if !ok {
			return false
		}
		c.push(t[j], Step{Index: j, Array: true})
	case ast.Object:
		j, ok := fixBound(len(t), i)
		if !ok {
			return false
		}
		c.push(t[j].Value, Step{Index: j, Key: t[j].Key})
	default:
		return false
	}
	return true
}

// Key moves to the value of the first member named key of the current
// object, and reports whether it did. If there is no such member, c is
// unchanged.
func (c *Cursor) Key(key string) bool {
	obj, ok := c.Value().(ast.Object)
	if !ok {
		return false
	}
	i := slices.IndexFunc(obj, func(m *ast.Member) bool { return m.Key == key })
	return i >= 0 && c.Down(i)
}

// Up moves one step toward the origin, and reports false if c was already
// at its origin.
func (c *Cursor) Up() bool {
	n := len(c.steps)
	if n == 0 {
		return false
	}
	c.steps, c.vals = c.steps[:n-1], c.vals[:n-1]
	return true
}

// Reset moves c back to its origin.
func (c *Cursor) Reset() { c.steps, c.vals = c.steps[:0], c.vals[:0] }

func (c *Cursor) push(v ast.Value, s Step) {
	c.vals = append(c.vals, v)
	c.steps = append(c.steps, s)
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
