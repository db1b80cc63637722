// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package cursor

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/flatten"
)

// ErrNotFound is reported by Find when a path does not address a value.
var ErrNotFound = errors.New("path not found")

// Find resolves a flattened path, as produced by the flatten package, to the
// value it addresses within v. See Locate for how paths are matched.
func Find(v ast.Value, path string) (ast.Value, error) {
	c, err := Locate(v, path)
	if err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// Locate returns a Cursor positioned at the value addressed by path within
// v. The empty path and flatten.RootPath both denote v itself, unless v is
// an object with a member named "root".
//
// Object keys are not escaped in flattened paths, so a key may itself contain
// "." or "[". Locate resolves such keys by matching the keys actually
// present, preferring longer keys and backtracking when a choice fails.
//
// If the path does not resolve, the error wraps ErrNotFound.
func Locate(v ast.Value, path string) (*Cursor, error) {
	c := New(v)
	if path == "" || resolve(c, path, true) {
		return c, nil
	}
	if path == flatten.RootPath {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
}

// resolve consumes rest by moving c downward. At the top of the path a key
// has no leading ".". If resolve fails, c is left where it started.
func resolve(c *Cursor, rest string, top bool) bool {
	if rest == "" {
		return true
	}
	if rest[0] == '[' {
		if _, ok := c.Value().(ast.Array); !ok {
			return false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return false
		}
		i, err := strconv.Atoi(rest[1:end])
		if err != nil || i < 0 || rest[1] == '+' || !c.Down(i) {
			return false
		}
		if resolve(c, rest[end+1:], false) {
			return true
		}
		c.Up()
		return false
	}

	if !top {
		if rest[0] != '.' {
			return false
		}
		rest = rest[1:]
	}
	obj, ok := c.Value().(ast.Object)
	if !ok {
		return false
	}

	// Candidate members are those whose key is a prefix of rest ending at a
	// path boundary. Try longer keys first.
	var cands []int
	for i, m := range obj {
		if tail, ok := strings.CutPrefix(rest, m.Key); ok && atBoundary(tail) {
			cands = append(cands, i)
		}
	}
	slices.SortStableFunc(cands, func(a, b int) int {
		return cmp.Compare(len(obj[b].Key), len(obj[a].Key))
	})
	for _, i := range cands {
		c.Down(i)
		if resolve(c, rest[len(obj[i].Key):], false) {
			return true
		}
		c.Up()
	}
	return false
}

func atBoundary(s string) bool { return s == "" || s[0] == '.' || s[0] == '[' }
