// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package tree maintains the state of an expandable tree view of a JSON
// value.
//
// A Tree is built for a single parsed value. Its nodes are identified by
// NodeIDs that are unique within that Tree, and every node starts out
// expanded. Parsing new input means constructing a new Tree, so no collapse
// state carries over from one document to the next.
//
// Children of a node are constructed the first time they are needed, so a
// collapsed subtree that has never been shown costs nothing.
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/ast/cursor"
	"github.com/creachadair/schemascope/flatten"
	"github.com/creachadair/schemascope/kind"
)

// A NodeID identifies a node within one Tree.
type NodeID int

// A Node is a single key or element of the document.
type Node struct {
	ID     NodeID
	Depth  int       // 0 for top-level nodes
	Label  string    // object key, or "[i]" for an array element
	Index  int       // position among its siblings
	Value  ast.Value // the value of the key or element
	Tag    kind.Tag  // kind.Of(Value)
	Parent *Node     // nil for top-level nodes

	path  string
	kids  []*Node
	built bool
}

// Path returns the flattened path of n from the root of the document.
func (n *Node) Path() string { return n.path }

// Container reports whether n holds an array or object.
func (n *Node) Container() bool { return n.Tag.Container() }

// Len reports the number of children of n.
func (n *Node) Len() int {
	switch t := n.Value.(type) {
	case ast.Array:
		return len(t)
	case ast.Object:
		return len(t)
	}
	return 0
}

// A Tree is the expandable view state for one JSON value.
// A Tree is not safe for concurrent use.
type Tree struct {
	root      ast.Value
	top       []*Node
	nodes     []*Node // indexed by NodeID
	collapsed mapset.Set[NodeID]
}

// New constructs a fully-expanded Tree for v.
//
// If v is an array or object its members are the top-level nodes; there is
// no node for v itself. Otherwise the tree has a single unlabelled node
// holding v.
func New(v ast.Value) *Tree {
	t := &Tree{root: v, collapsed: mapset.New[NodeID]()}
	if kind.Of(v).Container() {
		t.top = t.children(nil, v, "")
	} else {
		t.top = []*Node{t.newNode(nil, "", 0, v, flatten.RootPath)}
	}
	return t
}

// Root returns the value the tree was constructed from.
func (t *Tree) Root() ast.Value { return t.root }

// Leaf reports whether the root of t is not a container, in which case it is
// shown as a single value with no tree structure.
func (t *Tree) Leaf() bool { return !kind.Of(t.root).Container() }

// Top returns the top-level nodes of t.
func (t *Tree) Top() []*Node { return t.top }

// Children returns the children of n, constructing them if necessary.
func (t *Tree) Children(n *Node) []*Node {
	if !n.built {
		n.kids = t.children(n, n.Value, n.path)
		n.built = true
	}
	return n.kids
}

func (t *Tree) children(parent *Node, v ast.Value, path string) []*Node {
	switch c := v.(type) {
	case ast.Array:
		out := make([]*Node, len(c))
		for i, elt := range c {
			out[i] = t.newNode(parent, fmt.Sprintf("[%d]", i), i, elt, flatten.Element(path, i))
		}
		return out
	case ast.Object:
		out := make([]*Node, len(c))
		for i, m := range c {
			out[i] = t.newNode(parent, m.Key, i, m.Value, flatten.Member(path, m.Key))
		}
		return out
	}
	return nil
}

func (t *Tree) newNode(parent *Node, label string, index int, v ast.Value, path string) *Node {
	if v == nil {
		v = ast.Null
	}
	n := &Node{
		ID:     NodeID(len(t.nodes)),
		Label:  label,
		Index:  index,
		Value:  v,
		Tag:    kind.Of(v),
		Parent: parent,
		path:   path,
	}
	if parent != nil {
		n.Depth = parent.Depth + 1
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Node returns the node with the given ID, if it exists.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[id], true
}

// Find returns the node whose flattened path is path, if it exists. Paths
// are matched as by cursor.Locate, so an ambiguous path names the same value
// in both.
func (t *Tree) Find(path string) (*Node, bool) {
	c, err := cursor.Locate(t.root, path)
	if err != nil {
		return nil, false
	}
	steps := c.Steps()
	if len(steps) == 0 {
		// Only a leaf document has a node for its root.
		if t.Leaf() {
			return t.top[0], true
		}
		return nil, false
	}
	nodes := t.top
	for {
		n := nodes[steps[0].Index]
		if steps = steps[1:]; len(steps) == 0 {
			return n, true
		}
		nodes = t.Children(n)
	}
}

// IsCollapsed reports whether the node with the given ID is collapsed.
func (t *Tree) IsCollapsed(id NodeID) bool { return t.collapsed.Has(id) }

// SetCollapsed sets the collapse state of the node with the given ID.
// It reports false without effect if id does not name a container node.
func (t *Tree) SetCollapsed(id NodeID, collapsed bool) bool {
	n, ok := t.Node(id)
	if !ok || !n.Container() {
		return false
	}
	if collapsed {
		t.collapsed.Add(id)
	} else {
		t.collapsed.Remove(id)
	}
	return true
}

// Toggle flips the collapse state of the node with the given ID, and reports
// whether the node is now collapsed. The state of other nodes, including the
// descendants of id, is not changed.
func (t *Tree) Toggle(id NodeID) bool {
	now := !t.IsCollapsed(id)
	if !t.SetCollapsed(id, now) {
		return false
	}
	return now
}

// ExpandAll expands every node of t.
func (t *Tree) ExpandAll() { t.collapsed = mapset.New[NodeID]() }

// CollapseAll collapses every top-level container of t.
func (t *Tree) CollapseAll() {
	for _, n := range t.top {
		t.SetCollapsed(n.ID, true)
	}
}

// A Line is one visible line of a rendered tree.
type Line struct {
	ID    NodeID
	Depth int
	Label string
	Tag   kind.Tag

	// Root is true for the only line of a tree whose root is a leaf. It is
	// shown as a bare value.
	Root bool

	// Summary is "[n]" for an array and "{n}" for an object. It is empty for
	// leaf values.
	Summary string

	// Value is the compact JSON encoding of a leaf value. It is empty for
	// containers.
	Value string

	Expandable bool // the node is a container
	Collapsed  bool // the node is a collapsed container
}

// Lines returns the currently visible lines of t, in display order.
// Children of collapsed nodes are omitted.
func (t *Tree) Lines() []Line {
	var out []Line
	t.appendLines(&out, t.top)
	return out
}

func (t *Tree) appendLines(out *[]Line, nodes []*Node) {
	for _, n := range nodes {
		ln := Line{ID: n.ID, Depth: n.Depth, Label: n.Label, Tag: n.Tag, Root: t.Leaf()}
		switch n.Tag {
		case kind.Array:
			ln.Summary = fmt.Sprintf("[%d]", n.Len())
		case kind.Object:
			ln.Summary = fmt.Sprintf("{%d}", n.Len())
		default:
			ln.Value = n.Value.JSON()
		}
		if n.Container() {
			ln.Expandable = true
			ln.Collapsed = t.IsCollapsed(n.ID)
		}
		*out = append(*out, ln)
		if ln.Expandable && !ln.Collapsed {
			t.appendLines(out, t.Children(n))
		}
	}
}

// NodeAt returns the node shown at the given index of Lines.
func (t *Tree) NodeAt(line int) (*Node, bool) {
	lines := t.Lines()
	if line < 0 || line >= len(lines) {
		return nil, false
	}
	return t.Node(lines[line].ID)
}

// Render writes the visible lines of t to w as indented text. Containers are
// marked "▾" when expanded and "▸" when collapsed.
func (t *Tree) Render(w io.Writer) error {
	var sb strings.Builder
	for _, ln := range t.Lines() {
		sb.WriteString(ln.Text())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Text returns ln as a single line of indented text, without a newline.
func (ln Line) Text() string {
	if ln.Root {
		return ln.Value
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", ln.Depth))
	switch {
	case ln.Collapsed:
		sb.WriteString("▸ ")
	case ln.Expandable:
		sb.WriteString("▾ ")
	default:
		sb.WriteString("  ")
	}
	sb.WriteString(ln.Label)
	sb.WriteString(": ")
	if ln.Expandable {
		sb.WriteString(ln.Tag.String())
		sb.WriteByte(' ')
		sb.WriteString(ln.Summary)
	} else {
		sb.WriteString(ln.Value)
	}
	return sb.String()
}
