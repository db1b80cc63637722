// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package session holds the state of one inspection session: the input text,
// the result of parsing it, and the settings of the views that display it.
//
// A Session is driven by discrete user actions (editing the input, switching
// views, copying, exporting) and runs each to completion on the caller's
// goroutine. It is not safe for concurrent use.
package session

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/ast/cursor"
	"github.com/creachadair/schemascope/flatten"
	"github.com/creachadair/schemascope/internal/logger"
	"github.com/creachadair/schemascope/kind"
	"github.com/creachadair/schemascope/tree"
	"github.com/tailscale/hujson"
)

// Sample is the sample document loaded by LoadSample.
//
//go:embed sample.json
var Sample string

// InvalidJSON is the message reported for input that does not parse.
const InvalidJSON = "Invalid JSON format"

// ExportName is the file name used by Export.
const ExportName = "schema.json"

// Indent is the indentation used for copied and exported documents.
const Indent = "  "

// ErrNoValue is reported by operations that need a parsed value when there is
// none.
var ErrNoValue = errors.New("no JSON value")

// A ParseError reports input text that is not valid JSON.
type ParseError struct {
	Err error // the underlying syntax error
}

func (p *ParseError) Error() string { return InvalidJSON + ": " + p.Err.Error() }

func (p *ParseError) Unwrap() error { return p.Err }

// View selects which rendering of the value is shown.
type View int

// The available views.
const (
	TreeView View = iota
	TableView
)

func (v View) String() string {
	switch v {
	case TreeView:
		return "tree"
	case TableView:
		return "table"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// ParseView returns the view named by s ("tree" or "table").
func ParseView(s string) (View, error) {
	switch strings.ToLower(s) {
	case "tree", "":
		return TreeView, nil
	case "table":
		return TableView, nil
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

// Clipboard accepts text copied by a session.
type Clipboard interface {
	WriteAll(text string) error
}

// Exporter accepts files saved by a session.
type Exporter interface {
	Export(name string, data []byte) error
}

// Theme receives changes to the display theme.
type Theme interface {
	SetDark(dark bool)
}

// Options configure a Session. A zero Options is ready for use.
type Options struct {
	// Relaxed, if true, accepts comments and trailing commas in the input.
	Relaxed bool

	// MaxDepth limits the nesting depth of parsed input. If zero, the parser
	// default is used.
	MaxDepth int

	// View is the initial view.
	View View

	// Dark is the initial theme setting.
	Dark bool

	// Theme, if non-nil, is notified when the theme changes.
	Theme Theme

	// Logger receives debug logs. If nil, logger.L is used.
	Logger *slog.Logger
}

// A Session is the state of one inspection session.
type Session struct {
	opts Options
	log  *slog.Logger

	input string
	value ast.Value  // nil if no value is parsed
	err   error      // *ParseError, or nil
	tree  *tree.Tree // non-nil iff value != nil
	rows  []flatten.Row
	flat  bool // rows is current

	view View
	dark bool
}

// New constructs an empty session with the given options.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.L
	}
	s := &Session{opts: opts, log: log, view: opts.View, dark: opts.Dark}
	if opts.Theme != nil {
		opts.Theme.SetDark(s.dark)
	}
	return s
}

// SetInput replaces the input text of s and parses it. Input that is empty
// or only whitespace clears the value without error. Otherwise the value is
// replaced by the parse result, and on failure SetInput returns a
// *ParseError that is also reported by Err.
//
// Each successful parse gets a new Tree, fully expanded.
func (s *Session) SetInput(text string) error {
	s.input = text
	s.value, s.err, s.tree = nil, nil, nil
	s.rows, s.flat = nil, false

	if strings.TrimSpace(text) == "" {
		s.log.Debug("input cleared")
		return nil
	}
	v, err := s.parse(text)
	if err != nil {
		s.err = &ParseError{Err: err}
		s.log.Debug("parse failed", "bytes", len(text), "err", err)
		return s.err
	}
	s.value = v
	s.tree = tree.New(v)
	s.log.Debug("parsed input", "bytes", len(text), "type", kind.Of(v).String())
	return nil
}

func (s *Session) parse(text string) (ast.Value, error) {
	data := []byte(text)
	if s.opts.Relaxed {
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		data = std
	}
	return ast.Options{MaxDepth: s.opts.MaxDepth}.ParseSingle(bytes.NewReader(data))
}

// Input returns the current input text.
func (s *Session) Input() string { return s.input }

// Value returns the parsed value, or nil if there is none.
func (s *Session) Value() ast.Value { return s.value }

// HasValue reports whether s has a parsed value.
func (s *Session) HasValue() bool { return s.value != nil }

// Err returns the error from parsing the current input, or nil.
func (s *Session) Err() error { return s.err }

// Message returns the user-facing error message for the current input, or ""
// if there is no error.
func (s *Session) Message() string {
	if s.err != nil {
		return InvalidJSON
	}
	return ""
}

// Rows returns the flattened rows of the current value, or nil if there is
// no value.
func (s *Session) Rows() []flatten.Row {
	if s.value == nil {
		return nil
	}
	if !s.flat {
		s.rows, s.flat = flatten.Rows(s.value, ""), true
	}
	return s.rows
}

// Tree returns the tree view state for the current value, or nil if there is
// no value.
func (s *Session) Tree() *tree.Tree { return s.tree }

// View returns the active view.
func (s *Session) View() View { return s.view }

// SetView sets the active view.
func (s *Session) SetView(v View) { s.view = v }

// ToggleView switches between the tree and table views, and returns the new
// view.
func (s *Session) ToggleView() View {
	if s.view == TreeView {
		s.view = TableView
	} else {
		s.view = TreeView
	}
	return s.view
}

// Dark reports whether the dark theme is selected.
func (s *Session) Dark() bool { return s.dark }

// ToggleTheme flips the theme setting, notifies the Theme, if any, and
// returns the new setting.
func (s *Session) ToggleTheme() bool {
	s.dark = !s.dark
	if s.opts.Theme != nil {
		s.opts.Theme.SetDark(s.dark)
	}
	return s.dark
}

// LoadSample replaces the input with the sample document.
func (s *Session) LoadSample() error { return s.SetInput(Sample) }

// Clear empties the input.
func (s *Session) Clear() { s.SetInput("") }

// Pretty returns the current value as indented JSON, or "" if there is no
// value.
func (s *Session) Pretty() string {
	if s.value == nil {
		return ""
	}
	return ast.Indent(s.value, Indent)
}

// Lookup returns the value at the given flattened path in the current value.
func (s *Session) Lookup(path string) (ast.Value, error) {
	if s.value == nil {
		return nil, ErrNoValue
	}
	return cursor.Find(s.value, path)
}

// CopyAll copies the whole document, indented, to cb.
func (s *Session) CopyAll(cb Clipboard) error {
	if s.value == nil {
		return ErrNoValue
	}
	return s.copy(cb, s.Pretty())
}

// CopyRow copies the value of the row at index i of Rows to cb.
func (s *Session) CopyRow(cb Clipboard, i int) error {
	rows := s.Rows()
	if rows == nil {
		return ErrNoValue
	} else if i < 0 || i >= len(rows) {
		return fmt.Errorf("row %d out of range (n=%d)", i, len(rows))
	}
	return s.copy(cb, rows[i].Value)
}

// CopyNode copies the value of the given tree node, indented, to cb.
func (s *Session) CopyNode(cb Clipboard, id tree.NodeID) error {
	if s.tree == nil {
		return ErrNoValue
	}
	n, ok := s.tree.Node(id)
	if !ok {
		return fmt.Errorf("node %d not found", id)
	}
	return s.copy(cb, ast.Indent(n.Value, Indent))
}

func (s *Session) copy(cb Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	s.log.Debug("copied", "bytes", len(text))
	return nil
}

// Export saves the indented document to ex as ExportName. If there is no
// value, Export does nothing and returns nil.
func (s *Session) Export(ex Exporter) error {
	if s.value == nil {
		return nil
	}
	if err := ex.Export(ExportName, []byte(s.Pretty())); err != nil {
		return fmt.Errorf("export %s: %w", ExportName, err)
	}
	s.log.Debug("exported", "name", ExportName)
	return nil
}
