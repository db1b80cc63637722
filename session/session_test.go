// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package session_test

import (
	"errors"
	"testing"

	"github.com/creachadair/schemascope"
	"github.com/creachadair/schemascope/flatten"
	"github.com/creachadair/schemascope/kind"
	"github.com/creachadair/schemascope/session"
	"github.com/google/go-cmp/cmp"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeExporter map[string]string

func (e fakeExporter) Export(name string, data []byte) error {
	e[name] = string(data)
	return nil
}

type fakeTheme struct{ calls []bool }

func (t *fakeTheme) SetDark(dark bool) { t.calls = append(t.calls, dark) }

func TestEndToEnd(t *testing.T) {
	s := session.New(session.Options{})
	if err := s.SetInput(`{"x": true, "y": [1,2,3]}`); err != nil {
		t.Fatalf("SetInput: unexpected error: %v", err)
	}
	want := []flatten.Row{
		{Path: "x", Type: kind.Boolean, Value: "true", Description: "Boolean"},
		{Path: "y[0]", Type: kind.Number, Value: "1", Description: "Integer"},
		{Path: "y[1]", Type: kind.Number, Value: "2", Description: "Integer"},
		{Path: "y[2]", Type: kind.Number, Value: "3", Description: "Integer"},
	}
	if diff := cmp.Diff(s.Rows(), want); diff != "" {
		t.Errorf("Rows (-got, +want):\n%s", diff)
	}
	if s.Message() != "" || s.Err() != nil {
		t.Errorf("Error state: got (%q, %v), want none", s.Message(), s.Err())
	}
	if got := len(s.Tree().Lines()); got != 5 {
		t.Errorf("Tree lines: got %d, want 5", got)
	}
}

func TestInvalid(t *testing.T) {
	s := session.New(session.Options{})
	if err := s.SetInput(`[1]`); err != nil {
		t.Fatalf("SetInput: unexpected error: %v", err)
	}

	err := s.SetInput("not json")
	var perr *session.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("SetInput: got %v, want *ParseError", err)
	}
	var serr *schemascope.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("SetInput: error %v does not wrap a SyntaxError", err)
	} else {
		t.Logf("Syntax error: %v", serr)
	}
	if got := s.Message(); got != "Invalid JSON format" {
		t.Errorf("Message: got %q, want Invalid JSON format", got)
	}
	if s.HasValue() || s.Value() != nil {
		t.Errorf("Value: got %v, want none", s.Value())
	}
	if s.Rows() != nil || s.Tree() != nil {
		t.Error("Views should be empty after a failed parse")
	}
	if s.Input() != "not json" {
		t.Errorf("Input: got %q", s.Input())
	}
}

func TestEmpty(t *testing.T) {
	s := session.New(session.Options{})
	s.SetInput("{")
	if s.Err() == nil {
		t.Fatal("SetInput: want error for incomplete input")
	}
	for _, in := range []string{"", "  \n\t "} {
		if err := s.SetInput(in); err != nil {
			t.Errorf("SetInput(%q): unexpected error: %v", in, err)
		}
		if s.Message() != "" || s.Err() != nil || s.HasValue() {
			t.Errorf("SetInput(%q): got (%q, %v, %v), want empty state", in, s.Message(), s.Err(), s.Value())
		}
	}
}

func TestFalsyValues(t *testing.T) {
	s := session.New(session.Options{})
	for _, in := range []string{`null`, `0`, `false`, `""`} {
		if err := s.SetInput(in); err != nil {
			t.Errorf("SetInput(%s): unexpected error: %v", in, err)
		}
		if !s.HasValue() {
			t.Errorf("SetInput(%s): no value", in)
		}
		if rows := s.Rows(); len(rows) != 1 || rows[0].Path != "root" {
			t.Errorf("SetInput(%s): rows %+v, want one root row", in, rows)
		}
	}
}

func TestFreshTree(t *testing.T) {
	s := session.New(session.Options{})
	s.SetInput(`{"a": {"b": 1}}`)
	top := s.Tree().Top()[0]
	s.Tree().Toggle(top.ID)

	// Reparsing the same shape does not carry the collapse state over.
	s.SetInput(`{"a": {"c": 2}}`)
	for _, ln := range s.Tree().Lines() {
		if ln.Collapsed {
			t.Errorf("Line %q is collapsed after a new parse", ln.Label)
		}
	}
}

func TestRelaxed(t *testing.T) {
	const input = `{
  // comment
  "a": [1, 2,], /* another */
}`
	strict := session.New(session.Options{})
	if err := strict.SetInput(input); err == nil {
		t.Error("Strict: got nil error, want error")
	}

	relaxed := session.New(session.Options{Relaxed: true})
	if err := relaxed.SetInput(input); err != nil {
		t.Fatalf("Relaxed: unexpected error: %v", err)
	}
	if got := relaxed.Value().JSON(); got != `{"a":[1,2]}` {
		t.Errorf("Relaxed: got %s", got)
	}
	if err := relaxed.SetInput(`{"a" 1}`); err == nil {
		t.Error("Relaxed: got nil error for bad input")
	}
}

func TestMaxDepth(t *testing.T) {
	s := session.New(session.Options{MaxDepth: 2})
	if err := s.SetInput(`[[1]]`); err != nil {
		t.Errorf("Depth 2: unexpected error: %v", err)
	}
	if err := s.SetInput(`[[[1]]]`); err == nil {
		t.Error("Depth 3: got nil error, want error")
	}
}

func TestCopy(t *testing.T) {
	s := session.New(session.Options{})
	var cb fakeClipboard

	if err := s.CopyAll(&cb); !errors.Is(err, session.ErrNoValue) {
		t.Errorf("CopyAll with no value: got %v, want %v", err, session.ErrNoValue)
	}
	if err := s.CopyRow(&cb, 0); !errors.Is(err, session.ErrNoValue) {
		t.Errorf("CopyRow with no value: got %v, want %v", err, session.ErrNoValue)
	}
	if err := s.CopyNode(&cb, 0); !errors.Is(err, session.ErrNoValue) {
		t.Errorf("CopyNode with no value: got %v, want %v", err, session.ErrNoValue)
	}

	s.SetInput(`{"k": [true, "v"], "n": null}`)
	if err := s.CopyAll(&cb); err != nil {
		t.Fatalf("CopyAll: unexpected error: %v", err)
	}
	const pretty = "{\n  \"k\": [\n    true,\n    \"v\"\n  ],\n  \"n\": null\n}"
	if diff := cmp.Diff(cb.text, pretty); diff != "" {
		t.Errorf("CopyAll (-got, +want):\n%s", diff)
	}

	if err := s.CopyRow(&cb, 1); err != nil {
		t.Fatalf("CopyRow: unexpected error: %v", err)
	} else if cb.text != `"v"` {
		t.Errorf("CopyRow: got %q, want %q", cb.text, `"v"`)
	}
	if err := s.CopyRow(&cb, 3); err == nil {
		t.Error("CopyRow(3): got nil error, want error")
	}

	n, ok := s.Tree().Find("k")
	if !ok {
		t.Fatal(`Find "k" failed`)
	}
	if err := s.CopyNode(&cb, n.ID); err != nil {
		t.Fatalf("CopyNode: unexpected error: %v", err)
	} else if want := "[\n  true,\n  \"v\"\n]"; cb.text != want {
		t.Errorf("CopyNode: got %q, want %q", cb.text, want)
	}

	bad := &fakeClipboard{err: errors.New("no clipboard")}
	if err := s.CopyAll(bad); err == nil {
		t.Error("CopyAll: got nil error from failing clipboard")
	}
}

func TestExport(t *testing.T) {
	s := session.New(session.Options{})
	ex := make(fakeExporter)
	if err := s.Export(ex); err != nil {
		t.Errorf("Export with no value: unexpected error: %v", err)
	}
	if len(ex) != 0 {
		t.Errorf("Export with no value wrote %v", ex)
	}

	s.SetInput(`{"a":1}`)
	if err := s.Export(ex); err != nil {
		t.Fatalf("Export: unexpected error: %v", err)
	}
	if diff := cmp.Diff(ex, fakeExporter{"schema.json": "{\n  \"a\": 1\n}"}); diff != "" {
		t.Errorf("Export (-got, +want):\n%s", diff)
	}
}

func TestViewAndTheme(t *testing.T) {
	var th fakeTheme
	s := session.New(session.Options{Theme: &th, Dark: true})
	if s.View() != session.TreeView {
		t.Errorf("View: got %v, want tree", s.View())
	}
	if got := s.ToggleView(); got != session.TableView {
		t.Errorf("ToggleView: got %v, want table", got)
	}
	if got := s.ToggleView(); got != session.TreeView {
		t.Errorf("ToggleView: got %v, want tree", got)
	}
	s.SetView(session.TableView)
	if s.View() != session.TableView {
		t.Errorf("SetView: got %v, want table", s.View())
	}

	if s.ToggleTheme() || s.Dark() {
		t.Error("ToggleTheme: got dark, want light")
	}
	if !s.ToggleTheme() {
		t.Error("ToggleTheme: got light, want dark")
	}
	if diff := cmp.Diff(th.calls, []bool{true, false, true}); diff != "" {
		t.Errorf("Theme calls (-got, +want):\n%s", diff)
	}

	for _, name := range []string{"tree", "table", "TABLE"} {
		v, err := session.ParseView(name)
		if err != nil {
			t.Errorf("ParseView(%q): %v", name, err)
		} else if v.String() != map[string]string{"tree": "tree", "table": "table", "TABLE": "table"}[name] {
			t.Errorf("ParseView(%q): got %v", name, v)
		}
	}
	if _, err := session.ParseView("grid"); err == nil {
		t.Error("ParseView(grid): got nil error")
	}
}

func TestSampleAndClear(t *testing.T) {
	s := session.New(session.Options{})
	if err := s.LoadSample(); err != nil {
		t.Fatalf("LoadSample: %v", err)
	}
	if got := len(s.Rows()); got != 12 {
		t.Errorf("Sample rows: got %d, want 12", got)
	}
	v, err := s.Lookup("metadata.tags[1]")
	if err != nil {
		t.Errorf("Lookup: unexpected error: %v", err)
	} else if v.JSON() != `"premium"` {
		t.Errorf("Lookup: got %s, want \"premium\"", v.JSON())
	}

	s.Clear()
	if s.HasValue() || s.Input() != "" || s.Err() != nil {
		t.Errorf("Clear: got (%v, %q, %v), want empty", s.Value(), s.Input(), s.Err())
	}
	if _, err := s.Lookup("name"); !errors.Is(err, session.ErrNoValue) {
		t.Errorf("Lookup after Clear: got %v, want %v", err, session.ErrNoValue)
	}
}
