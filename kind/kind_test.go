// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package kind_test

import (
	"strings"
	"testing"

	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/kind"
)

func mustParse(t *testing.T, s string) ast.Value {
	t.Helper()
	v, err := ast.ParseSingle(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse %q: %v", s, err)
	}
	return v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		tag   kind.Tag
		desc  string
	}{
		{`null`, kind.Null, "Null value"},
		{`true`, kind.Boolean, "Boolean"},
		{`false`, kind.Boolean, "Boolean"},
		{`0`, kind.Number, "Integer"},
		{`-12`, kind.Number, "Integer"},
		{`2.0`, kind.Number, "Integer"},
		{`1e3`, kind.Number, "Integer"},
		{`2.5`, kind.Number, "Float"},
		{`1e400`, kind.Number, "Float"},
		{`""`, kind.String, "String (0 characters)"},
		{`"hello"`, kind.String, "String (5 characters)"},
		{`"héllo"`, kind.String, "String (5 characters)"},
		{`"😀!"`, kind.String, "String (2 characters)"},
		{`[]`, kind.Array, "Array with 0 items"},
		{`[null, null, [1]]`, kind.Array, "Array with 3 items"},
		{`{}`, kind.Object, "Object with 0 properties"},
		{`{"a": 1, "b": null}`, kind.Object, "Object with 2 properties"},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := kind.Of(v); got != tc.tag {
			t.Errorf("Of(%s): got %v, want %v", tc.input, got, tc.tag)
		}
		if got := kind.Describe(v); got != tc.desc {
			t.Errorf("Describe(%s): got %q, want %q", tc.input, got, tc.desc)
		}
	}
}

func TestNil(t *testing.T) {
	if got := kind.Of(nil); got != kind.Null {
		t.Errorf("Of(nil): got %v, want null", got)
	}
	if got := kind.Describe(nil); got != "Null value" {
		t.Errorf("Describe(nil): got %q, want Null value", got)
	}
}

// String lengths count code points, not UTF-16 units, and a lone surrogate
// escape decodes to a single U+FFFD.
func TestStringLength(t *testing.T) {
	tests := []struct {
		input string
		value string
		desc  string
	}{
		{`"\ud83d\ude00"`, "\U0001f600", "String (1 characters)"},
		{`"\ud800"`, "\ufffd", "String (1 characters)"},
		{`"\ud800x"`, "\ufffdx", "String (2 characters)"},
		{`"\ude00\ud800"`, "\ufffd\ufffd", "String (2 characters)"},
	}
	for _, tc := range tests {
		v := mustParse(t, tc.input)
		if got := string(v.(ast.String)); got != tc.value {
			t.Errorf("Parse %s: got %q, want %q", tc.input, got, tc.value)
		}
		if got := kind.Describe(v); got != tc.desc {
			t.Errorf("Describe(%s): got %q, want %q", tc.input, got, tc.desc)
		}
	}
}

func TestTag(t *testing.T) {
	all := []kind.Tag{kind.Null, kind.Array, kind.Object, kind.String, kind.Number, kind.Boolean}
	seen := make(map[string]bool)
	for _, tag := range all {
		name := tag.String()
		if seen[name] {
			t.Errorf("Duplicate tag name %q", name)
		}
		seen[name] = true

		got, ok := kind.Parse(name)
		if !ok || got != tag {
			t.Errorf("Parse(%q): got (%v, %v), want (%v, true)", name, got, ok, tag)
		}
		if want := tag == kind.Array || tag == kind.Object; tag.Container() != want {
			t.Errorf("%v.Container(): got %v, want %v", tag, tag.Container(), want)
		}
	}
	if _, ok := kind.Parse("integer"); ok {
		t.Error(`Parse("integer"): got ok, want not found`)
	}
	if got := kind.Tag(99).String(); got != "Tag(99)" {
		t.Errorf("String: got %q, want Tag(99)", got)
	}
}
