// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/schemascope/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"`), `"say \"hi\""`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(1.5), `1.5`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{ast.Bool(false)}, `[false]`},
		{ast.Array{ast.Bool(true), ast.Int(199)}, `[true,199]`},
		{ast.Array{nil, ast.Null}, `[null,null]`},

		{ast.Object{}, `{}`},
		{ast.Object{ast.Field("xs", nil)}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", "Dennis"),
			ast.Field("age", 37),
			ast.Field("isOld", false),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{ast.Int(5), ast.Int(10), ast.Bool(true)}),
			ast.Field("page", ast.Object{
				ast.Field("token", "xyz-pdq-zvm"),
				ast.Field("count", 100),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},
		{ast.Bool(true), "true"},
		{ast.String("a\tb"), "a\tb"},
		{ast.Int(12), "12"},
		{ast.Array{ast.Null, ast.Null}, "Array(len=2)"},
		{ast.Object{ast.Field("a", 1)}, "Object(len=1)"},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("String(%#v): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestNumber(t *testing.T) {
	v, err := parseOne(`[1, -2, 3.5, 1e3, 2.0, 1e400, 12345678901234567890, -0]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arr := v.(ast.Array)

	tests := []struct {
		text    string
		isInt   bool
		int64   int64
		int64OK bool
	}{
		{"1", true, 1, true},
		{"-2", true, -2, true},
		{"3.5", false, 0, false},
		{"1e3", true, 1000, true},
		{"2.0", true, 2, true},
		{"1e400", false, 0, false},
		{"12345678901234567890", true, 0, false},
		{"-0", true, 0, true},
	}
	for i, tc := range tests {
		n := arr[i].(ast.Number)
		if got := n.Text(); got != tc.text {
			t.Errorf("Text %d: got %q, want %q", i, got, tc.text)
		}
		if got := n.IsInt(); got != tc.isInt {
			t.Errorf("IsInt(%s): got %v, want %v", tc.text, got, tc.isInt)
		}
		if z, ok := n.Int64(); ok != tc.int64OK || z != tc.int64 {
			t.Errorf("Int64(%s): got (%d, %v), want (%d, %v)", tc.text, z, ok, tc.int64, tc.int64OK)
		}
	}

	if f := arr[5].(ast.Number).Float64(); !math.IsInf(f, 1) {
		t.Errorf("Float64(1e400): got %v, want +Inf", f)
	}
}

func TestObject(t *testing.T) {
	obj := ast.Object{
		ast.Field("a", 1),
		ast.Field("b", "two"),
		ast.Field("a", 3),
	}
	if got := obj.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if m := obj.Find("a"); m == nil || m.Value.JSON() != "1" {
		t.Errorf("Find(a): got %v, want first member", m)
	}
	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %v, want nil", m)
	}
	keys := obj.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "a" {
		t.Errorf("Keys: got %q, want [a b a]", keys)
	}
}

func TestToValue(t *testing.T) {
	if got := ast.ToValue(nil); got != ast.Null {
		t.Errorf("ToValue(nil): got %#v, want Null", got)
	}
	if got := ast.ToValue(ast.String("x")); got != ast.String("x") {
		t.Errorf("ToValue(String): got %#v", got)
	}
	if got := ast.ToValue(int64(-4)).JSON(); got != "-4" {
		t.Errorf("ToValue(int64): got %s", got)
	}

	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	mtest.MustPanic(t, func() { ast.Float(math.NaN()) })
	mtest.MustPanic(t, func() { ast.Float(math.Inf(-1)) })
}

func TestIndent(t *testing.T) {
	tests := []struct {
		input  string
		indent string
		want   string
	}{
		{`null`, "  ", "null"},
		{`"x"`, "  ", `"x"`},
		{`{}`, "  ", "{}"},
		{`[]`, "  ", "[]"},
		{`{"a": [1, 2], "b": {}}`, "", `{"a":[1,2],"b":{}}`},
		{`{"a": [1, {"b": null}], "c": []}`, "  ", `{
  "a": [
    1,
    {
      "b": null
    }
  ],
  "c": []
}`},
		{`[true, "s"]`, "\t", "[\n\ttrue,\n\t\"s\"\n]"},
	}
	for _, tc := range tests {
		v, err := parseOne(tc.input)
		if err != nil {
			t.Fatalf("Parse %q: %v", tc.input, err)
		}
		if got := ast.Indent(v, tc.indent); got != tc.want {
			t.Errorf("Indent(%s, %q):\ngot:\n%s\nwant:\n%s", tc.input, tc.indent, got, tc.want)
		}
	}
}
