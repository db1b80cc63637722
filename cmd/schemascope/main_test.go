// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = "../../testdata/sample.json"

// run invokes realMain with an empty configuration file, so that no
// configuration in the enclosing directories affects the result.
func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfg, nil, 0644))

	var out, errOut bytes.Buffer
	code = realMain(append([]string{"--config", cfg}, args...), strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, stdout, _ := run(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, version)
}

func TestTree(t *testing.T) {
	code, stdout, stderr := run(t, "", "tree", sampleFile)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, `  name: "John Doe"`, lines[0])
	assert.Contains(t, stdout, "▾ address:")
	assert.Contains(t, stdout, `    street: "123 Main St"`)
}

func TestTreeCollapse(t *testing.T) {
	code, stdout, stderr := run(t, "", "tree", "--collapse", "address", sampleFile)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "▸ address:")
	assert.NotContains(t, stdout, "street")

	code, stdout, stderr = run(t, "", "tree", "--collapse-all", sampleFile)
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, "street")
	assert.NotContains(t, stdout, "premium")

	code, _, stderr = run(t, "", "tree", "--collapse", "nonesuch", sampleFile)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "nonesuch")
}

func TestAmbiguousPath(t *testing.T) {
	const doc = `{"a": {"b": {"c": 2}}, "a.b": {"c": 1}}`

	code, stdout, stderr := run(t, doc, "get", "a.b.c")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1\n", stdout)

	// The same path names the same node when collapsing.
	code, stdout, stderr = run(t, doc, "tree", "--collapse", "a.b")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "▸ a.b: object {1}")
	assert.Contains(t, stdout, "  ▾ b: object {1}")
	assert.Contains(t, stdout, "c: 2")
	assert.NotContains(t, stdout, "c: 1")
}

func TestTreeStdin(t *testing.T) {
	code, stdout, stderr := run(t, `[1, {"a": null}]`, "tree")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "[0]: 1")
	assert.Contains(t, stdout, "a: null")
}

func TestTable(t *testing.T) {
	code, stdout, stderr := run(t, "", "table", sampleFile)
	require.Equal(t, 0, code, stderr)
	for _, want := range []string{
		"address.street", "hobbies[2]", "metadata.tags[1]",
		"String (8 characters)", "Integer", "Boolean",
	} {
		assert.Contains(t, stdout, want)
	}
}

func TestTableTruncate(t *testing.T) {
	long := strings.Repeat("x", 40)
	code, stdout, stderr := run(t, `{"s": "`+long+`"}`, "table", "-w", "10")
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, long)
	assert.Contains(t, stdout, "...")
}

func TestGet(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"get", "age", sampleFile}, "30\n"},
		{[]string{"get", "metadata.tags[1]", sampleFile}, "\"premium\"\n"},
		{[]string{"get", "-r", "metadata.tags[1]", sampleFile}, "premium\n"},
		{[]string{"get", "-c", "hobbies", sampleFile}, "[\"reading\",\"coding\",\"traveling\"]\n"},
		{[]string{"get", "address", sampleFile}, "{\n  \"street\": \"123 Main St\",\n  \"city\": \"New York\",\n  \"country\": \"USA\"\n}\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args[:len(tc.args)-1], " "), func(t *testing.T) {
			code, stdout, stderr := run(t, "", tc.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestGetMissing(t *testing.T) {
	code, stdout, stderr := run(t, "", "get", "address.zip", sampleFile)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "address.zip")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := run(t, `{"b":[true,false]}`, "export", "-o", dir)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(filepath.Join(dir, "schema.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    true,\n    false\n  ]\n}", string(data))
	assert.Contains(t, stderr, "schema.json")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Invalid", `{"a": }`, []string{"tree"}, "Invalid JSON format"},
		{"Empty", "  \n", []string{"table"}, "input is empty"},
		{"NoFile", "", []string{"tree", "nonexistent.json"}, "Input error"},
		{"Depth", "[[[[1]]]]", []string{"--max-depth", "3", "tree"}, "nesting depth exceeds 3"},
		{"Comments", "{/* no */}", []string{"tree"}, "Invalid JSON format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.stdin, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tc.want)
		})
	}
}

func TestRelaxed(t *testing.T) {
	code, stdout, stderr := run(t, "{\n  // note\n  \"a\": 1,\n}", "--relaxed", "get", "a")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1\n", stdout)
}

func TestUsageError(t *testing.T) {
	code, _, _ := run(t, "", "get")
	assert.Equal(t, 2, code)
}
