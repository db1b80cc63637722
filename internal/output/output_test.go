// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/schemascope/internal/output"
	"github.com/creachadair/schemascope/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ session.Clipboard = output.SystemClipboard{}
	_ session.Exporter  = (*output.DirExporter)(nil)
)

func TestDirExporter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	ex := &output.DirExporter{Dir: dir}

	require.NoError(t, ex.Export("schema.json", []byte(`{"a": 1}`)))
	want := filepath.Join(dir, "schema.json")
	assert.Equal(t, want, ex.Written)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	// Exporting again replaces the file.
	require.NoError(t, ex.Export("schema.json", []byte(`[]`)))
	data, err = os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestDirExporterBadName(t *testing.T) {
	ex := &output.DirExporter{Dir: t.TempDir()}
	for _, name := range []string{"", "../schema.json", "a/b.json"} {
		assert.Error(t, ex.Export(name, nil), "Export(%q)", name)
	}
	assert.Empty(t, ex.Written)
}

func TestSessionExport(t *testing.T) {
	dir := t.TempDir()
	ex := &output.DirExporter{Dir: dir}
	s := session.New(session.Options{})

	require.NoError(t, s.Export(ex))
	assert.NoFileExists(t, filepath.Join(dir, session.ExportName))

	require.NoError(t, s.LoadSample())
	require.NoError(t, s.Export(ex))
	data, err := os.ReadFile(filepath.Join(dir, session.ExportName))
	require.NoError(t, err)
	assert.Equal(t, s.Pretty(), string(data))
}
