// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/schemascope/ast"
	"github.com/creachadair/schemascope/flatten"
	"github.com/creachadair/schemascope/internal/apperr"
	"github.com/creachadair/schemascope/internal/config"
	"github.com/creachadair/schemascope/internal/logger"
	"github.com/creachadair/schemascope/internal/output"
	"github.com/creachadair/schemascope/internal/tui"
	"github.com/creachadair/schemascope/kind"
	"github.com/creachadair/schemascope/session"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// env is the environment shared by commands.
type env struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput reads the named file, or stdin if name is "" or "-". It reports
// ErrNoInput if it would read stdin from a terminal.
func (e *env) readInput(name string) ([]byte, error) {
	if name != "" && name != "-" {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, apperr.Inputf(err, "read %s", name)
		}
		return data, nil
	}
	if isTerminal(e.stdin) {
		return nil, apperr.Inputf(apperr.ErrNoInput, "read stdin")
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return nil, apperr.Inputf(err, "read stdin")
	}
	return data, nil
}

// load reads and parses a document into a new session.
func (e *env) load(name string, opts session.Options) (*session.Session, error) {
	data, err := e.readInput(name)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperr.Inputf(apperr.ErrEmptyInput, "read %s", inputName(name))
	}
	sess := session.New(opts)
	if err := sess.SetInput(string(data)); err != nil {
		return nil, apperr.Parsef(err, "%s", inputName(name))
	}
	logger.Debug("loaded document", "input", inputName(name), "bytes", len(data))
	return sess, nil
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

type uiCmd struct {
	File string `arg:"" optional:"" help:"JSON file to open (- for stdin)."`
}

func (c *uiCmd) Run(e *env) error {
	theme := tui.NewTheme()
	opts := e.cfg.SessionOptions()
	opts.Theme = theme
	sess := session.New(opts)

	// With no file and an interactive stdin, start with an empty input.
	if c.File != "" || !isTerminal(e.stdin) {
		data, err := e.readInput(c.File)
		if err != nil {
			return err
		}
		// A parse error is shown in the UI rather than reported here.
		sess.SetInput(string(data))
	}

	m := tui.New(sess, theme, tui.Options{
		Clipboard:     output.SystemClipboard{},
		Exporter:      &output.DirExporter{Dir: e.cfg.ExportDir},
		MaxValueWidth: e.cfg.Table.MaxValueWidth,
	})
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isTerminal(e.stdin) {
		popts = append(popts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(m, popts...).Run(); err != nil {
		return apperr.Outputf(err, "run interface")
	}
	return nil
}

type tableCmd struct {
	File     string `arg:"" optional:"" help:"JSON file to read (default stdin)."`
	MaxWidth int    `help:"Truncate values wider than this (default from config)." short:"w"`
	Color    bool   `help:"Colour values by type when writing to a terminal." default:"true" negatable:""`
}

func (c *tableCmd) Run(e *env) error {
	sess, err := e.load(c.File, e.cfg.SessionOptions())
	if err != nil {
		return err
	}
	width := c.MaxWidth
	if width <= 0 {
		width = e.cfg.Table.MaxValueWidth
	}
	if f, ok := e.stdout.(*os.File); ok && isTerminal(f) {
		// Leave room for the other columns.
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 40 {
			if width <= 0 || width > cols/2 {
				width = cols / 2
			}
		}
	}
	color := c.Color && isTerminal(e.stdout)

	if err := writeTable(e.stdout, sess.Rows(), width, color); err != nil {
		return apperr.Outputf(err, "write table")
	}
	return nil
}

// Value styles for coloured table output.
var typeStyles = map[kind.Tag]lipgloss.Style{
	kind.Null:    lipgloss.NewStyle().Foreground(tui.DarkPalette.Null),
	kind.String:  lipgloss.NewStyle().Foreground(tui.DarkPalette.String),
	kind.Number:  lipgloss.NewStyle().Foreground(tui.DarkPalette.Number),
	kind.Boolean: lipgloss.NewStyle().Foreground(tui.DarkPalette.Boolean),
}

// writeTable writes rows to w as a bordered table. Values wider than
// maxWidth are truncated, unless maxWidth is zero.
func writeTable(w io.Writer, rows []flatten.Row, maxWidth int, color bool) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.On, Bottom: tw.On},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.On},
			},
		}),
	)
	table.Header([]string{"Path", "Type", "Value", "Description"})
	for _, r := range rows {
		value := r.Value
		if maxWidth > 0 {
			value = runewidth.Truncate(value, maxWidth, "...")
		}
		if color {
			value = typeStyles[r.Type].Render(value)
		}
		if err := table.Append([]string{r.Path, r.Type.String(), value, r.Description}); err != nil {
			return err
		}
	}
	table.Caption(tw.Caption{Text: fmt.Sprintf("%d leaf values", len(rows))})
	return table.Render()
}

type treeCmd struct {
	File        string   `arg:"" optional:"" help:"JSON file to read (default stdin)."`
	Collapse    []string `help:"Collapse the node at this path (repeatable)." placeholder:"PATH"`
	CollapseAll bool     `help:"Collapse all top-level nodes."`
}

func (c *treeCmd) Run(e *env) error {
	sess, err := e.load(c.File, e.cfg.SessionOptions())
	if err != nil {
		return err
	}
	tr := sess.Tree()
	if c.CollapseAll {
		tr.CollapseAll()
	}
	for _, path := range c.Collapse {
		n, ok := tr.Find(path)
		if !ok {
			return apperr.Inputf(fmt.Errorf("%w: %q", apperr.ErrPathNotFound, path), "collapse")
		}
		tr.SetCollapsed(n.ID, true)
	}
	if err := tr.Render(e.stdout); err != nil {
		return apperr.Outputf(err, "write tree")
	}
	return nil
}

type getCmd struct {
	Path    string `arg:"" help:"Flattened path, for example metadata.tags[0]."`
	File    string `arg:"" optional:"" help:"JSON file to read (default stdin)."`
	Compact bool   `help:"Print the value on one line." short:"c"`
	Raw     bool   `help:"Print a string value without quotes." short:"r"`
}

func (c *getCmd) Run(e *env) error {
	sess, err := e.load(c.File, e.cfg.SessionOptions())
	if err != nil {
		return err
	}
	v, err := sess.Lookup(c.Path)
	if err != nil {
		return apperr.Inputf(err, "get %s", c.Path)
	}
	var text string
	switch s, isString := v.(ast.String); {
	case c.Raw && isString:
		text = string(s)
	case c.Compact:
		text = v.JSON()
	default:
		text = ast.Indent(v, session.Indent)
	}
	if _, err := fmt.Fprintln(e.stdout, text); err != nil {
		return apperr.Outputf(err, "write value")
	}
	return nil
}

type exportCmd struct {
	File string `arg:"" optional:"" help:"JSON file to read (default stdin)."`
	Dir  string `help:"Directory to write schema.json into (default from config)." short:"o" type:"path"`
}

func (c *exportCmd) Run(e *env) error {
	sess, err := e.load(c.File, e.cfg.SessionOptions())
	if err != nil {
		return err
	}
	dir := c.Dir
	if dir == "" {
		dir = e.cfg.ExportDir
	}
	ex := &output.DirExporter{Dir: dir}
	if err := sess.Export(ex); err != nil {
		return apperr.Outputf(err, "export")
	}
	fmt.Fprintf(e.stderr, "Wrote %s\n", strings.TrimPrefix(ex.Written, "./"))
	return nil
}
