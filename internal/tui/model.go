// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package tui implements the interactive terminal front end.
//
// The screen has an input area for JSON text above a view of the parsed
// value, which is either an expandable tree or a table of leaf paths. The
// state of the document lives in a session.Session; the Model here holds
// only the widgets and the cursor.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creachadair/schemascope/internal/logger"
	"github.com/creachadair/schemascope/session"
)

const inputHeight = 6

// Options configure a Model.
type Options struct {
	Clipboard session.Clipboard // required
	Exporter  session.Exporter  // required

	// MaxValueWidth truncates values in the table view. Zero means the value
	// column takes the remaining width.
	MaxValueWidth int
}

// Model is the bubbletea model for the application.
type Model struct {
	sess  *session.Session
	theme *Theme
	opts  Options
	keys  KeyMap

	input    textarea.Model
	table    table.Model
	viewport viewport.Model
	help     help.Model

	browsing bool // keys go to the view rather than the input
	cursor   int  // selected line of the tree view
	status   string

	width, height int
	valueWidth    int // of the table value column
}

// New constructs a Model for sess. The theme should be the one given to sess
// in its options, so that theme changes reach the display.
func New(sess *session.Session, theme *Theme, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type JSON here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(inputHeight)
	ta.SetValue(sess.Input())
	ta.Focus()

	m := Model{
		sess:     sess,
		theme:    theme,
		opts:     opts,
		keys:     DefaultKeyMap(),
		input:    ta,
		table:    table.New(table.WithFocused(true)),
		viewport: viewport.New(80, 10),
		help:     help.New(),
		width:    80,
		height:   24,
	}
	m.table.SetStyles(theme.TableStyles())
	m.layout()
	if sess.HasValue() {
		// Start on the view when a document was supplied up front.
		m.browsing = true
		m.input.Blur()
	}
	m.refresh()
	return m
}

// Session returns the session displayed by m.
func (m Model) Session() *session.Session { return m.sess }

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	logger.Debug("tui started", "view", m.sess.View().String())
	if m.browsing {
		return nil
	}
	return textarea.Blink
}
