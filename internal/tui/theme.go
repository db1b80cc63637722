// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/schemascope/kind"
)

// A Palette assigns colours to the elements of the display.
type Palette struct {
	Null, String, Number, Boolean, Container lipgloss.Color

	Key, Muted, Accent, Error, Selected lipgloss.Color
}

var (
	// LightPalette is used with the light theme.
	LightPalette = Palette{
		Null:      lipgloss.Color("#8c8fa1"),
		String:    lipgloss.Color("#40a02b"),
		Number:    lipgloss.Color("#1e66f5"),
		Boolean:   lipgloss.Color("#d20f39"),
		Container: lipgloss.Color("#8839ef"),
		Key:       lipgloss.Color("#4c4f69"),
		Muted:     lipgloss.Color("#9ca0b0"),
		Accent:    lipgloss.Color("#7D56F4"),
		Error:     lipgloss.Color("#d20f39"),
		Selected:  lipgloss.Color("#dce0e8"),
	}

	// DarkPalette is used with the dark theme.
	DarkPalette = Palette{
		Null:      lipgloss.Color("#737994"),
		String:    lipgloss.Color("#a6d189"),
		Number:    lipgloss.Color("#8caaee"),
		Boolean:   lipgloss.Color("#ea999c"),
		Container: lipgloss.Color("#ca9ee6"),
		Key:       lipgloss.Color("#c6d0f5"),
		Muted:     lipgloss.Color("#838ba7"),
		Accent:    lipgloss.Color("#7D56F4"),
		Error:     lipgloss.Color("#FF4B4B"),
		Selected:  lipgloss.Color("#414559"),
	}
)

// Theme holds the styles for the current palette. It implements
// session.Theme, so the session switches it between light and dark.
type Theme struct {
	dark bool
	p    Palette

	title, key, muted, accent, errMsg, selected, tab, activeTab, status lipgloss.Style
	pane                                                                lipgloss.Style
}

// NewTheme returns a light Theme.
func NewTheme() *Theme {
	t := new(Theme)
	t.SetDark(false)
	return t
}

// Dark reports whether t uses the dark palette.
func (t *Theme) Dark() bool { return t.dark }

// SetDark selects the dark palette if dark is true, otherwise the light one.
func (t *Theme) SetDark(dark bool) {
	t.dark = dark
	if dark {
		t.p = DarkPalette
	} else {
		t.p = LightPalette
	}
	t.title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(t.p.Accent).
		Padding(0, 1)
	t.key = lipgloss.NewStyle().Foreground(t.p.Key)
	t.muted = lipgloss.NewStyle().Foreground(t.p.Muted)
	t.accent = lipgloss.NewStyle().Foreground(t.p.Accent).Bold(true)
	t.errMsg = lipgloss.NewStyle().Foreground(t.p.Error).Bold(true)
	t.selected = lipgloss.NewStyle().Background(t.p.Selected).Bold(true)
	t.tab = lipgloss.NewStyle().Foreground(t.p.Muted).Padding(0, 1)
	t.activeTab = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.p.Accent).
		Bold(true).
		Padding(0, 1)
	t.status = lipgloss.NewStyle().Foreground(t.p.Muted)
	t.pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.p.Muted)
}

// Value returns the style for a value with the given tag.
func (t *Theme) Value(tag kind.Tag) lipgloss.Style {
	var c lipgloss.Color
	switch tag {
	case kind.Null:
		c = t.p.Null
	case kind.String:
		c = t.p.String
	case kind.Number:
		c = t.p.Number
	case kind.Boolean:
		c = t.p.Boolean
	default:
		c = t.p.Container
	}
	return lipgloss.NewStyle().Foreground(c)
}

// TableStyles returns styles for the table view.
func (t *Theme) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.p.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(t.p.Accent)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.p.Accent).
		Bold(true)
	return s
}
