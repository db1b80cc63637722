// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/schemascope/kind"
	"github.com/creachadair/schemascope/session"
	"github.com/creachadair/schemascope/tree"
)

const emptyPrompt = "Paste JSON above, or press ctrl+l to load a sample."

// View satisfies tea.Model.
func (m Model) View() string {
	t := m.theme
	parts := []string{
		t.title.Render("SchemaScope"),
		t.pane.Render(m.input.View()),
		m.message(),
		m.tabs(),
	}

	switch {
	case m.help.ShowAll:
		parts = append(parts, m.help.View(m.keys))
	case !m.sess.HasValue():
		// Nothing to show.
	case m.sess.View() == session.TableView:
		parts = append(parts, m.table.View())
	default:
		parts = append(parts, m.viewport.View())
	}

	if m.status != "" {
		parts = append(parts, t.accent.Render(m.status))
	} else {
		parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// message describes the state of the input.
func (m Model) message() string {
	t := m.theme
	switch {
	case m.sess.Err() != nil:
		return t.errMsg.Render(m.sess.Message())
	case !m.sess.HasValue():
		return t.muted.Render(emptyPrompt)
	default:
		return t.muted.Render(kind.Describe(m.sess.Value()))
	}
}

func (m Model) tabs() string {
	t := m.theme
	render := func(label string, v session.View) string {
		if m.sess.View() == v {
			return t.activeTab.Render(label)
		}
		return t.tab.Render(label)
	}
	mode := "editing"
	if m.browsing {
		mode = "browsing"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("Tree", session.TreeView),
		render("Table", session.TableView),
		t.muted.Render("  "+mode),
	)
}

// renderTree renders the visible tree lines, highlighting the cursor.
func (m Model) renderTree(lines []tree.Line) string {
	var sb strings.Builder
	for i, ln := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i == m.cursor && m.browsing {
			sb.WriteString(m.theme.selected.Render(ln.Text()))
		} else {
			sb.WriteString(m.styleLine(ln))
		}
	}
	return sb.String()
}

// styleLine renders ln in the same layout as ln.Text, with colours.
func (m Model) styleLine(ln tree.Line) string {
	t := m.theme
	if ln.Root {
		return t.Value(ln.Tag).Render(ln.Value)
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", ln.Depth))
	switch {
	case ln.Collapsed:
		sb.WriteString(t.accent.Render("▸ "))
	case ln.Expandable:
		sb.WriteString(t.accent.Render("▾ "))
	default:
		sb.WriteString("  ")
	}
	sb.WriteString(t.key.Render(ln.Label))
	sb.WriteString(t.muted.Render(": "))
	if ln.Expandable {
		sb.WriteString(t.Value(ln.Tag).Render(ln.Tag.String()))
		sb.WriteByte(' ')
		sb.WriteString(t.muted.Render(ln.Summary))
	} else {
		sb.WriteString(t.Value(ln.Tag).Render(ln.Value))
	}
	return sb.String()
}
