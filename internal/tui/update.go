// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creachadair/schemascope/internal/logger"
	"github.com/creachadair/schemascope/session"
	"github.com/mattn/go-runewidth"
)

// Rows of the screen not available to the tree or table: the title, the
// bordered input, the message line, the tabs, and the status line.
const chromeHeight = 1 + (inputHeight + 2) + 1 + 1 + 1

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.browsing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// Keys that work everywhere.
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.LoadSample):
		m.sess.LoadSample()
		m.input.SetValue(m.sess.Input())
		m.reset()
		m.status = "Loaded sample"
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.sess.Clear()
		m.input.SetValue("")
		m.reset()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.browsing = !m.browsing
		m.refresh()
		if m.browsing {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if !m.browsing {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.sess.SetInput(after)
			m.reset()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.SwitchView):
		m.sess.ToggleView()
		m.refresh()

	case key.Matches(msg, m.keys.Theme):
		m.sess.ToggleTheme()
		m.table.SetStyles(m.theme.TableStyles())
		m.refresh()

	case key.Matches(msg, m.keys.CopyAll):
		m.report(m.sess.CopyAll(m.opts.Clipboard), "Copied document to clipboard")

	case key.Matches(msg, m.keys.CopyItem):
		m.report(m.copyItem(), "Copied value to clipboard")

	case key.Matches(msg, m.keys.Save):
		if !m.sess.HasValue() {
			m.status = "Nothing to save"
			break
		}
		m.report(m.sess.Export(m.opts.Exporter), "Saved "+session.ExportName)

	default:
		if m.sess.View() == session.TableView {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		m.treeKey(msg)
	}
	return m, nil
}

// treeKey handles navigation and collapse keys in the tree view.
func (m *Model) treeKey(msg tea.KeyMsg) {
	tr := m.sess.Tree()
	if tr == nil {
		return
	}
	n := len(tr.Lines())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= max(1, m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.cursor += max(1, m.viewport.Height)
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = n - 1
	case key.Matches(msg, m.keys.Toggle):
		if node, ok := tr.NodeAt(m.cursor); ok && node.Container() {
			tr.Toggle(node.ID)
		}
	case key.Matches(msg, m.keys.ExpandAll):
		tr.ExpandAll()
	case key.Matches(msg, m.keys.CollapseAll):
		tr.CollapseAll()
		m.cursor = 0
	default:
		return
	}
	m.refresh()
}

func (m *Model) copyItem() error {
	if m.sess.View() == session.TableView {
		return m.sess.CopyRow(m.opts.Clipboard, m.table.Cursor())
	}
	tr := m.sess.Tree()
	if tr == nil {
		return session.ErrNoValue
	}
	node, ok := tr.NodeAt(m.cursor)
	if !ok {
		return session.ErrNoValue
	}
	return m.sess.CopyNode(m.opts.Clipboard, node.ID)
}

func (m *Model) report(err error, success string) {
	switch {
	case err == nil:
		m.status = success
	case errors.Is(err, session.ErrNoValue):
		m.status = "No JSON to copy"
	default:
		logger.Warn("action failed", "err", err)
		m.status = "Error: " + err.Error()
	}
}

// reset moves the cursors to the top after the document changes.
func (m *Model) reset() {
	m.cursor = 0
	m.table.SetCursor(0)
	m.viewport.GotoTop()
	m.refresh()
}

// layout sizes the widgets to the window.
func (m *Model) layout() {
	w := max(20, m.width)
	h := max(3, m.height-chromeHeight)

	m.input.SetWidth(w - 2)
	m.viewport.Width = w
	m.viewport.Height = h
	m.table.SetWidth(w)
	m.table.SetHeight(h)

	const typeWidth, descWidth = 8, 26
	pathWidth := max(10, (w-typeWidth-descWidth)*2/5)
	valueWidth := max(10, w-pathWidth-typeWidth-descWidth-8)
	if m.opts.MaxValueWidth > 0 {
		valueWidth = min(valueWidth, m.opts.MaxValueWidth)
	}
	m.valueWidth = valueWidth
	m.table.SetColumns([]table.Column{
		{Title: "Path", Width: pathWidth},
		{Title: "Type", Width: typeWidth},
		{Title: "Value", Width: valueWidth},
		{Title: "Description", Width: descWidth},
	})
}

// refresh updates the table rows and the tree content from the session.
func (m *Model) refresh() {
	var rows []table.Row
	for _, r := range m.sess.Rows() {
		rows = append(rows, table.Row{
			r.Path,
			r.Type.String(),
			runewidth.Truncate(r.Value, m.valueWidth, "…"),
			r.Description,
		})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(0, len(rows)-1))
	}

	tr := m.sess.Tree()
	if tr == nil {
		m.cursor = 0
		m.viewport.SetContent("")
		return
	}
	lines := tr.Lines()
	m.cursor = max(0, min(m.cursor, len(lines)-1))
	m.viewport.SetContent(m.renderTree(lines))

	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
