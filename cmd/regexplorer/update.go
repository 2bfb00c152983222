package main

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/regkit/cmd/regexplorer/logger"
)

// statusExpiry is how long transient status messages stay visible.
const statusExpiry = 2 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 12
		if w < 20 {
			w = 20
		}
		m.input.Width = w
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case keysLoadedMsg:
		if msg.Path != m.curPath {
			logger.Debug("dropping stale key load", "path", msg.Path, "current", m.curPath)
			return m, nil
		}
		m.keys = msg.Keys
		m.loadingKeys = false
		m = m.clampKeyCursor()
		if m.statusMessage == reloadingStatus {
			m.statusMessage = ""
		}
		return m, nil

	case valuesLoadedMsg:
		if msg.Path != m.curPath {
			logger.Debug("dropping stale value load", "path", msg.Path, "current", m.curPath)
			return m, nil
		}
		m.values = msg.Values
		m.loadingValues = false
		m = m.clampValCursor()
		if m.statusMessage == reloadingStatus {
			m.statusMessage = ""
		}
		return m, nil

	case loadFailedMsg:
		if msg.Path != m.curPath {
			return m, nil
		}
		logger.Error("load failed", "path", msg.Path, "error", msg.Err)
		m.loadingKeys = false
		m.loadingValues = false
		m.statusMessage = "Error: " + msg.Err.Error()
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

const reloadingStatus = "Reloading..."

// handleKey routes a key press according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything except the keys that close it
	if m.showHelp {
		if key.Matches(msg, m.keymap.Esc) || key.Matches(msg, m.keymap.Help) || key.Matches(msg, m.keymap.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.inputMode == JumpMode {
		return m.handleJumpInput(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		logger.Info("quit", "path", m.curPath)
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.Tab):
		if m.focusedPane == KeyPane {
			m.focusedPane = ValuePane
		} else {
			m.focusedPane = KeyPane
		}
		return m, nil

	case key.Matches(msg, m.keymap.Jump):
		m.inputMode = JumpMode
		m.input.SetValue(m.curPath)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keymap.Up):
		return m.moveCursor(-1), nil

	case key.Matches(msg, m.keymap.Down):
		return m.moveCursor(1), nil

	case key.Matches(msg, m.keymap.PageUp):
		return m.moveCursor(-m.paneRows()), nil

	case key.Matches(msg, m.keymap.PageDown):
		return m.moveCursor(m.paneRows()), nil

	case key.Matches(msg, m.keymap.Home):
		return m.moveCursorTo(0), nil

	case key.Matches(msg, m.keymap.End):
		if m.focusedPane == KeyPane {
			return m.moveCursorTo(len(m.keys) - 1), nil
		}
		return m.moveCursorTo(len(m.values) - 1), nil

	case key.Matches(msg, m.keymap.Enter), key.Matches(msg, m.keymap.Right):
		if m.focusedPane == KeyPane {
			sel := m.selectedKey()
			if sel == nil {
				return m, nil
			}
			logger.Debug("descend", "path", sel.Path)
			return m.navigateTo(sel.Path)
		}
		// In the value pane Enter surfaces the full rendering, which
		// the table cell may have truncated.
		if sel := m.selectedValue(); sel != nil {
			m.statusMessage = sel.Name + " = " + sel.Display
			return m, statusTimeout()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Left):
		parent := parentPath(m.curPath)
		if parent == "" {
			m.statusMessage = "Already at hive root"
			return m, statusTimeout()
		}
		logger.Debug("ascend", "path", parent)
		return m.navigateTo(parent)

	case key.Matches(msg, m.keymap.Copy):
		path := m.curPath
		if m.focusedPane == KeyPane {
			if sel := m.selectedKey(); sel != nil {
				path = sel.Path
			}
		}
		if err := clipboard.WriteAll(path); err != nil {
			m.statusMessage = "Clipboard error: " + err.Error()
		} else {
			m.statusMessage = "Copied path"
		}
		return m, statusTimeout()

	case key.Matches(msg, m.keymap.CopyValue):
		sel := m.selectedValue()
		if sel == nil {
			m.statusMessage = "No value selected"
			return m, statusTimeout()
		}
		if err := clipboard.WriteAll(sel.Display); err != nil {
			m.statusMessage = "Clipboard error: " + err.Error()
		} else {
			m.statusMessage = "Copied value data"
		}
		return m, statusTimeout()

	case key.Matches(msg, m.keymap.Refresh):
		m.loadingKeys = true
		m.loadingValues = true
		m.statusMessage = reloadingStatus
		return m, tea.Batch(loadKeys(m.curPath), loadValues(m.curPath))
	}

	return m, nil
}

// handleJumpInput feeds keys to the path prompt.
func (m Model) handleJumpInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Esc):
		m.inputMode = NormalMode
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keymap.Enter):
		path := strings.TrimSpace(m.input.Value())
		m.inputMode = NormalMode
		m.input.Blur()
		if path == "" {
			return m, nil
		}
		logger.Info("jump", "path", path)
		return m.navigateTo(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// navigateTo switches the display to another key and kicks off loads
// for it. Rows from the previous key are dropped immediately so the
// view never shows children under the wrong path.
func (m Model) navigateTo(path string) (tea.Model, tea.Cmd) {
	m.curPath = path
	m.keys = nil
	m.values = nil
	m.keyCursor, m.keyOffset = 0, 0
	m.valCursor, m.valOffset = 0, 0
	m.loadingKeys = true
	m.loadingValues = true
	m.statusMessage = ""
	return m, tea.Batch(loadKeys(path), loadValues(path))
}

// moveCursor moves the focused pane's cursor by delta rows.
func (m Model) moveCursor(delta int) Model {
	if m.focusedPane == KeyPane {
		return m.moveCursorTo(m.keyCursor + delta)
	}
	return m.moveCursorTo(m.valCursor + delta)
}

// moveCursorTo moves the focused pane's cursor to an absolute row,
// clamped to the list bounds, and scrolls the pane to keep it visible.
func (m Model) moveCursorTo(pos int) Model {
	if m.focusedPane == KeyPane {
		m.keyCursor = clampCursor(pos, len(m.keys))
		m.keyOffset = clampOffset(m.keyCursor, m.keyOffset, m.paneRows())
		return m
	}
	m.valCursor = clampCursor(pos, len(m.values))
	m.valOffset = clampOffset(m.valCursor, m.valOffset, m.paneRows())
	return m
}

func (m Model) clampKeyCursor() Model {
	m.keyCursor = clampCursor(m.keyCursor, len(m.keys))
	m.keyOffset = clampOffset(m.keyCursor, m.keyOffset, m.paneRows())
	return m
}

func (m Model) clampValCursor() Model {
	m.valCursor = clampCursor(m.valCursor, len(m.values))
	m.valOffset = clampOffset(m.valCursor, m.valOffset, m.paneRows())
	return m
}

// clampCursor clamps a cursor position to [0, n).
// An empty list pins the cursor at 0.
func clampCursor(pos, n int) int {
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// clampOffset scrolls a window of visible rows so the cursor stays
// inside it.
func clampOffset(cursor, offset, visible int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+visible {
		return cursor - visible + 1
	}
	return offset
}

// statusTimeout schedules the transient status message to clear.
func statusTimeout() tea.Cmd {
	return tea.Tick(statusExpiry, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
