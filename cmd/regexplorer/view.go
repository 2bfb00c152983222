package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View renders the entire UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatus()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		status,
	)
}

// renderHeader renders the title bar with the current key path
func (m Model) renderHeader() string {
	title := headerStyle.Render("Registry Explorer")
	path := pathStyle.Render(m.curPath)

	loading := ""
	if m.loadingKeys || m.loadingValues {
		loading = mutedStyle.Render("  loading...")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", path, loading)
}

// renderContent renders the two panes side by side
func (m Model) renderContent() string {
	treeW := (m.width * 2) / 5
	if treeW < 26 {
		treeW = 26
	}
	valueW := m.width - treeW - 6
	if valueW < 30 {
		valueW = 30
	}

	keyPane := m.renderKeyPane(treeW - 4)
	valuePane := m.renderValuePane(valueW - 4)

	keyStyle := paneStyle
	valueStyle := paneStyle
	if m.focusedPane == KeyPane {
		keyStyle = activePaneStyle
	} else {
		valueStyle = activePaneStyle
	}

	h := m.paneRows() + 1

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		keyStyle.Width(treeW).Height(h).Render(keyPane),
		valueStyle.Width(valueW).Height(h).Render(valuePane),
	)
}

// renderKeyPane renders the subkey list of the current key
func (m Model) renderKeyPane(width int) string {
	lines := []string{paneTitleStyle.Render("Keys")}

	switch {
	case m.loadingKeys:
		lines = append(lines, mutedStyle.Render("Loading..."))
	case len(m.keys) == 0:
		lines = append(lines, mutedStyle.Render("(no subkeys)"))
	default:
		end := m.keyOffset + m.paneRows()
		if end > len(m.keys) {
			end = len(m.keys)
		}
		for i := m.keyOffset; i < end; i++ {
			row := m.keys[i]
			label := row.Name
			if row.Denied {
				label += " !"
			}
			line := pad(label, width)
			switch {
			case i == m.keyCursor && m.focusedPane == KeyPane:
				line = rowSelectedStyle.Render(line)
			case row.Denied:
				line = deniedStyle.Render(line)
			default:
				line = rowStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// renderValuePane renders the value table of the current key
func (m Model) renderValuePane(width int) string {
	nameW := 18
	typeW := 14
	dataW := width - nameW - typeW
	if dataW < 10 {
		dataW = 10
	}

	header := paneTitleStyle.Render(pad("Name", nameW) + pad("Type", typeW) + "Data")
	lines := []string{header}

	switch {
	case m.loadingValues:
		lines = append(lines, mutedStyle.Render("Loading..."))
	case len(m.values) == 0:
		lines = append(lines, mutedStyle.Render("(no values)"))
	default:
		end := m.valOffset + m.paneRows()
		if end > len(m.values) {
			end = len(m.values)
		}
		for i := m.valOffset; i < end; i++ {
			row := m.values[i]
			line := pad(row.Name, nameW) + pad(row.Type, typeW) + truncate(row.Display, dataW)
			if i == m.valCursor && m.focusedPane == ValuePane {
				line = rowSelectedStyle.Render(pad(line, width))
			} else {
				line = rowStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// renderStatus renders the bottom status bar
func (m Model) renderStatus() string {
	if m.inputMode == JumpMode {
		return statusStyle.Width(m.width).Render(jumpPromptStyle.Render("Go to: ") + m.input.View())
	}

	var left string
	switch {
	case m.statusMessage != "" && strings.HasPrefix(m.statusMessage, "Error"):
		left = errorStyle.Render(m.statusMessage)
	case m.statusMessage != "":
		left = m.statusMessage
	default:
		left = helpStyle.Render("? help • tab switch pane • ctrl+g jump • q quit")
	}

	right := statusCountStyle.Render(fmt.Sprintf("%d keys", len(m.keys))) +
		mutedStyle.Render(" • ") +
		statusCountStyle.Render(fmt.Sprintf("%d values", len(m.values)))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderHelpOverlay renders the full-screen keyboard reference
func (m Model) renderHelpOverlay() string {
	lines := []string{helpTitleStyle.Render("Keyboard Shortcuts"), ""}

	groups := [][]key.Binding{
		{m.keymap.Up, m.keymap.Down, m.keymap.Left, m.keymap.Right},
		{m.keymap.PageUp, m.keymap.PageDown, m.keymap.Home, m.keymap.End},
		{m.keymap.Enter, m.keymap.Tab, m.keymap.Jump},
		{m.keymap.Copy, m.keymap.CopyValue, m.keymap.Refresh},
		{m.keymap.Help, m.keymap.Quit},
	}

	for gi, group := range groups {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, helpKeyStyle.Render(h.Key)+helpDescStyle.Render(h.Desc))
		}
		if gi < len(groups)-1 {
			lines = append(lines, "")
		}
	}

	box := helpBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
