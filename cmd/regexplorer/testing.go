package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestHelper drives the model the way the bubbletea runtime would,
// without running a program. Loader messages are injected by hand so
// navigation logic can be exercised without a live registry.
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper with a model rooted at rootPath
func NewTestHelper(rootPath string) *TestHelper {
	return &TestHelper{
		model: NewModel(rootPath),
	}
}

// SendKey simulates a key press but does not execute async commands
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// LoadKeys injects a subkey listing as if the loader had returned it
func (h *TestHelper) LoadKeys(path string, keys []keyRow) *TestHelper {
	updated, _ := h.model.Update(keysLoadedMsg{Path: path, Keys: keys})
	h.model = updated.(Model)
	return h
}

// LoadValues injects a value listing as if the loader had returned it
func (h *TestHelper) LoadValues(path string, values []valueRow) *TestHelper {
	updated, _ := h.model.Update(valuesLoadedMsg{Path: path, Values: values})
	h.model = updated.(Model)
	return h
}

// FailLoad injects a loader failure
func (h *TestHelper) FailLoad(path string, err error) *TestHelper {
	updated, _ := h.model.Update(loadFailedMsg{Path: path, Err: err})
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}
