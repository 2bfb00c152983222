package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Pane represents which pane is focused
type Pane int

const (
	KeyPane Pane = iota
	ValuePane
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	JumpMode
)

// keyRow is one subkey of the current key.
type keyRow struct {
	Name    string
	Path    string // full path, rooted at a hive name
	Subkeys int
	Values  int
	Denied  bool // the key exists but could not be opened for reading
}

// valueRow is one value of the current key, already rendered for display.
type valueRow struct {
	Name    string // display name; the default value shows as (Default)
	Type    string
	Display string
	Size    int // stored payload size in bytes
}

// Loader messages. Every load is tagged with the path it answers for so
// responses that arrive after the user navigated away can be dropped.
type keysLoadedMsg struct {
	Path string
	Keys []keyRow
}

type valuesLoadedMsg struct {
	Path   string
	Values []valueRow
}

type loadFailedMsg struct {
	Path string
	Err  error
}

// clearStatusMsg clears the transient status message
type clearStatusMsg struct{}

// Model is the main application model
type Model struct {
	rootPath string // where the session started
	curPath  string // key whose subkeys and values are displayed

	keys   []keyRow
	values []valueRow

	keyCursor int
	valCursor int
	keyOffset int
	valOffset int

	focusedPane Pane
	width       int
	height      int

	inputMode InputMode
	input     textinput.Model

	keymap KeyMap

	loadingKeys   bool
	loadingValues bool
	statusMessage string
	showHelp      bool
}

// NewModel creates a new TUI model rooted at the given key path.
func NewModel(rootPath string) Model {
	ti := textinput.New()
	ti.Placeholder = `HKEY_LOCAL_MACHINE\Software\...`
	ti.Prompt = ""

	return Model{
		rootPath:      rootPath,
		curPath:       rootPath,
		focusedPane:   KeyPane,
		inputMode:     NormalMode,
		input:         ti,
		keymap:        DefaultKeyMap(),
		loadingKeys:   true,
		loadingValues: true,
	}
}

// Init kicks off the initial load for the root key.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadKeys(m.curPath), loadValues(m.curPath))
}

// selectedKey returns the key row under the cursor, or nil.
func (m Model) selectedKey() *keyRow {
	if m.keyCursor < 0 || m.keyCursor >= len(m.keys) {
		return nil
	}
	return &m.keys[m.keyCursor]
}

// selectedValue returns the value row under the cursor, or nil.
func (m Model) selectedValue() *valueRow {
	if m.valCursor < 0 || m.valCursor >= len(m.values) {
		return nil
	}
	return &m.values[m.valCursor]
}

// paneRows returns how many list rows fit in a pane at the current
// terminal size. Header, status bar, borders and the value table
// header eat the rest.
func (m Model) paneRows() int {
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

// parentPath returns the parent of a full registry path, or "" when the
// path is already a bare hive root.
func parentPath(path string) string {
	p := strings.TrimRight(path, `\`)
	i := strings.LastIndex(p, `\`)
	if i < 0 {
		return ""
	}
	return p[:i]
}
