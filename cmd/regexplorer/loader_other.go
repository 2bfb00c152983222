//go:build !windows

package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

var errNotWindows = errors.New("the live registry is only available on Windows")

// Loader stubs so the model and its tests build everywhere. The real
// loaders live in loader_windows.go.

func loadKeys(path string) tea.Cmd {
	return func() tea.Msg {
		return loadFailedMsg{Path: path, Err: errNotWindows}
	}
}

func loadValues(path string) tea.Cmd {
	return func() tea.Msg {
		return loadFailedMsg{Path: path, Err: errNotWindows}
	}
}
