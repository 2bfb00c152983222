//go:build windows

package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/regkit/cmd/regexplorer/logger"
	"github.com/joshuapare/regkit/registry"
)

// loadKeys enumerates the subkeys of a key, with child counts for the
// ones that are readable. Runs off the UI goroutine as a tea.Cmd.
func loadKeys(path string) tea.Cmd {
	return func() tea.Msg {
		k, err := registry.OpenPath(path, registry.READ)
		if err != nil {
			return loadFailedMsg{Path: path, Err: err}
		}
		defer k.Close()

		names, err := k.SubKeyNames()
		if err != nil {
			return loadFailedMsg{Path: path, Err: err}
		}

		rows := make([]keyRow, 0, len(names))
		for _, name := range names {
			row := keyRow{Name: name, Path: path + `\` + name}
			child, err := k.Open(name, registry.READ)
			if err != nil {
				// Keep the row: the key exists, we just can't look
				// inside it. Typical for ACL-guarded system keys.
				row.Denied = errors.Is(err, registry.ErrPermission)
				logger.Debug("subkey not readable", "path", row.Path, "error", err)
			} else {
				if info, err := child.Stat(); err == nil {
					row.Subkeys = int(info.SubKeyCount)
					row.Values = int(info.ValueCount)
				}
				child.Close()
			}
			rows = append(rows, row)
		}

		return keysLoadedMsg{Path: path, Keys: rows}
	}
}

// loadValues reads and renders every value of a key as a tea.Cmd.
func loadValues(path string) tea.Cmd {
	return func() tea.Msg {
		k, err := registry.OpenPath(path, registry.READ)
		if err != nil {
			return loadFailedMsg{Path: path, Err: err}
		}
		defer k.Close()

		names, err := k.ValueNames()
		if err != nil {
			return loadFailedMsg{Path: path, Err: err}
		}

		rows := make([]valueRow, 0, len(names))
		for _, name := range names {
			v, err := k.Value(name)
			if err != nil {
				logger.Debug("value not readable", "path", path, "name", name, "error", err)
				continue
			}
			display := name
			if name == "" {
				display = "(Default)"
			}
			rows = append(rows, valueRow{
				Name:    display,
				Type:    v.Type.String(),
				Display: formatData(v),
				Size:    len(v.Data),
			})
		}

		return valuesLoadedMsg{Path: path, Values: rows}
	}
}
