//go:build windows

package main

import (
	"testing"
)

func TestInfoCommand(t *testing.T) {
	path := scratchPath(t)
	seedTree(t, path)

	t.Run("text output", func(t *testing.T) {
		resetFlags()

		output, err := captureOutput(t, func() error {
			return runInfo([]string{path})
		})
		if err != nil {
			t.Fatalf("runInfo() error = %v", err)
		}

		assertContains(t, output, []string{
			"Key Information:",
			"Path: " + path,
			"Subkeys: 2 (longest name: 5 chars)",
			"Values: 3 (longest name: 3 chars, largest data: 12 bytes)",
			"Last write: ",
		})
	})

	t.Run("json output", func(t *testing.T) {
		resetFlags()
		jsonOut = true

		output, err := captureOutput(t, func() error {
			return runInfo([]string{path})
		})
		if err != nil {
			t.Fatalf("runInfo() error = %v", err)
		}

		assertJSON(t, output)
		assertContains(t, output, []string{
			`"subkeys": 2`,
			`"values": 3`,
			`"max_subkey_len": 5`,
			`"max_value_name_len": 3`,
			`"max_value_len": 12`,
			`"last_write"`,
		})
	})
}

func TestInfoCommandMissingKey(t *testing.T) {
	resetFlags()

	_, err := captureOutput(t, func() error {
		return runInfo([]string{`HKCU\Software\regctl-test-definitely-missing`})
	})
	if err == nil {
		t.Fatal("runInfo() expected error for missing key")
	}
}
