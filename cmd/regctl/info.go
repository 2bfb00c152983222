//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/registry"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <path>",
		Short: "Display metadata about a registry key",
		Long: `The info command displays metadata about a registry key, including
subkey and value counts, name length maxima, and the last write time.

Example:
  regctl info "HKLM\Software\Microsoft\Windows NT\CurrentVersion"
  regctl info "HKCU\Environment" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	info, err := k.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat key: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"path":               k.String(),
			"subkeys":            info.SubKeyCount,
			"max_subkey_len":     info.MaxSubKeyLen,
			"values":             info.ValueCount,
			"max_value_name_len": info.MaxValueNameLen,
			"max_value_len":      info.MaxValueLen,
			"last_write":         info.LastWrite.Format("2006-01-02T15:04:05Z07:00"),
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\nKey Information:\n")
	printInfo("  Path: %s\n", k.String())
	printInfo("  Subkeys: %d (longest name: %d chars)\n", info.SubKeyCount, info.MaxSubKeyLen)
	printInfo("  Values: %d (longest name: %d chars, largest data: %d bytes)\n",
		info.ValueCount, info.MaxValueNameLen, info.MaxValueLen)
	printInfo("  Last write: %s\n", info.LastWrite.Format("2006-01-02 15:04:05"))

	return nil
}
