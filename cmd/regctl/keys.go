//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/registry"
)

var (
	keysRecursive bool
	keysDepth     int
)

func init() {
	cmd := newKeysCmd()
	cmd.Flags().BoolVarP(&keysRecursive, "recursive", "r", false, "List all subkeys recursively")
	cmd.Flags().IntVar(&keysDepth, "depth", 0, "Maximum recursion depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List keys at a given path",
		Long: `The keys command lists all subkeys at a given registry path.

Example:
  regctl keys "HKLM\SOFTWARE"
  regctl keys "HKLM\SYSTEM\CurrentControlSet\Services" --recursive --depth 2
  regctl keys "HKCU\Software" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	var keys []string
	if keysRecursive {
		node, err := captureTree(k, false, keysDepth)
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
		keys = relativePaths(node)
	} else {
		keys, err = k.SubKeyNames()
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"path":  keyPath,
			"keys":  keys,
			"count": len(keys),
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\nKeys in %s:\n", keyPath)
	for _, key := range keys {
		printInfo("  %s\n", key)
	}
	printInfo("\nTotal: %d keys\n", len(keys))

	return nil
}
