//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/cmd/regctl/logger"
	"github.com/joshuapare/regkit/registry"
)

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a registry key",
		Long: `The create command creates a registry key, including any missing
intermediate keys. Creating a key that already exists is not an error.

Example:
  regctl create "HKCU\Software\MyApp"
  regctl create "HKCU\Software\MyApp\Settings\Advanced"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	keyPath := args[0]

	printVerbose("Creating key: %s\n", keyPath)

	k, err := registry.CreatePath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	defer k.Close()

	logger.Info("key created", "path", keyPath)

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"path":    keyPath,
			"success": true,
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\n✓ Key created: %s\n", keyPath)

	return nil
}
