//go:build windows

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/cmd/regctl/logger"
	"github.com/joshuapare/regkit/registry"
)

var deleteValueForce bool

func init() {
	cmd := newDeleteValueCmd()
	cmd.Flags().BoolVarP(&deleteValueForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(cmd)
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a value from a registry key",
		Long: `The delete-value command deletes a value from a registry key.

Example:
  regctl delete-value "HKCU\Software\MyApp" "OldSetting"
  regctl delete-value "HKCU\Software\MyApp" "Debug" --force`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	// Get value info for confirmation
	v, err := k.Value(valueName)
	if err != nil {
		return fmt.Errorf("failed to get value info: %w", err)
	}

	// Confirm deletion (unless forced)
	if !deleteValueForce && !quiet {
		printInfo("\nDeleting value:\n")
		printInfo("  Path: %s\n", keyPath)
		printInfo("  Name: %s\n", valueName)
		printInfo("  Type: %s\n", v.Type)
		printInfo("  Size: %d bytes\n", len(v.Data))
		printInfo("\n⚠ This will delete the value.\n")

		printInfo("Proceed? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	// Delete value
	if err := k.DeleteValue(valueName); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	logger.Info("value deleted", "path", keyPath, "name", valueName)

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"path":    keyPath,
			"name":    valueName,
			"type":    v.Type.String(),
			"success": true,
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\n✓ Value deleted successfully\n")

	return nil
}
