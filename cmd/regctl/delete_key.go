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

var (
	deleteKeyRecursive bool
	deleteKeyForce     bool
)

func init() {
	cmd := newDeleteKeyCmd()
	cmd.Flags().BoolVarP(&deleteKeyRecursive, "recursive", "r", false, "Delete subkeys too (required if has subkeys)")
	cmd.Flags().BoolVarP(&deleteKeyForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(cmd)
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key",
		Long: `The delete-key command deletes a registry key.

Example:
  regctl delete-key "HKCU\Software\OldApp"
  regctl delete-key "HKCU\Software\OldApp" --recursive --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
	return cmd
}

func runDeleteKey(args []string) error {
	keyPath := args[0]

	hive, rest, err := registry.ParsePath(keyPath)
	if err != nil {
		return err
	}
	if rest == "" {
		return fmt.Errorf("refusing to delete a hive root")
	}

	// Get key info for confirmation
	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to get key info: %w", err)
	}
	info, err := k.Stat()
	k.Close()
	if err != nil {
		return fmt.Errorf("failed to get key info: %w", err)
	}

	// Check if key has subkeys and recursive flag
	if info.SubKeyCount > 0 && !deleteKeyRecursive {
		return fmt.Errorf("key has %d subkeys; use --recursive to delete them", info.SubKeyCount)
	}

	// Confirm deletion (unless forced)
	if !deleteKeyForce && !quiet {
		printInfo("\nDeleting key:\n")
		printInfo("  Path: %s\n", keyPath)
		if info.SubKeyCount > 0 {
			printInfo("  Subkeys: %d\n", info.SubKeyCount)
		}
		if info.ValueCount > 0 {
			printInfo("  Values: %d\n", info.ValueCount)
		}
		printInfo("\n⚠ This will delete the key")
		if deleteKeyRecursive && info.SubKeyCount > 0 {
			printInfo(" and all subkeys")
		}
		printInfo(".\n")

		printInfo("Proceed? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	// Delete key
	if err := hive.Delete(rest, deleteKeyRecursive); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	logger.Info("key deleted", "path", keyPath, "recursive", deleteKeyRecursive)

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"path":    keyPath,
			"subkeys": info.SubKeyCount,
			"values":  info.ValueCount,
			"success": true,
		}
		return printJSON(result)
	}

	// Text output
	printInfo("\n✓ Key deleted successfully\n")

	return nil
}
