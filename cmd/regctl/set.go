//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/cmd/regctl/logger"
	"github.com/joshuapare/regkit/registry"
)

var (
	setType      string
	setCreateKey bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, multi_sz, dword, dword_be, qword, binary, none)")
	cmd.Flags().BoolVar(&setCreateKey, "create-key", false, "Create key if it doesn't exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command writes a value under the specified registry key.
Multi-string values are comma separated, binary values are hex strings,
and numeric values accept decimal or 0x hex.

Example:
  regctl set "HKCU\Software\MyApp" "Version" "1.0.0"
  regctl set "HKCU\Software\MyApp" "Enabled" "1" --type dword
  regctl set "HKCU\Software\MyApp" "Data" "0102030405" --type binary
  regctl set "HKCU\Software\NewApp" "Name" "Test" --create-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	keyPath := args[0]
	valueName := args[1]
	valueStr := args[2]

	// Parse value type and data
	v, err := parseValueArg(setType, valueStr)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	printVerbose("Opening key: %s\n", keyPath)

	var k *registry.Key
	if setCreateKey {
		k, err = registry.CreatePath(keyPath, registry.SET_VALUE)
	} else {
		k, err = registry.OpenPath(keyPath, registry.SET_VALUE)
	}
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	if err := k.SetValue(valueName, v); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	logger.Info("value set", "path", keyPath, "name", valueName, "type", v.Type.String(), "bytes", len(v.Data))

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
	printInfo("\nSetting value:\n")
	printInfo("  Path: %s\n", keyPath)
	printInfo("  Name: %s\n", valueName)
	printInfo("  Type: %s\n", v.Type.String())
	printInfo("  Value: %s\n", valueStr)
	printInfo("\n✓ Value set successfully\n")

	return nil
}
