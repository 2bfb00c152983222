//go:build windows

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/printer"
	"github.com/joshuapare/regkit/registry"
)

var (
	getShowType bool
	getHex      bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	cmd.Flags().BoolVar(&getHex, "hex", false, "Output the raw stored bytes as hex")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a specific registry value",
		Long: `The get command retrieves and displays a specific value from a
registry key. Use an empty name ("") for the key's default value.

Example:
  regctl get "HKCU\Environment" TEMP
  regctl get "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion" ProductName --type
  regctl get "HKCU\Software\MyApp" Blob --hex
  regctl get "HKCR\.txt" ""`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.QUERY_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	v, err := k.Value(valueName)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	// Raw hex dump of the stored payload, useful for diffing against
	// exports or debugging type mismatches
	if getHex && !jsonOut {
		fmt.Printf("%x\n", v.Data)
		return nil
	}

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.ShowValueTypes = getShowType
	opts.MaxValueBytes = 0

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
		opts.ShowValueTypes = true
	}

	p := printer.New(os.Stdout, opts)
	return p.PrintValue(valueName, v)
}
