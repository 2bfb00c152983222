//go:build windows

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/printer"
	"github.com/joshuapare/regkit/registry"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List all values in a registry key",
		Long: `The values command lists every value stored in a registry key, in
.reg format for easy piping.

Example:
  regctl values "HKCU\Environment"
  regctl values "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	node, err := captureKey(k, true)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	// Sort values by name
	sort.Slice(node.Values, func(i, j int) bool {
		return node.Values[i].Name < node.Values[j].Name
	})

	// Handle JSON output
	if jsonOut {
		result := make(map[string]interface{}, len(node.Values))
		for _, v := range node.Values {
			name := v.Name
			if name == "" {
				name = printer.DefaultValueName
			}
			result[name] = map[string]interface{}{
				"type": v.Value.Type.String(),
				"size": len(v.Value.Data),
				"data": jsonValueData(v.Value),
			}
		}
		return printJSON(result)
	}

	// Text output in .reg value format (pipeline-friendly)
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatReg
	opts.MaxValueBytes = 0

	p := printer.New(os.Stdout, opts)
	for _, v := range node.Values {
		if err := p.PrintValue(v.Name, v.Value); err != nil {
			return err
		}
	}

	return nil
}
