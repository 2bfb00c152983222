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
	treeDepth   int
	treeValues  bool
	treeCompact bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 3, "Maximum depth")
	cmd.Flags().BoolVar(&treeValues, "values", false, "Show values too")
	cmd.Flags().BoolVar(&treeCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <path>",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical tree view of registry keys.

Example:
  regctl tree "HKCU\Software\Microsoft" --depth 2
  regctl tree "HKLM\SYSTEM\CurrentControlSet\Services\Tcpip" --values
  regctl tree "HKCU\Environment" --values --depth 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	root, err := captureTree(k, treeValues, treeDepth)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.ShowValues = treeValues
	opts.ShowValueTypes = true
	opts.MaxDepth = 0          // captureTree already bounded the depth
	opts.PrintMetadata = false // Tree command shows clean structure without metadata counts

	// Handle JSON output
	if jsonOut {
		opts.Format = printer.FormatJSON
		opts.PrintMetadata = true // JSON carries the full hierarchy
		return printer.New(os.Stdout, opts).PrintTree(root)
	}

	// Text output
	opts.Format = printer.FormatText

	// Adjust indentation for compact mode
	if treeCompact {
		opts.IndentSize = 1
	}

	// Print tree
	if err := printer.New(os.Stdout, opts).PrintTree(root); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}

	return nil
}
