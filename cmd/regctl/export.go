//go:build windows

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/regkit/internal/printer"
	"github.com/joshuapare/regkit/registry"
)

var (
	exportEncoding  string
	exportBOM       bool
	exportStdout    bool
	exportWrapLines bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportEncoding, "encoding", "utf8", "Output encoding (utf8, utf16le)")
	cmd.Flags().BoolVar(&exportBOM, "with-bom", false, "Include byte-order mark")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().BoolVar(&exportWrapLines, "wrap-lines", false, "Wrap long hex values at 80 characters with backslash continuation")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path> [output.reg]",
		Short: "Export a registry subtree to .reg format",
		Long: `The export command writes a registry subtree as .reg text, the format
used by regedit. The export starts at the given key and includes all
subkeys and values beneath it.

Example:
  regctl export "HKCU\Software\MyApp" myapp.reg
  regctl export "HKCU\Environment" --stdout > env.reg
  regctl export "HKCU\Software\MyApp" myapp.reg --encoding utf16le --with-bom`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	keyPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need either output file or stdout
	if outputPath == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	var encName string
	switch strings.ToLower(exportEncoding) {
	case "utf8", "utf-8":
		encName = "utf8"
	case "utf16le", "utf-16le":
		encName = "utf16le"
	default:
		return fmt.Errorf("unsupported encoding %q (use utf8 or utf16le)", exportEncoding)
	}

	printVerbose("Exporting key: %s\n", keyPath)

	k, err := registry.OpenPath(keyPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	root, err := captureTree(k, true, 0)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	// Determine output writer
	var out io.Writer
	if exportStdout {
		out = os.Stdout
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	// Apply output encoding. Exports from regedit itself are UTF-16LE
	// with a BOM, so that combination round-trips through it cleanly.
	switch encName {
	case "utf8":
		if exportBOM {
			if _, err := out.Write([]byte{0xef, 0xbb, 0xbf}); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}
	case "utf16le":
		form := unicode.IgnoreBOM
		if exportBOM {
			form = unicode.UseBOM
		}
		tw := transform.NewWriter(out, unicode.UTF16(unicode.LittleEndian, form).NewEncoder())
		defer tw.Close()
		out = tw
	}

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatReg
	opts.ShowValues = true
	opts.MaxDepth = 0      // unlimited depth
	opts.MaxValueBytes = 0 // never truncate exported data
	opts.WrapLines = exportWrapLines

	if err := printer.New(out, opts).PrintTree(root); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	// Output as JSON if requested and not writing to stdout
	if !exportStdout && jsonOut {
		result := map[string]interface{}{
			"path":     keyPath,
			"output":   outputPath,
			"encoding": encName,
			"success":  true,
		}
		return printJSON(result)
	}

	return nil
}
