//go:build windows

package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/regkit/cmd/regexplorer/logger"
	"github.com/joshuapare/regkit/registry"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("regexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	rootPath := `HKEY_CURRENT_USER`
	if len(filteredArgs) > 0 {
		rootPath = filteredArgs[0]
	}

	logger.Info("starting regexplorer", "path", rootPath, "debug", debugMode)

	// Make sure the starting key opens before taking over the terminal
	k, err := registry.OpenPath(rootPath, registry.READ)
	if err != nil {
		logger.Error("cannot open starting key", "path", rootPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\n", rootPath, err)
		os.Exit(1)
	}
	k.Close()

	// Create the TUI model
	m := NewModel(rootPath)

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program. The loaders open and close their own handles,
	// so there is nothing to release afterwards.
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("regexplorer exited normally")
}

func printHelp() {
	fmt.Println("regexplorer - Interactive browser for the live Windows registry")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  regexplorer [options] [key-path]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI over the live registry,")
	fmt.Println("  starting at the given key (default: HKEY_CURRENT_USER).")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, Enter  Open the selected key")
	fmt.Println("    ←/h         Go to the parent key")
	fmt.Println("    Tab         Switch between key and value panes")
	fmt.Println("    ctrl+g      Jump to a path")
	fmt.Println("    c / y       Copy key path / value data")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.regexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  regexplorer")
	fmt.Println(`  regexplorer "HKLM\Software\Microsoft\Windows NT\CurrentVersion"`)
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'regctl' command instead.")
}
