// Package printer renders captured registry trees as human-readable
// text, JSON, or Windows .reg files. It operates on Node snapshots, so
// formatting needs no live registry access and works on any platform.
package printer

import (
	"io"
	"time"

	"github.com/joshuapare/regkit/registry"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32

	// Target line width for wrapped .reg hex payloads.
	wrapWidth = 80
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatReg outputs Windows .reg file format.
	FormatReg Format = "reg"
)

// NamedValue pairs a value with the name it is stored under. The empty
// name is the key's default value.
type NamedValue struct {
	Name  string
	Value registry.Value
}

// Node is a point-in-time snapshot of one registry key: its values and,
// when captured recursively, its children. SubKeyCount and ValueCount
// carry the store's own counts, which may exceed what was captured when
// the capture was depth-limited.
type Node struct {
	Path        string // full path including the hive root
	Name        string // last path segment
	LastWrite   time.Time
	SubKeyCount int
	ValueCount  int
	Values      []NamedValue
	Children    []*Node
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, reg).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowValues includes value data in output.
	// Default: true
	ShowValues bool

	// ShowTimestamps includes last-write times.
	// Default: false
	ShowTimestamps bool

	// ShowValueTypes includes REG_* type names.
	// Default: true
	ShowValueTypes bool

	// MaxValueBytes limits how many bytes of binary values to display.
	// Longer values are truncated. Set to 0 for no limit.
	// Default: 32
	MaxValueBytes int

	// PrintMetadata includes metadata (subkey/value counts, timestamps, etc).
	// When false, shows keys/values without metadata counts (clean tree output).
	// When true, shows full metadata including counts (dump/ls output).
	// Default: false
	PrintMetadata bool

	// WrapLines wraps long .reg hex payloads at 80 columns with
	// backslash continuation, the way regedit exports them.
	// Default: false
	WrapLines bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxDepth:       DefaultMaxDepth,
		ShowValues:     true,
		ShowTimestamps: false,
		ShowValueTypes: true,
		MaxValueBytes:  DefaultMaxValueBytes,
		PrintMetadata:  false,
	}
}

// Printer handles formatted output of registry snapshots.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintKey(node)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintKey prints a single key and optionally its values.
func (p *Printer) PrintKey(n *Node) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printKeyJSON(n)
	case FormatReg:
		return p.printKeyReg(n)
	default:
		return p.printKeyText(n, 0)
	}
}

// PrintValue prints a single named value.
func (p *Printer) PrintValue(name string, v registry.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(name, v)
	case FormatReg:
		p.printValueReg(name, v)
		return nil
	default:
		return p.printValueText(name, v, 0)
	}
}

// PrintTree prints the node and everything below it, to MaxDepth.
func (p *Printer) PrintTree(n *Node) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(n)
	case FormatReg:
		return p.printTreeReg(n, 0)
	default:
		return p.printTreeText(n, 0)
	}
}
