package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/registry"
)

// printKeyText prints a key in human-readable text format.
func (p *Printer) printKeyText(n *Node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	fmt.Fprintf(p.writer, "%s[%s]\n", indent, n.Name)

	if p.opts.ShowTimestamps {
		fmt.Fprintf(p.writer, "%s  Last Write: %s\n", indent, n.LastWrite.Format("2006-01-02 15:04:05"))
	}

	if p.opts.PrintMetadata {
		fmt.Fprintf(p.writer, "%s  Subkeys: %d, Values: %d\n", indent, n.SubKeyCount, n.ValueCount)
	}

	if p.opts.ShowValues {
		for _, v := range n.Values {
			if err := p.printValueText(v.Name, v.Value, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// printValueText prints a value in human-readable text format.
func (p *Printer) printValueText(name string, v registry.Value, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	// Format: "Name" [TYPE] = value
	if name == "" {
		name = DefaultValueName
	}

	fmt.Fprintf(p.writer, "%s\"%s\"", indent, name)

	if p.opts.ShowValueTypes {
		fmt.Fprintf(p.writer, " [%s]", v.Type)
	}

	fmt.Fprintf(p.writer, " = ")

	switch v.Type {
	case registry.REG_SZ, registry.REG_EXPAND_SZ:
		str, err := v.AsString()
		if err != nil {
			p.printBytesText(v.Data)
			return nil
		}
		fmt.Fprintf(p.writer, "\"%s\"\n", str)

	case registry.REG_DWORD, registry.REG_DWORD_BE:
		val, err := v.AsUint32()
		if err != nil {
			p.printBytesText(v.Data)
			return nil
		}
		fmt.Fprintf(p.writer, "0x%08X (%d)\n", val, val)

	case registry.REG_QWORD:
		val, err := v.AsUint64()
		if err != nil {
			p.printBytesText(v.Data)
			return nil
		}
		fmt.Fprintf(p.writer, "0x%016X (%d)\n", val, val)

	case registry.REG_MULTI_SZ:
		strs, err := v.AsStrings()
		if err != nil {
			p.printBytesText(v.Data)
			return nil
		}
		if len(strs) == 0 {
			fmt.Fprintf(p.writer, "[]\n")
		} else {
			fmt.Fprintf(p.writer, "[\n")
			for _, s := range strs {
				fmt.Fprintf(p.writer, "%s  \"%s\"\n", indent, s)
			}
			fmt.Fprintf(p.writer, "%s]\n", indent)
		}

	case registry.REG_BINARY, registry.REG_NONE:
		p.printBytesText(v.Data)

	default:
		fmt.Fprintf(p.writer, "<%d bytes>\n", len(v.Data))
	}

	return nil
}

// printBytesText prints a raw payload as hex, truncated to
// MaxValueBytes. Malformed typed payloads land here too.
func (p *Printer) printBytesText(data []byte) {
	maxBytes := p.opts.MaxValueBytes
	if maxBytes == 0 {
		maxBytes = len(data)
	}
	displayLen := min(len(data), maxBytes)
	truncated := ""
	if len(data) > maxBytes {
		truncated = fmt.Sprintf(" (truncated, %d total bytes)", len(data))
	}
	if displayLen == 0 {
		fmt.Fprintf(p.writer, "<empty>%s\n", truncated)
	} else {
		fmt.Fprintf(p.writer, "%X%s\n", data[:displayLen], truncated)
	}
}

// printTreeText recursively prints a subtree in text format.
func (p *Printer) printTreeText(n *Node, depth int) error {
	// Check depth limit
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	if err := p.printKeyText(n, depth); err != nil {
		return err
	}

	for _, child := range n.Children {
		// Blank line between keys for readability
		fmt.Fprintln(p.writer)

		if err := p.printTreeText(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
